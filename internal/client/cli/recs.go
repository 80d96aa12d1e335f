package cli

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/jobdesk/internal/client/models"
)

const recsUsage = "recs [show <id> | add <job_id> [notes] | status <id> <new|saved|applied|dismissed> | note <id> [text] | rm <id>]"

// Recommendations lists the user's job recommendations and manages them.
func (a *App) Recommendations(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "list" {
		return a.listRecommendations(ctx)
	}
	if len(args) < 2 {
		return usage(recsUsage)
	}
	id, rest := args[1], strings.Join(args[2:], " ")

	switch args[0] {
	case "show":
		rec, err := a.recs.Get(ctx, id)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(rec)
		if err != nil {
			return fmt.Errorf("render recommendation: %w", err)
		}
		printlnFn(strings.TrimRight(string(out), "\n"))

	case "add":
		rec, err := a.recs.Create(ctx, models.RecommendationCreate{JobID: id, Notes: rest})
		if err != nil {
			return err
		}
		printlnFn("Recommendation added, id:", rec.ID)

	case "status":
		if rest == "" {
			return usage(recsUsage)
		}
		rec, err := a.recs.UpdateStatus(ctx, id, models.RecommendationStatus(strings.ToLower(rest)))
		if err != nil {
			return err
		}
		printlnFn("Status of", rec.ID, "is now", string(rec.Status))

	case "note":
		if rest == "" {
			t, err := getMultiline(a.reader, "Enter notes", a.out)
			if err != nil {
				return err
			}
			rest = t
		}
		if _, err := a.recs.UpdateNotes(ctx, id, rest); err != nil {
			return err
		}
		printlnFn("Notes updated")

	case "rm", "delete":
		if err := a.recs.Delete(ctx, id); err != nil {
			return err
		}
		printlnFn("Recommendation deleted")

	default:
		return usage(recsUsage)
	}
	return nil
}

func (a *App) listRecommendations(ctx context.Context) error {
	list, err := a.recs.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		printlnFn("No recommendations yet")
		return nil
	}
	for _, r := range list {
		printlnFn(fmt.Sprintf("%s | %-10s | %3.0f%% | %s @ %s", r.ID, r.Status, r.MatchScore*100, r.JobTitle, r.CompanyName))
	}
	return nil
}

// Apply submits an automated application for a job, optionally tied to a
// recommendation.
func (a *App) Apply(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("apply <job_id> [recommendation_id]")
	}
	req := models.ApplyRequest{JobID: args[0]}
	if len(args) > 1 {
		req.RecommendationID = args[1]
	}

	printlnFn("Submitting application...")
	res, err := a.automation.Apply(ctx, req)
	if err != nil {
		return err
	}
	if !res.Success {
		printlnFn("Application was not submitted:", res.Message)
		return nil
	}
	printlnFn(fmt.Sprintf("Application %s submitted (%s)", res.ApplicationID, res.Status))
	if res.Message != "" {
		printlnFn(res.Message)
	}
	return nil
}
