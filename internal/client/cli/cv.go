package cli

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/jobdesk/internal/client/editor"
	"github.com/dmitrijs2005/jobdesk/internal/client/models"
	"github.com/dmitrijs2005/jobdesk/internal/common"
)

// ShowCV prints the CV as YAML. "cv reload" fetches it from the server
// first, replacing any unsaved drafts.
func (a *App) ShowCV(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "reload" {
		if a.anyDirty() {
			printlnFn("Discarding unsaved changes")
		}
		if _, err := a.cv.Load(ctx); err != nil {
			return err
		}
	}

	cv := a.cv.Current().CV
	if cv == nil {
		return common.ErrNoDocument
	}
	out, err := yaml.Marshal(cv)
	if err != nil {
		return fmt.Errorf("render cv: %w", err)
	}
	printlnFn(strings.TrimRight(string(out), "\n"))
	return nil
}

func (a *App) anyDirty() bool {
	return a.contact.Dirty() || a.skills.Dirty() || a.summary.Dirty()
}

// Contact shows the contact draft or, with "set <field> [value]", edits it.
func (a *App) Contact(_ context.Context, args []string) error {
	if len(args) == 0 {
		if !a.contact.Loaded() {
			return common.ErrNoDocument
		}
		c := a.contact.Draft()
		for _, f := range editor.ContactFields {
			printlnFn(fmt.Sprintf("%-14s %s", f+":", contactValue(c, f)))
		}
		if a.contact.Dirty() {
			printlnFn("(unsaved changes)")
		}
		return nil
	}

	if args[0] != "set" || len(args) < 2 {
		return usage("contact [set <field> [value]]")
	}
	field := editor.ContactField(args[1])
	value := strings.Join(args[2:], " ")
	if len(args) == 2 {
		v, err := getSimpleText(a.reader, "Enter "+string(field), a.out)
		if err != nil {
			return err
		}
		value = v
	}
	if err := a.contact.Set(field, value); err != nil {
		return err
	}
	printlnFn("Updated", string(field), "(not saved yet)")
	return nil
}

func contactValue(c models.ContactInfo, f editor.ContactField) string {
	switch f {
	case editor.FieldFullName:
		return c.FullName
	case editor.FieldEmail:
		return c.Email
	case editor.FieldPhone:
		return c.Phone
	case editor.FieldLocation:
		return c.Location
	case editor.FieldLinkedInURL:
		return c.LinkedInURL
	case editor.FieldGitHubURL:
		return c.GitHubURL
	case editor.FieldPortfolioURL:
		return c.PortfolioURL
	}
	return ""
}

// categoryAliases lets users type the short form of a category.
var categoryAliases = map[string]models.SkillCategory{
	"technical": models.SkillsTechnical,
	"tech":      models.SkillsTechnical,
	"soft":      models.SkillsSoft,
	"certs":     models.SkillsCertifications,
}

func parseCategory(s string) models.SkillCategory {
	if c, ok := categoryAliases[strings.ToLower(s)]; ok {
		return c
	}
	return models.SkillCategory(strings.ToLower(s))
}

// Skills shows the skill lists or edits one with "add" / "rm".
func (a *App) Skills(_ context.Context, args []string) error {
	if len(args) == 0 {
		if !a.skills.Loaded() {
			return common.ErrNoDocument
		}
		s := a.skills.Draft()
		for _, cat := range models.SkillCategories {
			printlnFn(fmt.Sprintf("%-16s %s", string(cat)+":", strings.Join(*s.List(cat), ", ")))
		}
		if a.skills.Dirty() {
			printlnFn("(unsaved changes)")
		}
		return nil
	}

	if len(args) < 2 {
		return usage("skills [add|rm <category> [skill]]")
	}
	cat := parseCategory(args[1])
	skill := strings.Join(args[2:], " ")

	switch args[0] {
	case "add":
		items := []string{skill}
		if skill == "" {
			lines, err := getLines(a.reader, "Enter skills, one per line", a.out)
			if err != nil {
				return err
			}
			items = lines
		}
		for _, item := range items {
			added, err := a.skills.Add(cat, item)
			if err != nil {
				return err
			}
			if !added {
				printlnFn(fmt.Sprintf("Skipped %q (empty or already listed)", strings.TrimSpace(item)))
			}
		}
	case "rm", "remove":
		if skill == "" {
			return usage("skills rm <category> <skill>")
		}
		removed, err := a.skills.Remove(cat, skill)
		if err != nil {
			return err
		}
		if !removed {
			printlnFn(fmt.Sprintf("%q is not listed", skill))
		}
	default:
		return usage("skills [add|rm <category> [skill]]")
	}
	return nil
}

// Summary shows the summary draft and any pending suggestion, or replaces
// the text with "set [text]".
func (a *App) Summary(_ context.Context, args []string) error {
	if len(args) == 0 {
		if !a.summary.Loaded() {
			return common.ErrNoDocument
		}
		printlnFn(a.summary.Draft().Text)
		if a.summary.Dirty() {
			printlnFn("(unsaved changes)")
		}
		if s, ok := a.summary.Suggestion(); ok {
			printlnFn("Pending suggestion:")
			printlnFn(s)
		}
		return nil
	}

	if args[0] != "set" {
		return usage("summary [set [text]]")
	}
	text := strings.Join(args[1:], " ")
	if text == "" {
		t, err := getMultiline(a.reader, "Enter summary", a.out)
		if err != nil {
			return err
		}
		text = t
	}
	if err := a.summary.SetText(text); err != nil {
		return err
	}
	printlnFn("Summary updated (not saved yet)")
	return nil
}

// Enhance requests an AI rewrite of the summary draft.
func (a *App) Enhance(ctx context.Context, _ []string) error {
	printlnFn("Enhancing summary...")
	suggestion, err := a.summary.Enhance(ctx)
	if err != nil {
		return err
	}
	printlnFn("Suggestion:")
	printlnFn(suggestion)
	printlnFn("Type 'accept' to use it or 'reject' to discard it.")
	return nil
}

func (a *App) Accept(_ context.Context, _ []string) error {
	if !a.summary.Accept() {
		printlnFn("No suggestion to accept")
		return nil
	}
	printlnFn("Suggestion applied to the summary (not saved yet)")
	return nil
}

func (a *App) Reject(_ context.Context, _ []string) error {
	if !a.summary.Reject() {
		printlnFn("No suggestion to reject")
		return nil
	}
	printlnFn("Suggestion discarded")
	return nil
}

type saver interface {
	CanSave() bool
	Save(ctx context.Context) error
}

// Save writes sections back. Without arguments only sections with unsaved
// edits are sent; a named section is always sent.
func (a *App) Save(ctx context.Context, args []string) error {
	sections := []struct {
		name string
		s    saver
	}{
		{"contact", a.contact},
		{"skills", a.skills},
		{"summary", a.summary},
	}

	if len(args) > 0 && args[0] != "all" {
		for _, sec := range sections {
			if sec.name == args[0] {
				if err := sec.s.Save(ctx); err != nil {
					return err
				}
				printlnFn("Saved", sec.name)
				return nil
			}
		}
		return usage("save [contact|skills|summary|all]")
	}

	saved := 0
	for _, sec := range sections {
		if !sec.s.CanSave() {
			continue
		}
		if err := sec.s.Save(ctx); err != nil {
			return fmt.Errorf("save %s: %w", sec.name, err)
		}
		printlnFn("Saved", sec.name)
		saved++
	}
	if saved == 0 {
		printlnFn("Nothing to save")
	}
	return nil
}

func usage(s string) error {
	return common.NewGuardError("usage: " + s)
}
