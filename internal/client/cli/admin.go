package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobdesk/internal/client/models"
)

// Companies reloads and prints the company list, marking the selection.
func (a *App) Companies(ctx context.Context, _ []string) error {
	list, err := a.console.Refresh(ctx)
	if err != nil {
		return err
	}
	a.printCompanies(list)
	return nil
}

func (a *App) printCompanies(list []models.Company) {
	if len(list) == 0 {
		printlnFn("No companies")
		return
	}
	sel, _ := a.console.Selected()
	for _, c := range list {
		mark := " "
		if c.ID == sel.ID {
			mark = ">"
		}
		enriched := "-"
		if c.EnrichedAt != nil {
			enriched = c.EnrichedAt.Local().Format("2006-01-02")
		}
		printlnFn(fmt.Sprintf("%s %s | %-30s | %-20s | enriched %s", mark, c.ID, c.Name, c.Industry, enriched))
	}
}

// Select marks a company as the target of the next enrichment.
func (a *App) Select(_ context.Context, args []string) error {
	if len(args) == 0 {
		return usage("select <company_id>")
	}
	c, err := a.console.Select(args[0])
	if err != nil {
		return err
	}
	printlnFn("Selected", c.Name)
	return nil
}

// Enrich looks up details for the selected company.
func (a *App) Enrich(ctx context.Context, _ []string) error {
	sel, ok := a.console.Selected()
	if ok {
		printlnFn("Looking up details for", sel.Name+"...")
	}
	c, err := a.console.Enrich(ctx)
	if err != nil {
		return err
	}
	if c != nil {
		printlnFn("Enriched", c.Name)
	}
	return nil
}

// refreshCompanies runs after each successful enrichment and reprints the
// updated list.
func (a *App) refreshCompanies(ctx context.Context) {
	list, err := a.console.Refresh(ctx)
	if err != nil {
		a.notify(ctx, err)
		return
	}
	a.printCompanies(list)
}
