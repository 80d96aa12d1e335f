// Package admin is the state behind the administrator's company view: the
// company list, the current selection and the enrichment action.
package admin

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/jobdesk/internal/client/models"
	"github.com/dmitrijs2005/jobdesk/internal/client/services"
	"github.com/dmitrijs2005/jobdesk/internal/common"
	"github.com/dmitrijs2005/jobdesk/internal/logging"
)

// RefreshFunc is invoked once after every successful enrichment.
type RefreshFunc func(ctx context.Context)

type Console struct {
	companies services.CompanyService
	logger    logging.Logger
	onRefresh RefreshFunc

	mu       sync.Mutex
	list     []models.Company
	selected string
}

type Option func(*Console)

// WithRefreshHook replaces the default post-enrichment refresh, which
// reloads the company list.
func WithRefreshHook(fn RefreshFunc) Option {
	return func(c *Console) { c.onRefresh = fn }
}

func NewConsole(companies services.CompanyService, logger logging.Logger, opts ...Option) *Console {
	if logger == nil {
		logger = logging.Discard()
	}
	c := &Console{companies: companies, logger: logger.With("component", "admin")}
	for _, o := range opts {
		o(c)
	}
	if c.onRefresh == nil {
		c.onRefresh = func(ctx context.Context) {
			if _, err := c.Refresh(ctx); err != nil {
				c.logger.Warn(ctx, "refresh after enrichment failed", "error", err)
			}
		}
	}
	return c
}

// Refresh reloads the company list. A selection that no longer exists is
// dropped.
func (c *Console) Refresh(ctx context.Context) ([]models.Company, error) {
	list, err := c.companies.List(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = slices.Clone(list)
	if c.selected != "" && c.indexLocked(c.selected) < 0 {
		c.selected = ""
	}
	return slices.Clone(c.list), nil
}

// Companies returns the last loaded list.
func (c *Console) Companies() []models.Company {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.list)
}

// Select marks the company with id as the enrichment target.
func (c *Console) Select(id string) (models.Company, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(id)
	if i < 0 {
		return models.Company{}, common.NewGuardError(fmt.Sprintf("unknown company %q", id))
	}
	c.selected = id
	return c.list[i], nil
}

func (c *Console) ClearSelection() {
	c.mu.Lock()
	c.selected = ""
	c.mu.Unlock()
}

// Selected returns the selected company, if any.
func (c *Console) Selected() (models.Company, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == "" {
		return models.Company{}, false
	}
	i := c.indexLocked(c.selected)
	if i < 0 {
		return models.Company{}, false
	}
	return c.list[i], true
}

// Enrich asks the backend to look up details for the selected company.
// Without a selection it fails with common.ErrNoSelection and sends
// nothing. On success the selection is cleared and the refresh hook runs
// exactly once; on failure the selection is kept.
func (c *Console) Enrich(ctx context.Context) (*models.Company, error) {
	c.mu.Lock()
	id := c.selected
	c.mu.Unlock()
	if id == "" {
		return nil, common.ErrNoSelection
	}

	company, err := c.companies.LookupDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if i := c.indexLocked(id); i >= 0 && company != nil {
		c.list[i] = *company
	}
	if c.selected == id {
		c.selected = ""
	}
	c.mu.Unlock()

	c.logger.Info(ctx, "company enrichment complete", "company_id", id)
	c.onRefresh(ctx)
	return company, nil
}

func (c *Console) indexLocked(id string) int {
	return slices.IndexFunc(c.list, func(co models.Company) bool { return co.ID == id })
}
