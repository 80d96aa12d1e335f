package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobdesk/internal/client/api"
	"github.com/dmitrijs2005/jobdesk/internal/client/models"
	"github.com/dmitrijs2005/jobdesk/internal/common"
	"github.com/dmitrijs2005/jobdesk/internal/logging"
)

// CompanyService lists companies and triggers enrichment. Both operations
// are restricted to administrators.
type CompanyService interface {
	List(ctx context.Context) ([]models.Company, error)
	LookupDetails(ctx context.Context, id string) (*models.Company, error)
}

type companyService struct {
	client api.CompanyClient
	auth   Authorizer
	logger logging.Logger
}

func NewCompanyService(client api.CompanyClient, auth Authorizer, logger logging.Logger) CompanyService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &companyService{client: client, auth: auth, logger: logger.With("component", "companies")}
}

func (s *companyService) List(ctx context.Context) ([]models.Company, error) {
	if err := s.auth.RequireAdmin(); err != nil {
		return nil, err
	}
	companies, err := s.client.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}

func (s *companyService) LookupDetails(ctx context.Context, id string) (*models.Company, error) {
	if err := s.auth.RequireAdmin(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, common.ErrNoSelection
	}
	company, err := s.client.LookupCompanyDetails(ctx, id)
	if err != nil {
		s.logger.Warn(ctx, "company enrichment failed", "company_id", id, "error", err)
		return nil, fmt.Errorf("lookup company details: %w", err)
	}
	s.logger.Info(ctx, "company enriched", "company_id", id)
	return company, nil
}
