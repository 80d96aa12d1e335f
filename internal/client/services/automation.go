package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobdesk/internal/client/api"
	"github.com/dmitrijs2005/jobdesk/internal/client/models"
	"github.com/dmitrijs2005/jobdesk/internal/logging"
)

type AutomationService interface {
	Apply(ctx context.Context, req models.ApplyRequest) (*models.ApplyResult, error)
}

type automationService struct {
	client api.AutomationClient
	auth   Authorizer
	logger logging.Logger
}

func NewAutomationService(client api.AutomationClient, auth Authorizer, logger logging.Logger) AutomationService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &automationService{client: client, auth: auth, logger: logger.With("component", "automation")}
}

// Apply triggers an automated application. A result with Success false is
// returned as is; only transport and HTTP failures are errors.
func (s *automationService) Apply(ctx context.Context, req models.ApplyRequest) (*models.ApplyResult, error) {
	if err := s.auth.RequireAuth(); err != nil {
		return nil, err
	}
	if err := models.Validate(req); err != nil {
		return nil, err
	}
	res, err := s.client.Apply(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("auto-apply: %w", err)
	}
	s.logger.Info(ctx, "auto-apply finished",
		"job_id", req.JobID, "success", res.Success, "status", res.Status)
	return res, nil
}
