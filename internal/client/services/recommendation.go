package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobdesk/internal/client/api"
	"github.com/dmitrijs2005/jobdesk/internal/client/models"
	"github.com/dmitrijs2005/jobdesk/internal/common"
)

type RecommendationService interface {
	List(ctx context.Context) ([]models.Recommendation, error)
	Get(ctx context.Context, id string) (*models.Recommendation, error)
	Create(ctx context.Context, in models.RecommendationCreate) (*models.Recommendation, error)
	UpdateStatus(ctx context.Context, id string, status models.RecommendationStatus) (*models.Recommendation, error)
	UpdateNotes(ctx context.Context, id string, notes string) (*models.Recommendation, error)
	Delete(ctx context.Context, id string) error
}

type recommendationService struct {
	client api.RecommendationClient
	auth   Authorizer
}

func NewRecommendationService(client api.RecommendationClient, auth Authorizer) RecommendationService {
	return &recommendationService{client: client, auth: auth}
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return common.NewGuardError("recommendation id is required")
	}
	return nil
}

func (s *recommendationService) List(ctx context.Context) ([]models.Recommendation, error) {
	if err := s.auth.RequireAuth(); err != nil {
		return nil, err
	}
	recs, err := s.client.ListRecommendations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}
	return recs, nil
}

func (s *recommendationService) Get(ctx context.Context, id string) (*models.Recommendation, error) {
	if err := s.auth.RequireAuth(); err != nil {
		return nil, err
	}
	if err := requireID(id); err != nil {
		return nil, err
	}
	rec, err := s.client.GetRecommendation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get recommendation: %w", err)
	}
	return rec, nil
}

func (s *recommendationService) Create(ctx context.Context, in models.RecommendationCreate) (*models.Recommendation, error) {
	if err := s.auth.RequireAuth(); err != nil {
		return nil, err
	}
	if err := models.Validate(in); err != nil {
		return nil, err
	}
	rec, err := s.client.CreateRecommendation(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create recommendation: %w", err)
	}
	return rec, nil
}

func (s *recommendationService) UpdateStatus(ctx context.Context, id string, status models.RecommendationStatus) (*models.Recommendation, error) {
	return s.update(ctx, id, models.RecommendationUpdate{Status: &status})
}

func (s *recommendationService) UpdateNotes(ctx context.Context, id string, notes string) (*models.Recommendation, error) {
	return s.update(ctx, id, models.RecommendationUpdate{Notes: &notes})
}

func (s *recommendationService) update(ctx context.Context, id string, in models.RecommendationUpdate) (*models.Recommendation, error) {
	if err := s.auth.RequireAuth(); err != nil {
		return nil, err
	}
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := models.Validate(in); err != nil {
		return nil, err
	}
	rec, err := s.client.UpdateRecommendation(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("update recommendation: %w", err)
	}
	return rec, nil
}

func (s *recommendationService) Delete(ctx context.Context, id string) error {
	if err := s.auth.RequireAuth(); err != nil {
		return err
	}
	if err := requireID(id); err != nil {
		return err
	}
	if err := s.client.DeleteRecommendation(ctx, id); err != nil {
		return fmt.Errorf("delete recommendation: %w", err)
	}
	return nil
}
