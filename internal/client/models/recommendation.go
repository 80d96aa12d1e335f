package models

import "time"

// RecommendationStatus tracks what the candidate did with a recommendation.
type RecommendationStatus string

const (
	RecommendationNew       RecommendationStatus = "new"
	RecommendationSaved     RecommendationStatus = "saved"
	RecommendationApplied   RecommendationStatus = "applied"
	RecommendationDismissed RecommendationStatus = "dismissed"
)

type Recommendation struct {
	ID          string               `json:"id" yaml:"id"`
	JobID       string               `json:"job_id" yaml:"job_id"`
	JobTitle    string               `json:"job_title" yaml:"job_title"`
	CompanyName string               `json:"company_name" yaml:"company_name"`
	MatchScore  float64              `json:"match_score" yaml:"match_score"`
	Status      RecommendationStatus `json:"status" yaml:"status"`
	Notes       string               `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt   time.Time            `json:"created_at" yaml:"created_at"`
}

type RecommendationCreate struct {
	JobID string `json:"job_id" validate:"required"`
	Notes string `json:"notes,omitempty" validate:"max=2000"`
}

type RecommendationUpdate struct {
	Status *RecommendationStatus `json:"status,omitempty" validate:"omitempty,oneof=new saved applied dismissed"`
	Notes  *string               `json:"notes,omitempty" validate:"omitempty,max=2000"`
}
