package models

type ApplyRequest struct {
	JobID            string `json:"job_id" validate:"required"`
	RecommendationID string `json:"recommendation_id,omitempty"`
	CoverLetter      string `json:"cover_letter,omitempty" validate:"max=10000"`
}

type ApplyResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ApplicationID string `json:"application_id"`
	Status        string `json:"status"`
}
