package api

import (
	"context"

	"github.com/dmitrijs2005/jobdesk/internal/client/models"
)

// TokenSource supplies the bearer token for outbound requests. An empty
// token means the request is sent unauthenticated.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

type AuthClient interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, creds models.Credentials, admin bool) (*models.AuthResponse, error)
}

type CVClient interface {
	GetCV(ctx context.Context) (*models.CV, error)
	UpdateCV(ctx context.Context, patch models.CVPatch) (*models.CV, error)
	EnhanceSummary(ctx context.Context, text string) (string, error)
}

type CompanyClient interface {
	ListCompanies(ctx context.Context) ([]models.Company, error)
	LookupCompanyDetails(ctx context.Context, id string) (*models.Company, error)
}

type RecommendationClient interface {
	ListRecommendations(ctx context.Context) ([]models.Recommendation, error)
	GetRecommendation(ctx context.Context, id string) (*models.Recommendation, error)
	CreateRecommendation(ctx context.Context, in models.RecommendationCreate) (*models.Recommendation, error)
	UpdateRecommendation(ctx context.Context, id string, in models.RecommendationUpdate) (*models.Recommendation, error)
	DeleteRecommendation(ctx context.Context, id string) error
}

type AutomationClient interface {
	Apply(ctx context.Context, req models.ApplyRequest) (*models.ApplyResult, error)
}

// Client is the full backend contract.
type Client interface {
	AuthClient
	CVClient
	CompanyClient
	RecommendationClient
	AutomationClient
}
