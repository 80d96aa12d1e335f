package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/jobdesk/internal/client/models"
	"github.com/dmitrijs2005/jobdesk/internal/common"
	"github.com/dmitrijs2005/jobdesk/internal/logging"
	"github.com/google/uuid"
)

const defaultBaseURL = "http://localhost:8000"

// RESTClient talks JSON over HTTP to the jobdesk backend.
type RESTClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     logging.Logger
}

var _ Client = (*RESTClient)(nil)

// Option customises RESTClient instantiation.
type Option func(*RESTClient)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *RESTClient) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *RESTClient) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithTokenSource sets where bearer tokens come from.
func WithTokenSource(ts TokenSource) Option {
	return func(c *RESTClient) {
		c.tokens = ts
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *RESTClient) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewRESTClient constructs a client for the API rooted at base.
func NewRESTClient(base string, opts ...Option) (*RESTClient, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "http://" + trimmed
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	c := &RESTClient{
		baseURL:    strings.TrimRight(trimmed, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetTokenSource replaces the token source after construction; the session
// manager is built on top of the client and plugs itself in afterwards.
func (c *RESTClient) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

func (c *RESTClient) token() string {
	if c.tokens == nil {
		return ""
	}
	return strings.TrimSpace(c.tokens.Token())
}

func (c *RESTClient) do(ctx context.Context, method, path string, body any, v any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	requestID, ok := logging.RequestID(ctx)
	if !ok {
		requestID = uuid.NewString()
		ctx = logging.ContextWithRequestID(ctx, requestID)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(common.RequestIDHeaderName, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug(ctx, "api request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Message: extractDetail(resp.Body)}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		c.logger.Debug(ctx, "api error", "status", resp.StatusCode, "detail", apiErr.Message)
		return apiErr
	}

	if v == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// extractDetail pulls the "detail" message out of an error body. Validation
// errors from the backend arrive as a list of objects with "msg" fields;
// those are joined.
func extractDetail(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err != nil || len(data) == 0 {
		return ""
	}
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}

	var msg string
	if err := json.Unmarshal(payload.Detail, &msg); err == nil {
		return strings.TrimSpace(msg)
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(payload.Detail, &items); err == nil {
		parts := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				parts = append(parts, it.Msg)
			}
		}
		return strings.Join(parts, "; ")
	}
	return ""
}

func (c *RESTClient) Signup(ctx context.Context, in models.SignupRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *RESTClient) Login(ctx context.Context, creds models.Credentials, admin bool) (*models.AuthResponse, error) {
	path := "/api/auth/login"
	if admin {
		path = "/api/auth/admin/login"
	}
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, path, creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *RESTClient) GetCV(ctx context.Context) (*models.CV, error) {
	var cv models.CV
	if err := c.do(ctx, http.MethodGet, "/api/cv", nil, &cv); err != nil {
		return nil, err
	}
	return &cv, nil
}

func (c *RESTClient) UpdateCV(ctx context.Context, patch models.CVPatch) (*models.CV, error) {
	var cv models.CV
	if err := c.do(ctx, http.MethodPatch, "/api/cv", patch, &cv); err != nil {
		return nil, err
	}
	return &cv, nil
}

func (c *RESTClient) EnhanceSummary(ctx context.Context, text string) (string, error) {
	var resp models.EnhanceSummaryResponse
	if err := c.do(ctx, http.MethodPost, "/api/cv/enhance-summary", models.EnhanceSummaryRequest{Text: text}, &resp); err != nil {
		return "", err
	}
	return resp.SummaryEnhancement, nil
}

func (c *RESTClient) ListCompanies(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	if err := c.do(ctx, http.MethodGet, "/api/companies", nil, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

func (c *RESTClient) LookupCompanyDetails(ctx context.Context, id string) (*models.Company, error) {
	var company models.Company
	path := fmt.Sprintf("/api/companies/%s/lookup-details", url.PathEscape(id))
	if err := c.do(ctx, http.MethodPost, path, nil, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (c *RESTClient) ListRecommendations(ctx context.Context) ([]models.Recommendation, error) {
	var recs []models.Recommendation
	if err := c.do(ctx, http.MethodGet, "/api/recommendations", nil, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (c *RESTClient) GetRecommendation(ctx context.Context, id string) (*models.Recommendation, error) {
	var rec models.Recommendation
	if err := c.do(ctx, http.MethodGet, "/api/recommendations/"+url.PathEscape(id), nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *RESTClient) CreateRecommendation(ctx context.Context, in models.RecommendationCreate) (*models.Recommendation, error) {
	var rec models.Recommendation
	if err := c.do(ctx, http.MethodPost, "/api/recommendations", in, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *RESTClient) UpdateRecommendation(ctx context.Context, id string, in models.RecommendationUpdate) (*models.Recommendation, error) {
	var rec models.Recommendation
	if err := c.do(ctx, http.MethodPatch, "/api/recommendations/"+url.PathEscape(id), in, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *RESTClient) DeleteRecommendation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/recommendations/"+url.PathEscape(id), nil, nil)
}

func (c *RESTClient) Apply(ctx context.Context, req models.ApplyRequest) (*models.ApplyResult, error) {
	var res models.ApplyResult
	if err := c.do(ctx, http.MethodPost, "/api/automation/apply", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
