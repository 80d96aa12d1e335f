package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/jobdesk/internal/client/api"
	"github.com/dmitrijs2005/jobdesk/internal/client/cvstore"
	"github.com/dmitrijs2005/jobdesk/internal/client/enhance"
	"github.com/dmitrijs2005/jobdesk/internal/client/models"
	"github.com/dmitrijs2005/jobdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/jobdesk/internal/client/services"
	"github.com/dmitrijs2005/jobdesk/internal/client/session"
)

// fakeBackend is an in-memory api.Client.
type fakeBackend struct {
	mu sync.Mutex

	user      models.User
	loginErr  error
	cv        models.CV
	patches   []models.CVPatch
	enhanced  string
	companies []models.Company
	lookups   []string
	recs      []models.Recommendation
	applied   []models.ApplyRequest
}

var _ api.Client = (*fakeBackend)(nil)

func (f *fakeBackend) Signup(_ context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.user = models.User{ID: "u1", Email: req.Email, FullName: req.FullName, Role: req.Role, IsActive: true}
	return &models.AuthResponse{AccessToken: "tok", User: f.user}, nil
}

func (f *fakeBackend) Login(_ context.Context, creds models.Credentials, admin bool) (*models.AuthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	u := f.user
	u.Email = creds.Email
	if admin {
		u.Role = models.RoleAdmin
	}
	return &models.AuthResponse{AccessToken: "tok", User: u}, nil
}

func (f *fakeBackend) GetCV(context.Context) (*models.CV, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cv := f.cv
	cv.Skills = f.cv.Skills.Clone()
	return &cv, nil
}

func (f *fakeBackend) UpdateCV(_ context.Context, p models.CVPatch) (*models.CV, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.patches = append(f.patches, p)
	if p.ContactInfo != nil {
		f.cv.ContactInfo = *p.ContactInfo
	}
	if p.Skills != nil {
		f.cv.Skills = p.Skills.Clone()
	}
	if p.Summary != nil {
		f.cv.Summary = *p.Summary
	}
	cv := f.cv
	cv.Skills = f.cv.Skills.Clone()
	return &cv, nil
}

func (f *fakeBackend) EnhanceSummary(_ context.Context, text string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.enhanced != "" {
		return f.enhanced, nil
	}
	return "Improved: " + text, nil
}

func (f *fakeBackend) ListCompanies(context.Context) ([]models.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Company(nil), f.companies...), nil
}

func (f *fakeBackend) LookupCompanyDetails(_ context.Context, id string) (*models.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups = append(f.lookups, id)
	for i, c := range f.companies {
		if c.ID == id {
			now := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
			f.companies[i].Industry = "Software"
			f.companies[i].EnrichedAt = &now
			c := f.companies[i]
			return &c, nil
		}
	}
	return nil, &api.APIError{Status: 404, Message: "Company not found"}
}

func (f *fakeBackend) ListRecommendations(context.Context) ([]models.Recommendation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Recommendation(nil), f.recs...), nil
}

func (f *fakeBackend) findRec(id string) int {
	for i, r := range f.recs {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (f *fakeBackend) GetRecommendation(_ context.Context, id string) (*models.Recommendation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.findRec(id)
	if i < 0 {
		return nil, &api.APIError{Status: 404, Message: "Recommendation not found"}
	}
	r := f.recs[i]
	return &r, nil
}

func (f *fakeBackend) CreateRecommendation(_ context.Context, in models.RecommendationCreate) (*models.Recommendation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := models.Recommendation{ID: fmt.Sprintf("r%d", len(f.recs)+1), JobID: in.JobID, Notes: in.Notes, Status: models.RecommendationNew}
	f.recs = append(f.recs, r)
	return &r, nil
}

func (f *fakeBackend) UpdateRecommendation(_ context.Context, id string, in models.RecommendationUpdate) (*models.Recommendation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.findRec(id)
	if i < 0 {
		return nil, &api.APIError{Status: 404, Message: "Recommendation not found"}
	}
	if in.Status != nil {
		f.recs[i].Status = *in.Status
	}
	if in.Notes != nil {
		f.recs[i].Notes = *in.Notes
	}
	r := f.recs[i]
	return &r, nil
}

func (f *fakeBackend) DeleteRecommendation(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.findRec(id)
	if i < 0 {
		return &api.APIError{Status: 404, Message: "Recommendation not found"}
	}
	f.recs = append(f.recs[:i], f.recs[i+1:]...)
	return nil
}

func (f *fakeBackend) Apply(_ context.Context, req models.ApplyRequest) (*models.ApplyResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applied = append(f.applied, req)
	return &models.ApplyResult{Success: true, ApplicationID: "app-1", Status: "submitted"}, nil
}

// captureOutput redirects printlnFn for the duration of the test.
func captureOutput(t *testing.T) *strings.Builder {
	t.Helper()
	var sb strings.Builder
	var mu sync.Mutex
	old := printlnFn
	printlnFn = func(a ...any) (int, error) {
		mu.Lock()
		defer mu.Unlock()
		return fmt.Fprintln(&sb, a...)
	}
	t.Cleanup(func() { printlnFn = old })
	return &sb
}

// stubPassword makes every password prompt return pw.
func stubPassword(t *testing.T, pw string) {
	t.Helper()
	old := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = old })
}

// newTestApp assembles an App over fb with an in-memory session store and
// input read from in.
func newTestApp(t *testing.T, fb *fakeBackend, in string) (*App, *metadata.MemoryRepository) {
	t.Helper()
	store := metadata.NewMemoryRepository()
	sess := session.NewManager(fb, store, nil)
	a := newApp(deps{
		session:    sess,
		cv:         cvstore.New(fb, nil),
		enhancer:   enhance.NewRemote(fb),
		recs:       services.NewRecommendationService(fb, sess),
		automation: services.NewAutomationService(fb, sess, nil),
		companies:  services.NewCompanyService(fb, sess, nil),
		reader:     bufio.NewReader(strings.NewReader(in)),
		out:        io.Discard,
	})
	t.Cleanup(func() { _ = a.Close() })
	return a, store
}
