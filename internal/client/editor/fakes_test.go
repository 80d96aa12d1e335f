package editor

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/jobdesk/internal/client/cvstore"
	"github.com/dmitrijs2005/jobdesk/internal/client/models"
)

// fakeCVClient echoes patches back as the server would. When block is set,
// UpdateCV signals started and waits for release or cancellation.
type fakeCVClient struct {
	mu        sync.Mutex
	cv        models.CV
	updateErr error
	patches   []models.CVPatch

	block   bool
	started chan struct{}
	release chan struct{}
}

func (f *fakeCVClient) GetCV(context.Context) (*models.CV, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cv := f.cv
	cv.Skills = f.cv.Skills.Clone()
	return &cv, nil
}

func (f *fakeCVClient) UpdateCV(ctx context.Context, p models.CVPatch) (*models.CV, error) {
	f.mu.Lock()
	f.patches = append(f.patches, p)
	block := f.block
	f.mu.Unlock()

	if block {
		f.started <- struct{}{}
		select {
		case <-f.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
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

func (f *fakeCVClient) EnhanceSummary(context.Context, string) (string, error) {
	return "", errors.New("not used")
}

func (f *fakeCVClient) lastPatch(t *testing.T) models.CVPatch {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.patches)
	return f.patches[len(f.patches)-1]
}

func (f *fakeCVClient) setServerSummary(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cv.Summary.Text = text
}

// fakeEnhancer counts calls; with block set it waits like fakeCVClient.
type fakeEnhancer struct {
	mu     sync.Mutex
	calls  int
	texts  []string
	result string
	err    error

	block   bool
	started chan struct{}
	release chan struct{}
}

func (f *fakeEnhancer) Enhance(ctx context.Context, text string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.texts = append(f.texts, text)
	block := f.block
	f.mu.Unlock()

	if block {
		f.started <- struct{}{}
		select {
		case <-f.release:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.result, f.err
}

func (f *fakeEnhancer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func sampleCV() models.CV {
	return models.CV{
		ID:     "cv1",
		UserID: "u1",
		ContactInfo: models.ContactInfo{
			FullName: "Alice Doe",
			Email:    "alice@example.com",
			Location: "Riga",
		},
		Skills: models.Skills{
			TechnicalSkills: []string{"Go", "SQL"},
			SoftSkills:      []string{"Mentoring"},
		},
		Summary: models.Summary{Text: "Backend engineer."},
	}
}

func loadedStore(t *testing.T) (*cvstore.Store, *fakeCVClient) {
	t.Helper()
	fc := &fakeCVClient{cv: sampleCV()}
	store := cvstore.New(fc, nil)
	_, err := store.Load(context.Background())
	require.NoError(t, err)
	return store, fc
}
