package editor

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/jobdesk/internal/client/cvstore"
	"github.com/dmitrijs2005/jobdesk/internal/client/models"
	"github.com/dmitrijs2005/jobdesk/internal/common"
	"github.com/dmitrijs2005/jobdesk/internal/logging"
)

// Enhancer rewrites a summary. Implementations live in package enhance.
type Enhancer interface {
	Enhance(ctx context.Context, text string) (string, error)
}

// EnhanceState is the suggestion lifecycle of the summary editor.
type EnhanceState int

const (
	StateIdle EnhanceState = iota
	StateEnhancing
	StateSuggestionReady
)

func (s EnhanceState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEnhancing:
		return "enhancing"
	case StateSuggestionReady:
		return "suggestion ready"
	}
	return "unknown"
}

// SummaryEditor edits the summary text and runs the AI suggestion flow:
// Idle -> Enhancing -> SuggestionReady (or back to Idle on failure), and
// SuggestionReady -> Idle through Accept or Reject.
type SummaryEditor struct {
	*section[models.Summary]

	enhancer Enhancer

	// guarded by section.mu
	state      EnhanceState
	suggestion string
	generation uint64
}

func NewSummaryEditor(store *cvstore.Store, enhancer Enhancer, logger logging.Logger) *SummaryEditor {
	e := &SummaryEditor{
		enhancer: enhancer,
		section: newSection(store, logger, sectionDef[models.Summary]{
			origin:  cvstore.OriginSummary,
			extract: func(cv *models.CV) models.Summary { return cv.Summary },
			clone:   func(s models.Summary) models.Summary { return s },
			patch: func(s models.Summary) models.CVPatch {
				return models.CVPatch{Summary: &s}
			},
		}),
	}
	e.onReset = e.resetLocked
	e.attach()
	return e
}

// SetText replaces the draft text and marks it dirty.
func (e *SummaryEditor) SetText(text string) error {
	_, err := e.edit(func(s *models.Summary) (bool, error) {
		s.Text = text
		return true, nil
	})
	return err
}

// CanEnhance reports whether Enhance would issue a request.
func (e *SummaryEditor) CanEnhance() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enhanceGuardLocked() == nil
}

func (e *SummaryEditor) enhanceGuardLocked() error {
	if err := e.usableLocked(); err != nil {
		return err
	}
	if e.state == StateEnhancing {
		return common.ErrEnhanceInFlight
	}
	if strings.TrimSpace(e.draft.Text) == "" {
		return common.ErrEmptyText
	}
	return nil
}

// Enhance asks the enhancer for a rewrite of the current draft. On success
// the result is held as the pending suggestion and returned. The draft is
// never modified here.
func (e *SummaryEditor) Enhance(ctx context.Context) (string, error) {
	e.mu.Lock()
	if err := e.enhanceGuardLocked(); err != nil {
		e.mu.Unlock()
		return "", err
	}
	e.state = StateEnhancing
	e.suggestion = ""
	e.generation++
	gen := e.generation
	text := e.draft.Text
	e.mu.Unlock()

	ctx, done := e.bind(ctx)
	defer done()

	suggestion, err := e.enhancer.Enhance(ctx, text)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return "", ErrClosed
	}
	if gen != e.generation {
		return "", ErrStale
	}
	if err != nil {
		e.state = StateIdle
		e.logger.Warn(ctx, "summary enhancement failed", "error", err)
		return "", err
	}
	e.state = StateSuggestionReady
	e.suggestion = suggestion
	e.logger.Debug(ctx, "summary suggestion ready", "length", len(suggestion))
	return suggestion, nil
}

// State returns the current enhancement state.
func (e *SummaryEditor) State() EnhanceState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Suggestion returns the pending suggestion, if any.
func (e *SummaryEditor) Suggestion() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.suggestion, e.state == StateSuggestionReady
}

// Accept moves the suggestion into the draft and marks it dirty. It
// reports false and does nothing unless a suggestion is pending.
func (e *SummaryEditor) Accept() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.state != StateSuggestionReady {
		return false
	}
	e.draft.Text = e.suggestion
	e.dirty = true
	e.state, e.suggestion = StateIdle, ""
	return true
}

// Reject discards the pending suggestion. The draft is not touched.
func (e *SummaryEditor) Reject() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.state != StateSuggestionReady {
		return false
	}
	e.state, e.suggestion = StateIdle, ""
	return true
}

// resetLocked drops any suggestion and orphans an in-flight request.
func (e *SummaryEditor) resetLocked() {
	e.state, e.suggestion = StateIdle, ""
	e.generation++
}
