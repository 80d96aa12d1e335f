// Package editor implements per-section drafts of the CV: contact details,
// skills and summary. Each section keeps a private copy of its slice of the
// document, tracks whether it was edited, and writes it back on Save.
package editor

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/jobdesk/internal/client/cvstore"
	"github.com/dmitrijs2005/jobdesk/internal/client/models"
	"github.com/dmitrijs2005/jobdesk/internal/common"
	"github.com/dmitrijs2005/jobdesk/internal/logging"
)

var (
	// ErrClosed is returned by operations on, or completing after, Close.
	ErrClosed = errors.New("editor closed")
	// ErrStale is returned when a response arrives for a document that has
	// since been replaced or cleared.
	ErrStale = errors.New("response discarded: document changed")
)

// sectionDef describes how a section maps onto the document.
type sectionDef[T any] struct {
	origin  cvstore.Origin
	extract func(cv *models.CV) T
	clone   func(T) T
	patch   func(T) models.CVPatch
}

// section is the state shared by all editors. mu guards every field below
// it, including state added by the wrapping editor.
type section[T any] struct {
	def    sectionDef[T]
	store  *cvstore.Store
	logger logging.Logger

	life   context.Context
	cancel context.CancelFunc
	unsub  func()

	mu     sync.Mutex
	draft  T
	dirty  bool
	loaded bool
	synced uint64
	seen   bool
	closed bool

	// onReset runs under mu when the document goes away.
	onReset func()
}

func newSection[T any](store *cvstore.Store, logger logging.Logger, def sectionDef[T]) *section[T] {
	if logger == nil {
		logger = logging.Discard()
	}
	life, cancel := context.WithCancel(context.Background())
	return &section[T]{
		def:    def,
		store:  store,
		logger: logger.With("component", "editor", "section", string(def.origin)),
		life:   life,
		cancel: cancel,
	}
}

// attach starts following the store. It must be called once, after the
// wrapping editor has finished its own setup.
func (s *section[T]) attach() {
	unsub := s.store.Subscribe(s.onSnapshot)
	s.mu.Lock()
	s.unsub = unsub
	s.mu.Unlock()
}

// onSnapshot copies the document slice into the draft. Older or repeated
// revisions are ignored. Saves of other sections refresh this draft only
// while it is clean; loads always overwrite it.
func (s *section[T]) onSnapshot(snap cvstore.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || (s.seen && snap.Revision <= s.synced) {
		return
	}
	s.seen, s.synced = true, snap.Revision

	if snap.CV == nil {
		var zero T
		s.draft, s.dirty, s.loaded = zero, false, false
		if s.onReset != nil {
			s.onReset()
		}
		return
	}

	foreign := snap.Origin != cvstore.OriginLoad && snap.Origin != s.def.origin
	if foreign && s.dirty && s.loaded {
		return
	}
	s.draft = s.def.extract(snap.CV)
	s.dirty = false
	s.loaded = true
}

// Draft returns a copy of the current draft.
func (s *section[T]) Draft() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.def.clone(s.draft)
}

// Dirty reports whether the draft has unsaved edits.
func (s *section[T]) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// CanSave reports whether saving is meaningful: a document is loaded and
// the draft is dirty. Save itself does not enforce it.
func (s *section[T]) CanSave() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded && s.dirty && !s.closed
}

// Loaded reports whether a document is available.
func (s *section[T]) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// edit applies fn to the draft under the lock. fn reports whether it
// changed anything; only effective edits mark the draft dirty.
func (s *section[T]) edit(fn func(draft *T) (bool, error)) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.usableLocked(); err != nil {
		return false, err
	}
	changed, err := fn(&s.draft)
	if err != nil {
		return false, err
	}
	if changed {
		s.dirty = true
	}
	return changed, nil
}

func (s *section[T]) usableLocked() error {
	if s.closed {
		return ErrClosed
	}
	if !s.loaded {
		return common.ErrNoDocument
	}
	return nil
}

// Save sends the whole draft, changed or not. When the request completes
// the draft takes the server's version of the slice and dirty is cleared,
// even if edits were made while the request was in flight.
func (s *section[T]) Save(ctx context.Context) error {
	s.mu.Lock()
	if err := s.usableLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	payload := s.def.clone(s.draft)
	s.mu.Unlock()

	ctx, done := s.bind(ctx)
	defer done()

	cv, err := s.store.Update(ctx, s.def.patch(payload))

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if err != nil {
		s.logger.Warn(ctx, "save failed", "error", err)
		return err
	}
	s.draft = s.def.extract(cv)
	s.dirty = false
	s.logger.Info(ctx, "section saved")
	return nil
}

// bind derives a request context that is also cancelled by Close.
func (s *section[T]) bind(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(s.life, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

// Close cancels in-flight requests and stops following the document.
// Responses arriving afterwards are dropped. Close is idempotent.
func (s *section[T]) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	unsub := s.unsub
	s.mu.Unlock()

	s.cancel()
	if unsub != nil {
		unsub()
	}
}
