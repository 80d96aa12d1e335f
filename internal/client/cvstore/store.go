// Package cvstore holds the CV document shared by every editor section.
// It is the single place that talks to the CV endpoints; editors observe it
// through Subscribe and write through Update.
package cvstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/jobdesk/internal/client/api"
	"github.com/dmitrijs2005/jobdesk/internal/client/models"
	"github.com/dmitrijs2005/jobdesk/internal/logging"
)

// Origin says what produced a snapshot.
type Origin string

const (
	OriginLoad    Origin = "load"
	OriginClear   Origin = "clear"
	OriginContact Origin = "contact_info"
	OriginSkills  Origin = "skills"
	OriginSummary Origin = "summary"
)

// Snapshot is one published state of the document. Revision grows by one
// with every publication. CV is nil when no document is loaded. Receivers
// must treat CV as read-only.
type Snapshot struct {
	CV       *models.CV
	Revision uint64
	Origin   Origin
}

// Store is safe for concurrent use. Subscribers are called outside the
// state lock, one publication at a time, in revision order.
type Store struct {
	client api.CVClient
	logger logging.Logger

	pubMu sync.Mutex

	mu     sync.Mutex
	cv     *models.CV
	rev    uint64
	origin Origin
	subs   map[int]func(Snapshot)
	nextID int
}

func New(client api.CVClient, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Store{
		client: client,
		logger: logger.With("component", "cvstore"),
		subs:   make(map[int]func(Snapshot)),
	}
}

// Current returns the latest snapshot.
func (s *Store) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{CV: s.cv, Revision: s.rev, Origin: s.origin}
}

// Load fetches the document from the server and publishes it.
func (s *Store) Load(ctx context.Context) (*models.CV, error) {
	cv, err := s.client.GetCV(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cv: %w", err)
	}
	s.publish(cv, OriginLoad)
	s.logger.Debug(ctx, "cv loaded", "id", cv.ID)
	return cv, nil
}

// Update sends patch and publishes the document the server returns.
// The patch is expected to carry exactly one section.
func (s *Store) Update(ctx context.Context, patch models.CVPatch) (*models.CV, error) {
	origin, err := originOf(patch)
	if err != nil {
		return nil, err
	}
	cv, err := s.client.UpdateCV(ctx, patch)
	if err != nil {
		return nil, fmt.Errorf("update cv %s: %w", origin, err)
	}
	s.publish(cv, origin)
	s.logger.Debug(ctx, "cv updated", "section", origin)
	return cv, nil
}

// Clear forgets the document, e.g. after logout.
func (s *Store) Clear() {
	s.publish(nil, OriginClear)
}

// Subscribe registers fn and immediately delivers the current snapshot to
// it. The returned func unregisters fn and may be called more than once.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	snap := Snapshot{CV: s.cv, Revision: s.rev, Origin: s.origin}
	s.mu.Unlock()

	fn(snap)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) publish(cv *models.CV, origin Origin) {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	s.cv = cv
	s.rev++
	s.origin = origin
	snap := Snapshot{CV: cv, Revision: s.rev, Origin: origin}
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func originOf(p models.CVPatch) (Origin, error) {
	var (
		origin Origin
		n      int
	)
	if p.ContactInfo != nil {
		origin, n = OriginContact, n+1
	}
	if p.Skills != nil {
		origin, n = OriginSkills, n+1
	}
	if p.Summary != nil {
		origin, n = OriginSummary, n+1
	}
	if n != 1 {
		return "", fmt.Errorf("cv patch must carry exactly one section, got %d", n)
	}
	return origin, nil
}
