package metadata

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// MemoryRepository is an in-process Repository, used when no database is
// configured and as a test double.
type MemoryRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string][]byte)}
}

func (r *MemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	return slices.Clone(v), nil
}

func (r *MemoryRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if value == nil {
		value = []byte{}
	}
	r.data[key] = slices.Clone(value)
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

func (r *MemoryRepository) List(_ context.Context) (map[string][]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string][]byte, len(r.data))
	for k, v := range r.data {
		out[k] = slices.Clone(v)
	}
	return out, nil
}

func (r *MemoryRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.data)
	return nil
}

// RunInTx applies fn to a staged copy and publishes it only when fn
// returns nil.
func (r *MemoryRepository) RunInTx(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	staged := &MemoryRepository{data: maps.Clone(r.data)}
	if err := fn(ctx, staged); err != nil {
		return err
	}
	r.data = staged.data
	return nil
}

// Keys returns the stored keys in sorted order.
func (r *MemoryRepository) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.data))
}

var (
	_ Store = (*MemoryRepository)(nil)
	_ Store = (*SQLiteStore)(nil)
)
