package store

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/matzehuels/knapsack/pkg/item"
	"github.com/matzehuels/knapsack/pkg/observability"
)

// MemoryStore is an in-memory pack store for development and testing.
// Snapshots are deep-copied on the way in and out, so callers can mutate
// their trees without corrupting the stored state.
type MemoryStore struct {
	mu    sync.RWMutex
	packs map[string]*item.Item
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{packs: make(map[string]*item.Item)}
}

// Get retrieves a deep copy of the stored pack.
func (s *MemoryStore) Get(ctx context.Context, id string) (*item.Item, error) {
	s.mu.RLock()
	root, ok := s.packs[id]
	s.mu.RUnlock()

	observability.Store().OnGet(ctx, "memory", id, ok)
	if !ok {
		return nil, ErrNotFound
	}
	return item.Clone(root), nil
}

// Set stores a deep copy of the pack.
func (s *MemoryStore) Set(ctx context.Context, id string, root *item.Item) error {
	cp := item.Clone(root)
	s.mu.Lock()
	s.packs[id] = cp
	s.mu.Unlock()

	observability.Store().OnSet(ctx, "memory", id, item.Total(cp)+1)
	return nil
}

// Delete removes a pack if present.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.packs, id)
	s.mu.Unlock()

	observability.Store().OnDelete(ctx, "memory", id)
	return nil
}

// List returns all stored pack IDs in sorted order.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.packs)), nil
}

// Close does nothing.
func (s *MemoryStore) Close() error { return nil }

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
