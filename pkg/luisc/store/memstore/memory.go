package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/conversekit/luisc/pkg/luisc/store"
)

// Store is an in-memory implementation of store.Store for tests and
// ephemeral runs.
type Store struct {
	mu     sync.RWMutex
	builds map[string]store.Build
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{builds: make(map[string]store.Build)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveBuild records a build, keyed by ID.
func (s *Store) SaveBuild(ctx context.Context, b store.Build) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.builds[b.ID] = b
	return nil
}

// GetBuild returns a build by ID.
func (s *Store) GetBuild(ctx context.Context, id string) (store.Build, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.builds[id]
	return b, ok, nil
}

// ListBuilds returns up to limit builds, newest first. ULIDs order by
// creation time, so sorting by ID descending is sorting by recency.
func (s *Store) ListBuilds(ctx context.Context, limit int) ([]store.Build, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	out := make([]store.Build, 0, len(s.builds))
	for _, b := range s.builds {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
