package mockcache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
)

// Store is an in-memory cache.Store for tests. It stamps writes with
// the injected clock so TTL behavior can be tested by advancing a
// clock.Mock.
type Store struct {
	mu      sync.Mutex
	clock   clock.Clock
	entries map[string]entry

	// Failing makes every operation return FailErr, simulating a
	// broken local store.
	Failing bool
	FailErr error

	Gets int
	Puts int
}

type entry struct {
	value   json.RawMessage
	updated time.Time
}

func New(clock clock.Clock) *Store {
	return &Store{
		clock:   clock,
		entries: make(map[string]entry),
	}
}

func (s *Store) Get(ctx context.Context, key string) (json.RawMessage, time.Time, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Gets++
	if s.Failing {
		return nil, time.Time{}, false, s.FailErr
	}

	e, found := s.entries[key]
	if !found {
		return nil, time.Time{}, false, nil
	}
	return e.value, e.updated, true, nil
}

func (s *Store) Put(ctx context.Context, key string, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Puts++
	if s.Failing {
		return s.FailErr
	}

	s.entries[key] = entry{value: value, updated: s.clock.Now().UTC()}
	return nil
}
