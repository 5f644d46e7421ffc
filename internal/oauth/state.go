package oauth

import (
	"sync"
	"time"
)

// stateEntry binds a state nonce to the provider that issued it
type stateEntry struct {
	provider  string
	expiresAt time.Time
}

// stateStore holds in-flight login state nonces. Entries are single-use and
// pruned lazily on insert.
type stateStore struct {
	mu      sync.Mutex
	entries map[string]stateEntry
}

func newStateStore() *stateStore {
	return &stateStore{entries: make(map[string]stateEntry)}
}

// Put registers a nonce for the provider with the given TTL
func (s *stateStore) Put(state, provider string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for key, entry := range s.entries {
		if entry.expiresAt.Before(now) {
			delete(s.entries, key)
		}
	}
	s.entries[state] = stateEntry{provider: provider, expiresAt: now.Add(ttl)}
}

// Consume removes the nonce and reports whether it was valid for the provider
func (s *stateStore) Consume(state, provider string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[state]
	if !ok {
		return false
	}
	delete(s.entries, state)
	return entry.provider == provider && entry.expiresAt.After(time.Now())
}
