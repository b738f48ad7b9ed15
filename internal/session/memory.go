package session

import (
	"context"
	"sync"
	"time"

	"example.com/fittrack/internal/observability"
)

// MemoryStore keeps sessions in a mutex-guarded process-local map. Sessions
// do not survive a restart. An expired entry keeps occupying memory until
// the next Resolve observes it.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]Session
	now      func() time.Time
}

// NewMemoryStore constructs a store issuing sessions with the given TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

// Issue implements Store.
func (m *MemoryStore) Issue(ctx context.Context, userID int64) (Session, error) {
	token, err := GenerateToken()
	if err != nil {
		return Session{}, err
	}

	s := Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: m.now().Add(m.ttl),
	}

	m.mu.Lock()
	m.sessions[token] = s
	m.mu.Unlock()

	observability.RecordSessionIssued()
	return s, nil
}

// Resolve implements Store. Expired entries are deleted on read.
func (m *MemoryStore) Resolve(ctx context.Context, token string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return nil, nil
	}
	if !s.ExpiresAt.After(m.now()) {
		delete(m.sessions, token)
		observability.RecordSessionExpired()
		return nil, nil
	}
	return &s, nil
}

// Revoke implements Store.
func (m *MemoryStore) Revoke(ctx context.Context, token string) error {
	m.mu.Lock()
	if _, ok := m.sessions[token]; ok {
		delete(m.sessions, token)
		observability.RecordSessionRevoked()
	}
	m.mu.Unlock()
	return nil
}
