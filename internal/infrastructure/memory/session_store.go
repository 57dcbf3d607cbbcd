package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sparcom/backend/internal/domain"
)

// SessionStore keeps sessions in a map. Expired entries are filtered on
// read, matching the Postgres store. Test-only.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]domain.Session)}
}

func (s *SessionStore) Create(ctx context.Context, sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = sess
	return nil
}

func (s *SessionStore) ResolveUserID(ctx context.Context, token string, now time.Time) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	if !ok || sess.Expired(now) {
		return "", domain.ErrSessionInvalid()
	}
	return sess.UserID, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// Len reports live plus expired entries, for test assertions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
