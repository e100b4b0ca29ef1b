package redis

import (
	"context"
	"sync"
	"time"

	"jeoparty-service/internal/app"
	"jeoparty-service/internal/config"
	"github.com/redis/go-redis/v9"
)

// SessionStore is a Redis-aware implementation of SessionRepository.
// Notes:
//   - It still keeps a local in-memory map of sessions because the countdown
//     timers and subscriber channels are in-process state.
//   - Redis is used to mark session liveness so operators can see which games
//     are running (and it could be extended to route cross-instance pub/sub).
type SessionStore struct {
	client   *redis.Client
	rules    config.Rules
	ttl      time.Duration
	mu       sync.RWMutex
	sessions map[string]*app.Session
}

func NewSessionStore(client *redis.Client, rules config.Rules, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client:   client,
		rules:    rules,
		ttl:      ttl,
		sessions: make(map[string]*app.Session),
	}
}

func (s *SessionStore) GetOrCreate(gameID string) *app.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[gameID]; ok {
		return session
	}
	session := app.NewSession(gameID, s.rules)
	s.sessions[gameID] = session
	// best-effort liveness marker
	_ = s.client.Set(context.Background(), s.key(gameID), "1", s.ttl).Err()
	return session
}

func (s *SessionStore) Get(gameID string) (*app.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[gameID]
	return session, ok
}

func (s *SessionStore) DeleteIfIdle(gameID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[gameID]
	if !ok {
		return
	}
	if session.IsIdle() {
		delete(s.sessions, gameID)
		_ = s.client.Del(context.Background(), s.key(gameID)).Err()
	}
}

func (s *SessionStore) key(gameID string) string {
	return "jeoparty:session:" + gameID
}
