package memory

import (
	"sync"

	"jeoparty-service/internal/app"
	"jeoparty-service/internal/config"
)

// SessionStore is an in-memory implementation of app.SessionRepository.
type SessionStore struct {
	rules    config.Rules
	mu       sync.RWMutex
	sessions map[string]*app.Session
}

func NewSessionStore(rules config.Rules) *SessionStore {
	return &SessionStore{
		rules:    rules,
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
	}
}
