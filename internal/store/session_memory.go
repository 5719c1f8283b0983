package store

import (
	"context"
	"sync"
	"time"

	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/utils"
	"github.com/futuristic/perceptronx/models"
)

// memorySessionStore is the process-local [SessionStore] used when no Redis
// address is configured. Expiry is checked lazily on Find.
type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	ttl      time.Duration
	logger   *logger.Logger
}

// NewMemorySessionStore returns an in-memory [SessionStore]. Sessions do
// not survive a server restart.
func NewMemorySessionStore(ttl time.Duration, log *logger.Logger) SessionStore {
	log.Debug().Msg("creating in-memory session store")
	return &memorySessionStore{
		sessions: make(map[string]models.Session),
		ttl:      ttl,
		logger:   log,
	}
}

// Create registers a new session for userID and returns its opaque id.
func (s *memorySessionStore) Create(_ context.Context, userID int64, remember bool) (string, error) {
	session := models.Session{
		ID:         utils.GenerateUUID(),
		UserID:     userID,
		RememberMe: remember,
		CreatedAt:  nowUTC(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session.ID, nil
}

// Find resolves a session id, evicting it when it has outlived the TTL.
func (s *memorySessionStore) Find(_ context.Context, id string) (models.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return models.Session{}, ErrSessionNotFound
	}

	if !session.RememberMe && nowUTC().Sub(session.CreatedAt) > s.ttl {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

// Delete removes the session. Deleting an absent session is not an error.
func (s *memorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	return nil
}
