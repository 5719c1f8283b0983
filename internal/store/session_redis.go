package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/futuristic/perceptronx/internal/config"
	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/utils"
	"github.com/futuristic/perceptronx/models"
)

// redisSessionStore keeps sessions in Redis under "session:<id>" keys.
// Regular sessions expire through the key TTL; remember-me sessions are
// stored without expiry and live until an explicit logout.
type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisSessionStore connects to Redis and returns a [SessionStore]
// backed by it. ttl bounds the lifetime of sessions created without
// remember-me.
func NewRedisSessionStore(ctx context.Context, cfg config.Redis, ttl time.Duration, log *logger.Logger) (SessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisSessionStore").Msg("error connecting redis (ping)")
		return nil, fmt.Errorf("%w: %v", ErrConnectionProblems, err)
	}
	log.Info().Str("func", "NewRedisSessionStore").Str("addr", cfg.Addr).Msg("connected to redis successfully")

	return &redisSessionStore{
		client: client,
		ttl:    ttl,
		logger: log,
	}, nil
}

// Create registers a new session for userID and returns its opaque id.
func (s *redisSessionStore) Create(ctx context.Context, userID int64, remember bool) (string, error) {
	session := models.Session{
		ID:         utils.GenerateUUID(),
		UserID:     userID,
		RememberMe: remember,
		CreatedAt:  nowUTC(),
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("error encoding session: %w", err)
	}

	ttl := s.ttl
	if remember {
		// remember-me sessions never expire on their own
		ttl = 0
	}

	if err := s.client.Set(ctx, sessionKey(session.ID), payload, ttl).Err(); err != nil {
		s.logger.Err(err).Str("func", "*redisSessionStore.Create").Msg("error storing session")
		return "", fmt.Errorf("error storing session: %w", err)
	}

	return session.ID, nil
}

// Find resolves a session id. Expired keys vanish from Redis, so both
// unknown and expired ids surface as [ErrSessionNotFound].
func (s *redisSessionStore) Find(ctx context.Context, id string) (models.Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Session{}, ErrSessionNotFound
		}
		s.logger.Err(err).Str("func", "*redisSessionStore.Find").Msg("error loading session")
		return models.Session{}, fmt.Errorf("error loading session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return models.Session{}, fmt.Errorf("error decoding session: %w", err)
	}

	return session, nil
}

// Delete removes the session. Deleting an absent session is not an error.
func (s *redisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		s.logger.Err(err).Str("func", "*redisSessionStore.Delete").Msg("error deleting session")
		return fmt.Errorf("error deleting session: %w", err)
	}

	return nil
}

func sessionKey(id string) string {
	return "session:" + id
}
