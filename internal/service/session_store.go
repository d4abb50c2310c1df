package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"clinic-portal/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const sessionKeyPrefix = "session:"

// SessionStore keeps sessions between requests.
// Get returns nil with a nil error when the session is unknown or ended.
type SessionStore interface {
	Save(ctx context.Context, session *entity.Session) error
	Get(ctx context.Context, tokenID string) (*entity.Session, error)
	Delete(ctx context.Context, tokenID string) error
}

type redisSessionStore struct {
	redisClient *redis.Client
	log         *logrus.Logger
	now         func() time.Time
}

func NewRedisSessionStore(redisClient *redis.Client, log *logrus.Logger) SessionStore {
	return &redisSessionStore{
		redisClient: redisClient,
		log:         log,
		now:         time.Now,
	}
}

func sessionKey(tokenID string) string {
	return sessionKeyPrefix + tokenID
}

// Save stores the session until its expiry
func (s *redisSessionStore) Save(ctx context.Context, session *entity.Session) error {
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return fmt.Errorf("session %s already expired", session.TokenID)
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	if err := s.redisClient.Set(ctx, sessionKey(session.TokenID), payload, ttl).Err(); err != nil {
		s.log.Warnf("Failed to store session in Redis: %+v", err)
		return err
	}
	return nil
}

func (s *redisSessionStore) Get(ctx context.Context, tokenID string) (*entity.Session, error) {
	payload, err := s.redisClient.Get(ctx, sessionKey(tokenID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		s.log.Warnf("Failed to read session from Redis: %+v", err)
		return nil, err
	}

	var session entity.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("corrupt session %s: %w", tokenID, err)
	}
	return &session, nil
}

// Delete ends the session. Deleting an unknown session is not an error.
func (s *redisSessionStore) Delete(ctx context.Context, tokenID string) error {
	if err := s.redisClient.Del(ctx, sessionKey(tokenID)).Err(); err != nil {
		s.log.Warnf("Failed to delete session from Redis: %+v", err)
		return err
	}
	return nil
}
