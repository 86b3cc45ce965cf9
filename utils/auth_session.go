// File: utils/auth_session.go
package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Session is the server-side record of a dashboard login. It is keyed by the
// SHA-256 hash of the issued token so the token itself is never stored.
type Session struct {
	AccountID     string    `json:"accountId"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// RedisSessionStore keeps sessions in Redis with a sliding TTL.
type RedisSessionStore struct {
	Client *redis.Client
}

func sessionKey(tokenHash string) string {
	return SessionPrefix + tokenHash
}

// Save stores the session with a TTL.
func (s *RedisSessionStore) Save(ctx context.Context, tokenHash string, session Session, ttl time.Duration) error {
	session.LastUpdatedAt = time.Now().UTC()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKey(tokenHash), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Get loads a session and refreshes its TTL. It returns nil when the session does not exist.
func (s *RedisSessionStore) Get(ctx context.Context, tokenHash string, ttl time.Duration) (*Session, error) {
	data, err := s.Client.Get(ctx, sessionKey(tokenHash)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	if err := s.Client.Expire(ctx, sessionKey(tokenHash), ttl).Err(); err != nil {
		GetLogger().Sugar().Warnf("failed to refresh session TTL: %v", err)
	}
	return &session, nil
}

// Delete removes a session.
func (s *RedisSessionStore) Delete(ctx context.Context, tokenHash string) error {
	if err := s.Client.Del(ctx, sessionKey(tokenHash)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
