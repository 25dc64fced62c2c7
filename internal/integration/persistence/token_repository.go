// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-planner/backend/internal/application/adapter"
)

// refreshTokenKeyPrefix namespaces refresh token keys in Redis.
const refreshTokenKeyPrefix = "refresh_token:"

// redisTokenStore implements the adapter.RefreshTokenStore interface on
// Redis. Expiry is delegated to key TTLs, so expired tokens vanish without
// a cleanup job.
type redisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore creates a new Redis-backed refresh token store.
func NewRedisTokenStore(client *redis.Client) adapter.RefreshTokenStore {
	return &redisTokenStore{
		client: client,
	}
}

// SaveRefreshToken stores a refresh token for a user until expiresAt.
func (s *redisTokenStore) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, refreshTokenKeyPrefix+token, userID.String(), ttl).Err()
}

// IsRefreshTokenValid checks whether a refresh token is present in the store.
func (s *redisTokenStore) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	err := s.client.Get(ctx, refreshTokenKeyPrefix+token).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// InvalidateRefreshToken removes a refresh token from the store.
func (s *redisTokenStore) InvalidateRefreshToken(ctx context.Context, token string) error {
	return s.client.Del(ctx, refreshTokenKeyPrefix+token).Err()
}
