// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

type memoryTokenStore struct {
	tokens map[string]uuid.UUID
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{tokens: make(map[string]uuid.UUID)}
}

func (s *memoryTokenStore) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	s.tokens[token] = userID
	return nil
}

func (s *memoryTokenStore) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	_, ok := s.tokens[token]
	return ok, nil
}

func (s *memoryTokenStore) InvalidateRefreshToken(ctx context.Context, token string) error {
	delete(s.tokens, token)
	return nil
}

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("generates and validates a token pair", func(t *testing.T) {
		service := NewTokenService("test-secret", newMemoryTokenStore())

		pair, err := service.GenerateTokenPair(ctx, userID, "alice", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := service.ValidateAccessToken(ctx, pair.AccessToken)
		if err != nil {
			t.Fatalf("access token failed validation: %v", err)
		}
		if claims.UserID != userID || claims.Username != "alice" {
			t.Errorf("unexpected claims: %+v", claims)
		}

		if _, err := service.ValidateRefreshToken(ctx, pair.RefreshToken); err != nil {
			t.Fatalf("refresh token failed validation: %v", err)
		}
	})

	t.Run("rejects a refresh token where an access token is expected", func(t *testing.T) {
		service := NewTokenService("test-secret", newMemoryTokenStore())

		pair, err := service.GenerateTokenPair(ctx, userID, "alice", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := service.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
			t.Error("expected a token type mismatch error")
		}
	})

	t.Run("tokens minted within the same second are distinct", func(t *testing.T) {
		// Claim timestamps have one-second granularity, so uniqueness must
		// come from the jti. Identical strings would make refresh rotation
		// a no-op: invalidating the old token would also kill the new one.
		service := NewTokenService("test-secret", newMemoryTokenStore())

		first, err := service.GenerateTokenPair(ctx, userID, "alice", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := service.GenerateTokenPair(ctx, userID, "alice", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if first.RefreshToken == second.RefreshToken {
			t.Error("expected distinct refresh tokens for back-to-back pairs")
		}
		if first.AccessToken == second.AccessToken {
			t.Error("expected distinct access tokens for back-to-back pairs")
		}
	})

	t.Run("invalidated refresh token is no longer valid", func(t *testing.T) {
		service := NewTokenService("test-secret", newMemoryTokenStore())

		pair, err := service.GenerateTokenPair(ctx, userID, "alice", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := service.InvalidateRefreshToken(ctx, pair.RefreshToken); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		valid, err := service.IsRefreshTokenValid(ctx, pair.RefreshToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valid {
			t.Error("expected the token to be invalid after invalidation")
		}
	})

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		store := newMemoryTokenStore()
		service := NewTokenService("test-secret", store)
		other := NewTokenService("other-secret", store)

		pair, err := other.GenerateTokenPair(ctx, userID, "alice", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := service.ValidateAccessToken(ctx, pair.AccessToken); err == nil {
			t.Error("expected a signature validation error")
		}
	})
}
