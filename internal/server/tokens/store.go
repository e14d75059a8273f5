// Package tokens stores refresh tokens in Redis with a TTL. A refresh token
// is an opaque uuid; the value it maps to is the account email.
package tokens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/wheelmarket/wheelmarket/internal/common"
)

const refreshTokenKeyPrefix = "refresh_token:"

type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(addr string, ttl time.Duration) *Store {
	return &Store{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

// Issue mints a refresh token for the account and stores it with the
// configured TTL.
func (s *Store) Issue(ctx context.Context, email string) (string, error) {
	id := uuid.NewString()
	if err := s.client.Set(ctx, refreshTokenKeyPrefix+id, email, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("storing refresh token: %w", err)
	}
	return id, nil
}

// Resolve returns the email a refresh token was issued to. Unknown or
// expired tokens map to common.ErrInvalidToken.
func (s *Store) Resolve(ctx context.Context, tokenID string) (string, error) {
	email, err := s.client.Get(ctx, refreshTokenKeyPrefix+tokenID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", common.ErrInvalidToken
		}
		return "", fmt.Errorf("reading refresh token: %w", err)
	}
	return email, nil
}

// Revoke invalidates a refresh token. Revoking an unknown token is a no-op.
func (s *Store) Revoke(ctx context.Context, tokenID string) error {
	if err := s.client.Del(ctx, refreshTokenKeyPrefix+tokenID).Err(); err != nil {
		return fmt.Errorf("revoking refresh token: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
