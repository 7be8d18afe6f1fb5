// Package cache guarda en Redis los jti de tokens revocados en logout.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/estoque-api/internal/application/auth"
)

const revokedPrefix = "auth:revoked:"

var (
	_ auth.TokenStore = (*RedisTokenStore)(nil)
	_ auth.TokenStore = NoopTokenStore{}
)

// NewRedisClient abre el cliente a partir de una URL redis://... y verifica la conexión.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: url inválida: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return client, nil
}

// RedisTokenStore lista de revocación con expiración nativa de Redis.
type RedisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore construye el store sobre un cliente existente.
func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

// Revoke marca el jti como revocado durante ttl (lo que le queda de vida al token).
func (s *RedisTokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if err := s.client.Set(ctx, revokedPrefix+jti, 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// IsRevoked indica si el jti fue revocado y aún no expiró.
func (s *RedisTokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := s.client.Get(ctx, revokedPrefix+jti).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	default:
		return false, fmt.Errorf("redis get: %w", err)
	}
}

// NoopTokenStore se usa cuando no hay Redis configurado: el logout no revoca y ningún token figura como revocado.
type NoopTokenStore struct{}

func (NoopTokenStore) Revoke(context.Context, string, time.Duration) error { return nil }

func (NoopTokenStore) IsRevoked(context.Context, string) (bool, error) { return false, nil }
