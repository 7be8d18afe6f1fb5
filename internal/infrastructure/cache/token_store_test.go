package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/infrastructure/cache"
)

func TestRedisTokenStore_RevocaHastaExpirar(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := cache.NewRedisTokenStore(client)

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Minute))
	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Minute)
	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked, "la marca expira junto con el token")
}

func TestRedisTokenStore_ErrorDeConexion(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := cache.NewRedisTokenStore(client)
	mr.Close()

	_, err := store.IsRevoked(context.Background(), "jti-1")
	assert.Error(t, err)
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := cache.NewRedisClient(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	defer client.Close()

	_, err = cache.NewRedisClient(context.Background(), "no-es-url")
	assert.Error(t, err)
}

func TestNoopTokenStore(t *testing.T) {
	var s cache.NoopTokenStore
	require.NoError(t, s.Revoke(context.Background(), "x", time.Minute))
	revoked, err := s.IsRevoked(context.Background(), "x")
	require.NoError(t, err)
	assert.False(t, revoked)
}
