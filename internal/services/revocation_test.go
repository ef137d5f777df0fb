package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRevocationStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s := NewRedisRevocationStore(client)
	ctx := context.Background()

	ok, err := s.Contains(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Add(ctx, "tok", time.Minute))
	ok, err = s.Contains(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, mr.Exists(revokedTokenPrefix+"tok"))

	mr.FastForward(2 * time.Minute)
	ok, err = s.Contains(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisRevocationStore_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	_, err := NewRedisRevocationStore(client).Contains(context.Background(), "tok")
	assert.Error(t, err)
}

func TestMemoryRevocationStore(t *testing.T) {
	s := NewMemoryRevocationStore()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "short", time.Minute))
	require.NoError(t, s.Add(ctx, "forever", 0))

	ok, _ := s.Contains(ctx, "short")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	ok, _ = s.Contains(ctx, "short")
	assert.False(t, ok)

	ok, _ = s.Contains(ctx, "forever")
	assert.True(t, ok)

	ok, _ = s.Contains(ctx, "unknown")
	assert.False(t, ok)
}
