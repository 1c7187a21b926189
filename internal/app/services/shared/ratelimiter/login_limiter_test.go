package ratelimiter

import (
	"clinicbook-service/internal/app/services/shared/redis"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoginLimiter_Allow(t *testing.T) {
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter := NewLoginLimiter(redis.NewRedisRepository(client), zap.NewNop(), time.Minute, 3).(*loginLimiter)
	clock := time.Date(2025, time.June, 27, 9, 0, 10, 0, time.UTC)
	limiter.nowUTC = func() time.Time { return clock }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, _, err := limiter.Allow(ctx, "Dr.House")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, retryAfter, err := limiter.Allow(ctx, " dr.house ")
	require.NoError(t, err)
	assert.False(t, allowed, "usernames are compared case and space insensitive")
	assert.Equal(t, 51, retryAfter)

	allowed, _, err = limiter.Allow(ctx, "dr.wilson")
	require.NoError(t, err)
	assert.True(t, allowed, "quota is per username")

	clock = clock.Add(time.Minute)
	allowed, _, err = limiter.Allow(ctx, "dr.house")
	require.NoError(t, err)
	assert.True(t, allowed, "next window starts fresh")
}

func TestLoginLimiter_Disabled(t *testing.T) {
	limiter := NewLoginLimiter(nil, zap.NewNop(), time.Minute, 0)

	allowed, _, err := limiter.Allow(context.Background(), "anyone")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestLoginLimiter_RedisDown(t *testing.T) {
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	server.Close()

	limiter := NewLoginLimiter(redis.NewRedisRepository(client), zap.NewNop(), time.Minute, 3)
	_, _, err := limiter.Allow(context.Background(), "dr.house")
	assert.Error(t, err)
}
