package testing

import (
	"context"
	"net"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

// GetRedisClientAndCtx returns a client for the redis at WORKOUTS_TEST_REDIS_HOST
// (port WORKOUTS_TEST_REDIS_PORT, default 6379; password WORKOUTS_REDIS_PASS).
// The test is skipped when no host is set. Client and context are released on cleanup.
func GetRedisClientAndCtx(t *testing.T) (context.Context, *redis.Client) {
	t.Helper()

	host := os.Getenv("WORKOUTS_TEST_REDIS_HOST")
	if host == "" {
		t.Skip("WORKOUTS_TEST_REDIS_HOST not set")
	}
	port := os.Getenv("WORKOUTS_TEST_REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: os.Getenv("WORKOUTS_REDIS_PASS"),
	})
	t.Cleanup(func() {
		cancel()
		_ = rdb.Close()
	})

	require.NoError(t, rdb.Ping(ctx).Err(), "ping redis at %s:%s", host, port)
	return ctx, rdb
}
