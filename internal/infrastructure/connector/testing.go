//go:build integration
// +build integration

package connector

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/testutil"
)

// TestRedisURL points at a database reserved for tests
const TestRedisURL = "redis://localhost:6379/9"

// SetupTestRedis connects to the test redis database and registers a
// cleanup that flushes it
func SetupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	client, err := NewRedisClient(context.Background(), TestRedisURL, logger)
	require.NoError(t, err, "Failed to connect to test redis")

	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})

	return client
}
