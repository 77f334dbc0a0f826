//go:build unit
// +build unit

package tokenstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/config"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/testutil"
)

func TestMemoryStore_RevokeAndCheck(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Revoke(context.Background(), "jti-1", time.Hour))

	revoked, err := store.IsRevoked(context.Background(), "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(context.Background(), "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestMemoryStore_EntryExpires(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Revoke(context.Background(), "jti-1", 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	revoked, err := store.IsRevoked(context.Background(), "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestMemoryStore_ExpiredTokenIgnored(t *testing.T) {
	store := NewMemoryStore()

	// A non-positive ttl means the token is already dead
	require.NoError(t, store.Revoke(context.Background(), "jti-1", -time.Minute))

	revoked, err := store.IsRevoked(context.Background(), "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestNewRevocationStore(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	settings := &config.AuthSettings{RevocationStore: config.RevocationStoreMemory}
	store, err := NewRevocationStore(settings, nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	settings.RevocationStore = config.RevocationStoreRedis
	_, err = NewRevocationStore(settings, nil, logger)
	assert.Error(t, err)

	settings.RevocationStore = "mongo"
	_, err = NewRevocationStore(settings, nil, logger)
	assert.Error(t, err)
}
