package tokenstore

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/auth"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/config"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/logger"
)

// NewRevocationStore selects the revocation backend configured in settings.
// The redis client may be nil when the memory backend is selected.
func NewRevocationStore(settings *config.AuthSettings, client *redis.Client, logger logger.Logger) (auth.RevocationStore, error) {
	switch settings.RevocationStore {
	case config.RevocationStoreMemory:
		return NewMemoryStore(), nil
	case config.RevocationStoreRedis:
		if client == nil {
			return nil, fmt.Errorf("redis client is required for the redis revocation store")
		}
		return NewRedisStore(client, logger), nil
	default:
		return nil, fmt.Errorf("unsupported revocation store type: %s", settings.RevocationStore)
	}
}
