package tokenstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/auth"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/config"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/logger"
)

// RedisStore tracks revoked token ids in redis so revocation survives
// restarts and is shared between instances. Keys expire together with the
// tokens they block.
type RedisStore struct {
	client *redis.Client
	logger logger.Logger
}

// NewRedisStore creates a new redis-backed RevocationStore implementation
func NewRedisStore(client *redis.Client, logger logger.Logger) auth.RevocationStore {
	return &RedisStore{
		client: client,
		logger: logger,
	}
}

func (s *RedisStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	key := config.RevokedTokenKeyPrefix + jti
	if err := s.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	s.logger.Debug("Revoked token ", jti)
	return nil
}

func (s *RedisStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	key := config.RevokedTokenKeyPrefix + jti
	count, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return count > 0, nil
}
