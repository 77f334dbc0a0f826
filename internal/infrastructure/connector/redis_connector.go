package connector

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/logger"
)

// NewRedisClient connects to the redis server behind the given URL and
// verifies the connection with a ping before handing the client out.
// URLs follow the redis scheme, e.g. redis://localhost:6379/0.
func NewRedisClient(ctx context.Context, url string, logger logger.Logger) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opt.Addr, err)
	}

	logger.Info("Connected to redis at ", opt.Addr, " db ", opt.DB)
	return client, nil
}
