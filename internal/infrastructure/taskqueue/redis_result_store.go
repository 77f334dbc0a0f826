package taskqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/tasks"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/config"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/logger"
)

// RedisResultStore keeps task outcomes in redis for a day, mirroring the
// queue so that API instances and workers share one view of task state.
type RedisResultStore struct {
	client *redis.Client
	logger logger.Logger
}

// NewRedisResultStore creates a new redis-backed ResultStore implementation
func NewRedisResultStore(client *redis.Client, logger logger.Logger) tasks.ResultStore {
	return &RedisResultStore{
		client: client,
		logger: logger,
	}
}

func (s *RedisResultStore) Save(ctx context.Context, result *tasks.TaskResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to serialize task result: %w", err)
	}

	key := config.TaskResultKeyPrefix + result.TaskID
	if err := s.client.Set(ctx, key, payload, config.TaskResultTTL).Err(); err != nil {
		return fmt.Errorf("failed to save task result: %w", err)
	}

	s.logger.Debug("Saved result for task ", result.TaskID)
	return nil
}

func (s *RedisResultStore) Get(ctx context.Context, taskID string) (*tasks.TaskResult, error) {
	key := config.TaskResultKeyPrefix + taskID
	payload, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, tasks.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch task result: %w", err)
	}

	var result tasks.TaskResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("failed to deserialize task result: %w", err)
	}

	return &result, nil
}
