package taskqueue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/tasks"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/config"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/logger"
)

// RedisQueue carries email tasks between the API and the worker as JSON
// payloads on a redis list.
type RedisQueue struct {
	client *redis.Client
	logger logger.Logger
}

// NewRedisQueue creates a new redis-backed Queue implementation
func NewRedisQueue(client *redis.Client, logger logger.Logger) tasks.Queue {
	return &RedisQueue{
		client: client,
		logger: logger,
	}
}

func (q *RedisQueue) Enqueue(ctx context.Context, task *tasks.EmailTask) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to serialize task: %w", err)
	}

	if err := q.client.LPush(ctx, config.EmailQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	q.logger.Info("Enqueued email task ", task.ID)
	return nil
}

func (q *RedisQueue) Dequeue(ctx context.Context) (*tasks.EmailTask, error) {
	// A zero timeout blocks until a payload arrives or ctx is cancelled
	values, err := q.client.BRPop(ctx, 0, config.EmailQueueKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to dequeue task: %w", err)
	}

	// BRPOP returns the key name followed by the payload
	var task tasks.EmailTask
	if err := json.Unmarshal([]byte(values[1]), &task); err != nil {
		return nil, fmt.Errorf("failed to deserialize task: %w", err)
	}

	return &task, nil
}
