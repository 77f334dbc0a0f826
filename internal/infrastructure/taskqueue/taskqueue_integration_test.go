//go:build integration
// +build integration

package taskqueue

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/tasks"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/infrastructure/connector"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/testutil"
)

func TestRedisQueue_RoundTrip(t *testing.T) {
	client := connector.SetupTestRedis(t)
	queue := NewRedisQueue(client, testutil.SetupTestLogger(t))

	task := &tasks.EmailTask{
		ID:         uuid.NewString(),
		Email:      "alice@example.com",
		EnqueuedAt: time.Now().UTC(),
	}
	require.NoError(t, queue.Enqueue(context.Background(), task))

	dequeued, err := queue.Dequeue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, task.ID, dequeued.ID)
	assert.Equal(t, task.Email, dequeued.Email)
}

func TestRedisQueue_FIFO(t *testing.T) {
	client := connector.SetupTestRedis(t)
	queue := NewRedisQueue(client, testutil.SetupTestLogger(t))

	first := &tasks.EmailTask{ID: uuid.NewString(), Email: "first@example.com", EnqueuedAt: time.Now().UTC()}
	second := &tasks.EmailTask{ID: uuid.NewString(), Email: "second@example.com", EnqueuedAt: time.Now().UTC()}

	require.NoError(t, queue.Enqueue(context.Background(), first))
	require.NoError(t, queue.Enqueue(context.Background(), second))

	dequeued, err := queue.Dequeue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.ID, dequeued.ID)

	dequeued, err = queue.Dequeue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, second.ID, dequeued.ID)
}

func TestRedisQueue_Dequeue_ContextCancelled(t *testing.T) {
	client := connector.SetupTestRedis(t)
	queue := NewRedisQueue(client, testutil.SetupTestLogger(t))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	// The queue is empty, so the blocking pop must give up with the context
	_, err := queue.Dequeue(ctx)
	assert.Error(t, err)
}

func TestRedisResultStore_SaveAndGet(t *testing.T) {
	client := connector.SetupTestRedis(t)
	store := NewRedisResultStore(client, testutil.SetupTestLogger(t))

	result := &tasks.TaskResult{
		TaskID:      uuid.NewString(),
		Email:       "alice@example.com",
		Status:      tasks.StatusSent,
		Detail:      "Email sent.",
		CompletedAt: time.Now().UTC(),
	}
	require.NoError(t, store.Save(context.Background(), result))

	fetched, err := store.Get(context.Background(), result.TaskID)
	require.NoError(t, err)
	assert.Equal(t, result.TaskID, fetched.TaskID)
	assert.Equal(t, tasks.StatusSent, fetched.Status)
	assert.Equal(t, "Email sent.", fetched.Detail)
}

func TestRedisResultStore_Get_NotFound(t *testing.T) {
	client := connector.SetupTestRedis(t)
	store := NewRedisResultStore(client, testutil.SetupTestLogger(t))

	_, err := store.Get(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, tasks.ErrNotFound)
}
