//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/external"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/tasks"
)

// MockQueue is a mock implementation of tasks.Queue
type MockQueue struct {
	mock.Mock
}

func (m *MockQueue) Enqueue(ctx context.Context, task *tasks.EmailTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockQueue) Dequeue(ctx context.Context) (*tasks.EmailTask, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tasks.EmailTask), args.Error(1)
}

// MockResultStore is a mock implementation of tasks.ResultStore
type MockResultStore struct {
	mock.Mock
}

func (m *MockResultStore) Save(ctx context.Context, result *tasks.TaskResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockResultStore) Get(ctx context.Context, taskID string) (*tasks.TaskResult, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tasks.TaskResult), args.Error(1)
}

// MockMailer is a mock implementation of tasks.Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, recipient string) error {
	args := m.Called(ctx, recipient)
	return args.Error(0)
}

// MockPostsClient is a mock implementation of external.PostsClient
type MockPostsClient struct {
	mock.Mock
}

func (m *MockPostsClient) FetchPosts(ctx context.Context, query *external.PostsQuery) ([]*external.Post, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*external.Post), args.Error(1)
}
