package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/tasks"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/logger"
)

// emailTaskService implements the EmailTaskService interface for queued email delivery
type emailTaskService struct {
	queue       tasks.Queue
	resultStore tasks.ResultStore
	mailer      tasks.Mailer
	logger      logger.Logger
}

// NewEmailTaskService creates a new instance of EmailTaskService
func NewEmailTaskService(queue tasks.Queue, resultStore tasks.ResultStore, mailer tasks.Mailer, logger logger.Logger) (tasks.EmailTaskService, error) {
	return &emailTaskService{
		queue:       queue,
		resultStore: resultStore,
		mailer:      mailer,
		logger:      logger,
	}, nil
}

// Enqueue validates the recipient and pushes a new email task onto the queue.
// It returns the queued EmailTask and any error encountered during the enqueue process.
func (s *emailTaskService) Enqueue(ctx context.Context, email string) (*tasks.EmailTask, error) {
	task := &tasks.EmailTask{
		ID:         uuid.NewString(),
		Email:      email,
		EnqueuedAt: time.Now().UTC(),
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := s.queue.Enqueue(ctx, task); err != nil {
		return nil, err
	}

	// A queued placeholder lets clients poll the result before the worker
	// picks the task up. The task is already on the queue at this point, so
	// a failed save is not worth failing the request over.
	queued := &tasks.TaskResult{
		TaskID: task.ID,
		Email:  task.Email,
		Status: tasks.StatusQueued,
	}
	if err := s.resultStore.Save(ctx, queued); err != nil {
		s.logger.Warn("Failed to store queued placeholder for task ", task.ID, ": ", err)
	}

	return task, nil
}

// Result retrieves the stored outcome of a task by its ID.
func (s *emailTaskService) Result(ctx context.Context, taskID string) (*tasks.TaskResult, error) {
	return s.resultStore.Get(ctx, taskID)
}

// Process delivers the email of a dequeued task and stores the outcome.
// Delivery failures are captured in the stored result, not returned.
func (s *emailTaskService) Process(ctx context.Context, task *tasks.EmailTask) (*tasks.TaskResult, error) {
	result := &tasks.TaskResult{
		TaskID: task.ID,
		Email:  task.Email,
	}

	if err := s.mailer.Send(ctx, task.Email); err != nil {
		result.Status = tasks.StatusFailed
		result.Detail = err.Error()
	} else {
		result.Status = tasks.StatusSent
		result.Detail = "Email sent."
	}
	result.CompletedAt = time.Now().UTC()

	if err := s.resultStore.Save(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to store task result: %w", err)
	}

	s.logger.Info("Processed email task ", task.ID, " with status ", result.Status)
	return result, nil
}
