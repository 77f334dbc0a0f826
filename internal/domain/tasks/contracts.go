package tasks

import (
	"context"
)

// EmailTaskService enqueues email tasks and exposes their results.
type EmailTaskService interface {
	// Enqueue validates the recipient and pushes a new email task onto the queue.
	// It returns the queued EmailTask and any error encountered during the enqueue process.
	Enqueue(ctx context.Context, email string) (*EmailTask, error)

	// Result retrieves the stored outcome of a task by its ID.
	Result(ctx context.Context, taskID string) (*TaskResult, error)

	// Process delivers the email of a dequeued task and stores the outcome.
	// It returns the TaskResult and any error encountered during delivery.
	Process(ctx context.Context, task *EmailTask) (*TaskResult, error)
}

// Queue transports serialized email tasks from the API to the worker.
type Queue interface {
	Enqueue(ctx context.Context, task *EmailTask) error

	// Dequeue blocks until a task is available or the context is done.
	Dequeue(ctx context.Context) (*EmailTask, error)
}

// ResultStore persists task outcomes for later retrieval.
type ResultStore interface {
	Save(ctx context.Context, result *TaskResult) error
	Get(ctx context.Context, taskID string) (*TaskResult, error)
}

// Mailer delivers a single email to a recipient.
type Mailer interface {
	Send(ctx context.Context, recipient string) error
}
