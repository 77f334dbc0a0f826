package tasks

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Task result statuses.
const (
	StatusQueued = "queued"
	StatusSent   = "sent"
	StatusFailed = "failed"
)

// EmailTask is a queued request to send an email. The struct is serialized
// as JSON on the queue, so the worker and the API must agree on its shape.
type EmailTask struct {
	ID         string    `json:"id" validate:"required,uuid4"`
	Email      string    `json:"email" validate:"required,email"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// Validate for validating EmailTask struct
func (t *EmailTask) Validate() error {
	validate := validator.New()

	err := validate.Struct(t)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// TaskResult is the stored outcome of a processed email task.
type TaskResult struct {
	TaskID      string    `json:"task_id"`
	Email       string    `json:"email"`
	Status      string    `json:"status"`
	Detail      string    `json:"detail,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
}
