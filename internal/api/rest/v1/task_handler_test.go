//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/tasks"
)

func TestTaskHandler_SendEmail_Success(t *testing.T) {
	mockEmailTaskService := new(MockEmailTaskService)
	handler := NewTaskHandler(mockEmailTaskService)

	task := &tasks.EmailTask{
		ID:         "3d0f7f4c6aab4f0f9a2a9e4f1b8b6c5d",
		Email:      "user@example.com",
		EnqueuedAt: time.Now().UTC(),
	}
	mockEmailTaskService.
		On("Enqueue", mock.Anything, "user@example.com").
		Return(task, nil)

	w, c := jsonRequest("POST", "/send-email", `{"email": "user@example.com"}`)

	handler.SendEmail(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), task.ID)
	assert.Contains(t, w.Body.String(), "email task queued")
	mockEmailTaskService.AssertExpectations(t)
}

func TestTaskHandler_SendEmail_InvalidEmail(t *testing.T) {
	mockEmailTaskService := new(MockEmailTaskService)
	handler := NewTaskHandler(mockEmailTaskService)

	w, c := jsonRequest("POST", "/send-email", `{"email": "not-an-email"}`)

	handler.SendEmail(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request data")
	mockEmailTaskService.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
}

func TestTaskHandler_GetResult_Queued(t *testing.T) {
	mockEmailTaskService := new(MockEmailTaskService)
	handler := NewTaskHandler(mockEmailTaskService)

	result := &tasks.TaskResult{
		TaskID: "task-1",
		Email:  "user@example.com",
		Status: tasks.StatusQueued,
	}
	mockEmailTaskService.
		On("Result", mock.Anything, "task-1").
		Return(result, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/tasks/task-1", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "task_id", Value: "task-1"}}

	handler.GetResult(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"queued"`)

	// A queued task has no completion time yet
	assert.NotContains(t, w.Body.String(), "completed_at")
}

func TestTaskHandler_GetResult_Sent(t *testing.T) {
	mockEmailTaskService := new(MockEmailTaskService)
	handler := NewTaskHandler(mockEmailTaskService)

	result := &tasks.TaskResult{
		TaskID:      "task-1",
		Email:       "user@example.com",
		Status:      tasks.StatusSent,
		Detail:      "Email sent.",
		CompletedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	mockEmailTaskService.
		On("Result", mock.Anything, "task-1").
		Return(result, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/tasks/task-1", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "task_id", Value: "task-1"}}

	handler.GetResult(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"sent"`)
	assert.Contains(t, w.Body.String(), "completed_at")
}

func TestTaskHandler_GetResult_NotFound(t *testing.T) {
	mockEmailTaskService := new(MockEmailTaskService)
	handler := NewTaskHandler(mockEmailTaskService)

	mockEmailTaskService.
		On("Result", mock.Anything, "missing").
		Return(nil, tasks.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/tasks/missing", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "task_id", Value: "missing"}}

	handler.GetResult(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "task missing not found")
}
