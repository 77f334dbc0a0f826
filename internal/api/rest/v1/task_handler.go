package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/tasks"
)

// TaskHandler defines the interface for handling email task operations
type TaskHandler interface {
	SendEmail(ctx *gin.Context)
	GetResult(ctx *gin.Context)
}

// taskHandler struct holds the services
type taskHandler struct {
	emailTaskService tasks.EmailTaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(emailTaskService tasks.EmailTaskService) TaskHandler {
	return &taskHandler{
		emailTaskService: emailTaskService,
	}
}

// SendEmail handles the POST request to queue an email notification
// @Summary Queue an email notification
// @Description Push an email task onto the queue and return its ID for result polling.
// @Tags Task
// @Accept json
// @Produce json
// @Param requestBody body SendEmailRequest true "Recipient"
// @Success 200 {object} EmailTaskResponse
// @Failure 422 {object} ErrorResponse
// @Router /send-email [post]
func (handler *taskHandler) SendEmail(ctx *gin.Context) {
	var request SendEmailRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondValidationError(ctx, err)
		return
	}

	if err := request.Validate(); err != nil {
		respondValidationError(ctx, err)
		return
	}

	task, err := handler.emailTaskService.Enqueue(ctx.Request.Context(), request.Email)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, EmailTaskResponse{
		TaskID:  task.ID,
		Message: "email task queued",
	})
}

// GetResult handles the GET request to fetch the outcome of an email task
// @Summary Retrieve an email task result
// @Description Fetch the stored outcome of a queued email task by its ID.
// @Tags Task
// @Produce json
// @Param task_id path string true "Task ID"
// @Success 200 {object} TaskResultResponse
// @Failure 404 {object} ErrorResponse
// @Router /tasks/{task_id} [get]
func (handler *taskHandler) GetResult(ctx *gin.Context) {
	taskID := ctx.Param("task_id")

	result, err := handler.emailTaskService.Result(ctx.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, tasks.ErrNotFound) {
			respondNotFound(ctx, fmt.Sprintf("task %s not found", taskID))
			return
		}
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewTaskResultResponse(result))
}
