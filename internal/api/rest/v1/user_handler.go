package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/users"
)

// UserHandler defines the interface for handling user-related operations
type UserHandler interface {
	GetByID(ctx *gin.Context)
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	CreateBulk(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

// userHandler struct holds the services
type userHandler struct {
	userService users.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService users.UserService) UserHandler {
	return &userHandler{
		userService: userService,
	}
}

// GetByID handles the GET request to fetch a user by ID
// @Summary Retrieve a user by ID
// @Tags User
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} UserResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{user_id} [get]
func (handler *userHandler) GetByID(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	user, err := handler.userService.GetByID(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			respondNotFound(ctx, userNotFoundDetail(userID))
			return
		}
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewUserResponse(user))
}

// List handles the GET request to fetch users, optionally filtered by IDs
// @Summary List users
// @Description List all users, or only those whose IDs are given as repeated ids query parameters.
// @Tags User
// @Produce json
// @Param ids query []int false "User IDs" collectionFormat(multi)
// @Success 200 {object} UsersListResponse
// @Failure 422 {object} ErrorResponse
// @Router /users/ [get]
func (handler *userHandler) List(ctx *gin.Context) {
	rawIDs := ctx.QueryArray("ids")

	var (
		list []*users.User
		err  error
	)
	if len(rawIDs) == 0 {
		list, err = handler.userService.List(ctx.Request.Context())
	} else {
		ids := make([]int64, 0, len(rawIDs))
		for _, raw := range rawIDs {
			id, parseErr := strconv.ParseInt(raw, 10, 64)
			if parseErr != nil {
				respondValidationError(ctx, fmt.Errorf("ids must be integers, got %q", raw))
				return
			}
			ids = append(ids, id)
		}
		list, err = handler.userService.ListByIDs(ctx.Request.Context(), ids)
	}
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, UsersListResponse{Users: NewUserResponses(list)})
}

// Create handles the POST request to create a user
// @Summary Create a user
// @Tags User
// @Accept json
// @Produce json
// @Param requestBody body CreateUserRequest true "User Data"
// @Success 201 {object} UserResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /users/ [post]
func (handler *userHandler) Create(ctx *gin.Context) {
	var request CreateUserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondValidationError(ctx, err)
		return
	}

	newUser := request.ToDomain()
	if err := newUser.Validate(); err != nil {
		respondValidationError(ctx, err)
		return
	}

	user, err := handler.userService.Create(ctx.Request.Context(), newUser)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewUserResponse(user))
}

// CreateBulk handles the POST request to create several users at once
// @Summary Create users in bulk
// @Description Create several users in one transaction from a JSON array of user payloads.
// @Tags User
// @Accept json
// @Produce json
// @Param requestBody body []CreateUserRequest true "User Payloads"
// @Success 201 {object} UsersListResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /users/bulk [post]
func (handler *userHandler) CreateBulk(ctx *gin.Context) {
	var requests []*CreateUserRequest
	if err := ctx.ShouldBindJSON(&requests); err != nil {
		respondValidationError(ctx, err)
		return
	}

	batch := make([]*users.NewUser, 0, len(requests))
	for _, request := range requests {
		newUser := request.ToDomain()
		if err := newUser.Validate(); err != nil {
			respondValidationError(ctx, err)
			return
		}
		batch = append(batch, newUser)
	}

	created, err := handler.userService.CreateBatch(ctx.Request.Context(), batch)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, UsersListResponse{Users: NewUserResponses(created)})
}

// Update handles the PATCH request to partially update a user
// @Summary Update a user
// @Description Apply a partial update. A new password is re-hashed before storage.
// @Tags User
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param requestBody body UpdateUserRequest true "Fields to update"
// @Success 200 {object} UserResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /users/{user_id} [patch]
func (handler *userHandler) Update(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	var request UpdateUserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondValidationError(ctx, err)
		return
	}

	update := request.ToDomain()
	if err := update.Validate(); err != nil {
		respondValidationError(ctx, err)
		return
	}

	user, err := handler.userService.Update(ctx.Request.Context(), userID, update)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			respondNotFound(ctx, userNotFoundDetail(userID))
			return
		}
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewUserResponse(user))
}

// Delete handles the DELETE request to remove a user
// @Summary Delete a user
// @Description Remove a user and echo the removed account with a deletion marker.
// @Tags User
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} UserDeleteResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{user_id} [delete]
func (handler *userHandler) Delete(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	user, err := handler.userService.Delete(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			respondNotFound(ctx, userNotFoundDetail(userID))
			return
		}
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewUserDeleteResponse(user))
}

func parseUserID(ctx *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(ctx.Param("user_id"), 10, 64)
	if err != nil {
		respondValidationError(ctx, fmt.Errorf("user_id must be an integer"))
		return 0, false
	}
	return userID, true
}

func userNotFoundDetail(userID int64) string {
	return fmt.Sprintf("user with ID %d not found", userID)
}
