package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/auth"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/external"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/projects"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/tasks"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/users"
)

// WWW-Authenticate values for the 401 responses.
const (
	challengeBearer       = "Bearer"
	challengeInvalidToken = `Bearer error="invalid_token"`
	challengeExpiredToken = `Bearer error="invalid_token", error_description="expired"`
)

var errMissingRefreshToken = errors.New("refresh_token is required")

// respondError translates a service error into the shared error body and
// status code. Not-found errors that need the requested ID in the detail
// are handled at the call site before falling through to here.
func respondError(ctx *gin.Context, err error) {
	var dupErr *users.DuplicateError
	if errors.As(err, &dupErr) {
		ctx.JSON(http.StatusConflict, ErrorResponse{Detail: dupErr.Error()})
		return
	}

	switch {
	case errors.Is(err, users.ErrNotFound),
		errors.Is(err, projects.ErrNotFound),
		errors.Is(err, tasks.ErrNotFound):
		ctx.JSON(http.StatusNotFound, ErrorResponse{Detail: err.Error()})

	case errors.Is(err, projects.ErrNameTaken),
		errors.Is(err, projects.ErrPersonNotFound):
		ctx.JSON(http.StatusConflict, ErrorResponse{Detail: err.Error()})

	case errors.Is(err, projects.ErrDuplicate):
		ctx.JSON(http.StatusConflict, ErrorResponse{Detail: err.Error()})

	case errors.Is(err, projects.ErrForeignKey):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})

	case errors.Is(err, auth.ErrInvalidCredentials):
		ctx.Header("WWW-Authenticate", challengeBearer)
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Detail: err.Error()})

	case errors.Is(err, auth.ErrTokenExpired):
		ctx.Header("WWW-Authenticate", challengeExpiredToken)
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Detail: err.Error()})

	case errors.Is(err, auth.ErrTokenInvalid),
		errors.Is(err, auth.ErrTokenRevoked),
		errors.Is(err, auth.ErrRefreshTokenExpected),
		errors.Is(err, auth.ErrAccessTokenExpected):
		ctx.Header("WWW-Authenticate", challengeInvalidToken)
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Detail: err.Error()})

	case errors.Is(err, external.ErrUpstream):
		ctx.JSON(http.StatusBadGateway, ErrorResponse{Detail: err.Error()})

	default:
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "an unexpected error occurred"})
	}
}

// respondValidationError reports a 422 with the individual validation
// messages alongside the shared detail line.
func respondValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Detail: "invalid request data",
		Errors: []string{err.Error()},
	})
}

// respondNotFound reports a 404 with an entity-specific detail.
func respondNotFound(ctx *gin.Context, detail string) {
	ctx.JSON(http.StatusNotFound, ErrorResponse{Detail: detail})
}
