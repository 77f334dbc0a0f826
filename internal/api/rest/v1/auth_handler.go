package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/auth"
)

// AuthHandler defines the interface for handling authentication operations
type AuthHandler interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	LoginJSON(ctx *gin.Context)
	Refresh(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

// authHandler struct holds the services
type authHandler struct {
	authService auth.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &authHandler{
		authService: authService,
	}
}

// Register handles the POST request to register a user account
// @Summary Register a user account
// @Description Create a user account from a registration payload. The password is stored as a bcrypt hash.
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body CreateUserRequest true "Registration Data"
// @Success 201 {object} UserResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /auth/register [post]
func (handler *authHandler) Register(ctx *gin.Context) {
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

	user, err := handler.authService.Register(ctx.Request.Context(), newUser)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewUserResponse(user))
}

// Login handles the POST request to log in via form data
// @Summary Log in with form data
// @Description Authenticate with OAuth2 form fields. The username field accepts a username or an email address.
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username or email"
// @Param password formData string true "Password"
// @Success 200 {object} TokenPairResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/login [post]
func (handler *authHandler) Login(ctx *gin.Context) {
	credentials := &auth.Credentials{
		Login:    ctx.PostForm("username"),
		Password: ctx.PostForm("password"),
	}

	_, pair, err := handler.authService.Login(ctx.Request.Context(), credentials)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewTokenPairResponse(pair))
}

// LoginJSON handles the POST request to log in via JSON
// @Summary Log in with JSON credentials
// @Description Authenticate with a login (username or email) and password, returning the user and a token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/login_json [post]
func (handler *authHandler) LoginJSON(ctx *gin.Context) {
	var request LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondValidationError(ctx, err)
		return
	}

	user, pair, err := handler.authService.Login(ctx.Request.Context(), request.ToDomain())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewAuthResponse(user, pair))
}

// Refresh handles the POST request to exchange a refresh token
// @Summary Refresh the token pair
// @Description Exchange a valid refresh token for a fresh access and refresh token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body RefreshRequest true "Refresh Token"
// @Success 200 {object} TokenPairResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /auth/refresh [post]
func (handler *authHandler) Refresh(ctx *gin.Context) {
	request, ok := bindRefreshRequest(ctx)
	if !ok {
		return
	}

	pair, err := handler.authService.Refresh(ctx.Request.Context(), request.RefreshToken)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewTokenPairResponse(pair))
}

// Logout handles the POST request to revoke a refresh token
// @Summary Revoke a refresh token
// @Description Revoke a refresh token so it can no longer be exchanged.
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body RefreshRequest true "Refresh Token"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /auth/logout [post]
func (handler *authHandler) Logout(ctx *gin.Context) {
	request, ok := bindRefreshRequest(ctx)
	if !ok {
		return
	}

	if err := handler.authService.Logout(ctx.Request.Context(), request.RefreshToken); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: "refresh token revoked"})
}

func bindRefreshRequest(ctx *gin.Context) (*RefreshRequest, bool) {
	var request RefreshRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondValidationError(ctx, err)
		return nil, false
	}

	if request.RefreshToken == "" {
		respondValidationError(ctx, errMissingRefreshToken)
		return nil, false
	}

	return &request, true
}
