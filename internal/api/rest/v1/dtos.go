package v1

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/auth"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/external"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/projects"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/tasks"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/users"
)

// ErrorResponse is the error body shared by every endpoint. Errors carries
// the individual validation messages when there are any.
type ErrorResponse struct {
	Detail string   `json:"detail"`
	Errors []string `json:"errors,omitempty"`
}

// MessageResponse carries a single informational message.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the liveness probe body.
type HealthResponse struct {
	Status string `json:"status"`
}

// CreateUserRequest is the payload for registering or creating a user.
type CreateUserRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
	Password string  `json:"password"`
}

// ToDomain maps the request to the domain payload.
func (r *CreateUserRequest) ToDomain() *users.NewUser {
	return &users.NewUser{
		Username: r.Username,
		Email:    r.Email,
		FullName: r.FullName,
		Password: r.Password,
	}
}

// UpdateUserRequest is the payload for a partial user update.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	Password *string `json:"password"`
}

// ToDomain maps the request to the domain payload.
func (r *UpdateUserRequest) ToDomain() *users.UserUpdate {
	return &users.UserUpdate{
		Username: r.Username,
		Email:    r.Email,
		FullName: r.FullName,
		Password: r.Password,
	}
}

// UserResponse mirrors the public shape of a user account. The password
// hash never leaves the service.
type UserResponse struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
	Disabled bool    `json:"disabled"`
}

// NewUserResponse maps a domain user to its response shape.
func NewUserResponse(user *users.User) *UserResponse {
	return &UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		Disabled: user.Disabled,
	}
}

// NewUserResponses maps a slice of domain users, yielding an empty slice
// rather than null for no results.
func NewUserResponses(list []*users.User) []*UserResponse {
	responses := make([]*UserResponse, 0, len(list))
	for _, user := range list {
		responses = append(responses, NewUserResponse(user))
	}
	return responses
}

// UsersListResponse wraps a list of users.
type UsersListResponse struct {
	Users []*UserResponse `json:"users"`
}

// UserDeleteResponse echoes the removed user with a deletion marker.
type UserDeleteResponse struct {
	UserResponse
	Deleted bool `json:"deleted"`
}

// NewUserDeleteResponse maps a removed domain user to its response shape.
func NewUserDeleteResponse(user *users.User) *UserDeleteResponse {
	return &UserDeleteResponse{
		UserResponse: *NewUserResponse(user),
		Deleted:      true,
	}
}

// LoginRequest is the JSON login payload. Login accepts a username or an
// email address.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// ToDomain maps the request to domain credentials.
func (r *LoginRequest) ToDomain() *auth.Credentials {
	return &auth.Credentials{
		Login:    r.Login,
		Password: r.Password,
	}
}

// RefreshRequest carries the refresh token for the refresh and logout
// endpoints.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenPairResponse mirrors the OAuth2 token response shape.
type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// NewTokenPairResponse maps a domain token pair to its response shape.
func NewTokenPairResponse(pair *auth.TokenPair) *TokenPairResponse {
	return &TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
	}
}

// AuthResponse bundles the authenticated user with the issued tokens.
type AuthResponse struct {
	User     *UserResponse      `json:"user"`
	Tokens   *TokenPairResponse `json:"tokens"`
	IssuedAt time.Time          `json:"issued_at"`
}

// NewAuthResponse maps a login outcome to its response shape.
func NewAuthResponse(user *users.User, pair *auth.TokenPair) *AuthResponse {
	return &AuthResponse{
		User:     NewUserResponse(user),
		Tokens:   NewTokenPairResponse(pair),
		IssuedAt: time.Now().UTC(),
	}
}

// CreateProjectRequest is the payload for opening a project.
type CreateProjectRequest struct {
	Name           string                 `json:"name"`
	Status         projects.ProjectStatus `json:"status"`
	Description    *string                `json:"description"`
	PersonInCharge *int64                 `json:"person_in_charge"`
}

// ToDomain maps the request to the domain payload.
func (r *CreateProjectRequest) ToDomain() *projects.NewProject {
	return &projects.NewProject{
		Name:           r.Name,
		Status:         r.Status,
		Description:    r.Description,
		PersonInCharge: r.PersonInCharge,
	}
}

// UpdateProjectRequest is the payload for a partial project update. The
// name and creation time are immutable.
type UpdateProjectRequest struct {
	Status         *projects.ProjectStatus `json:"status"`
	StartTime      *time.Time              `json:"start_time"`
	CompleteTime   *time.Time              `json:"complete_time"`
	Description    *string                 `json:"description"`
	PersonInCharge *int64                  `json:"person_in_charge"`
}

// ToDomain maps the request to the domain payload.
func (r *UpdateProjectRequest) ToDomain() *projects.ProjectUpdate {
	return &projects.ProjectUpdate{
		Status:         r.Status,
		StartTime:      r.StartTime,
		CompleteTime:   r.CompleteTime,
		Description:    r.Description,
		PersonInCharge: r.PersonInCharge,
	}
}

// ProjectResponse mirrors the public shape of a project.
type ProjectResponse struct {
	ID             int64                  `json:"id"`
	Name           string                 `json:"name"`
	Status         projects.ProjectStatus `json:"status"`
	CreateTime     time.Time              `json:"create_time"`
	StartTime      *time.Time             `json:"start_time"`
	CompleteTime   *time.Time             `json:"complete_time"`
	Description    *string                `json:"description"`
	PersonInCharge *int64                 `json:"person_in_charge"`
}

// NewProjectResponse maps a domain project to its response shape.
func NewProjectResponse(project *projects.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:             project.ID,
		Name:           project.Name,
		Status:         project.Status,
		CreateTime:     project.CreateTime,
		StartTime:      project.StartTime,
		CompleteTime:   project.CompleteTime,
		Description:    project.Description,
		PersonInCharge: project.PersonInCharge,
	}
}

// NewProjectResponses maps a slice of domain projects, yielding an empty
// slice rather than null for no results.
func NewProjectResponses(list []*projects.Project) []*ProjectResponse {
	responses := make([]*ProjectResponse, 0, len(list))
	for _, project := range list {
		responses = append(responses, NewProjectResponse(project))
	}
	return responses
}

// ProjectPageResponse is one page of the project listing.
type ProjectPageResponse struct {
	Items      []*ProjectResponse `json:"items"`
	Page       int                `json:"page"`
	PerPage    int                `json:"per_page"`
	TotalCount int64              `json:"total_count"`
	HasPrev    bool               `json:"has_prev"`
	HasNext    bool               `json:"has_next"`
}

// NewProjectPageResponse maps a domain listing page to its response shape.
func NewProjectPageResponse(page *projects.ProjectPage) *ProjectPageResponse {
	return &ProjectPageResponse{
		Items:      NewProjectResponses(page.Items),
		Page:       page.Page,
		PerPage:    page.PerPage,
		TotalCount: page.TotalCount,
		HasPrev:    page.HasPrev,
		HasNext:    page.HasNext,
	}
}

// ProjectDeleteResponse echoes the removed project with a deletion marker.
type ProjectDeleteResponse struct {
	ProjectResponse
	Deleted bool `json:"deleted"`
}

// NewProjectDeleteResponse maps a removed domain project to its response shape.
func NewProjectDeleteResponse(project *projects.Project) *ProjectDeleteResponse {
	return &ProjectDeleteResponse{
		ProjectResponse: *NewProjectResponse(project),
		Deleted:         true,
	}
}

// SendEmailRequest is the payload for queueing an email notification.
type SendEmailRequest struct {
	Email string `json:"email"`
}

// Validate checks that the recipient is a well-formed email address.
func (r *SendEmailRequest) Validate() error {
	validate := validator.New()

	if err := validate.Var(r.Email, "required,email"); err != nil {
		return errors.New("validation failed: email must be a valid e-mail address")
	}

	return nil
}

// EmailTaskResponse acknowledges a queued email task.
type EmailTaskResponse struct {
	TaskID  string `json:"task_id"`
	Message string `json:"message"`
}

// TaskResultResponse is the stored outcome of an email task. CompletedAt is
// omitted while the task is still queued.
type TaskResultResponse struct {
	TaskID      string     `json:"task_id"`
	Email       string     `json:"email"`
	Status      string     `json:"status"`
	Detail      string     `json:"detail,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// NewTaskResultResponse maps a stored task result to its response shape.
func NewTaskResultResponse(result *tasks.TaskResult) *TaskResultResponse {
	response := &TaskResultResponse{
		TaskID: result.TaskID,
		Email:  result.Email,
		Status: result.Status,
		Detail: result.Detail,
	}
	if !result.CompletedAt.IsZero() {
		completedAt := result.CompletedAt
		response.CompletedAt = &completedAt
	}
	return response
}

// PostResponse is a single post proxied from the external API. Field names
// follow the upstream JSON shape.
type PostResponse struct {
	UserID int64  `json:"userId"`
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// NewPostResponses maps upstream posts, yielding an empty slice rather
// than null for no results.
func NewPostResponses(list []*external.Post) []*PostResponse {
	responses := make([]*PostResponse, 0, len(list))
	for _, post := range list {
		responses = append(responses, &PostResponse{
			UserID: post.UserID,
			ID:     post.ID,
			Title:  post.Title,
			Body:   post.Body,
		})
	}
	return responses
}
