package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/auth"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/external"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/projects"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/tasks"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/users"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/config"
)

// SetupRoutes sets up all the API routes for version 1. The auth, external
// posts and email task endpoints stay public; user and project routes
// require a bearer access token.
func SetupRoutes(r *gin.Engine,
	userService users.UserService,
	projectService projects.ProjectService,
	authService auth.AuthService,
	emailTaskService tasks.EmailTaskService,
	postsService external.PostsService,
	authSettings *config.AuthSettings) {

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	})

	v1 := r.Group(BasePath) // lookup in version file

	// Auth Routes
	authHandler := NewAuthHandler(authService)
	loginLimiter := LoginRateLimitMiddleware(authSettings.LoginRatePerMin, authSettings.LoginBurst)
	authGroup := v1.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", loginLimiter, authHandler.Login)
	authGroup.POST("/login_json", loginLimiter, authHandler.LoginJSON)
	authGroup.POST("/refresh", authHandler.Refresh)
	authGroup.POST("/logout", authHandler.Logout)

	// Email Task Routes
	taskHandler := NewTaskHandler(emailTaskService)
	v1.POST("/send-email", taskHandler.SendEmail)
	v1.GET("/tasks/:task_id", taskHandler.GetResult)

	// External Routes
	externalHandler := NewExternalHandler(postsService)
	v1.GET("/external/posts", externalHandler.ListPosts)

	protected := v1.Group("", JWTAuthMiddleware(authService))

	// Users Routes
	userHandler := NewUserHandler(userService)
	protected.GET("/users/", userHandler.List)
	protected.GET("/users/:user_id", userHandler.GetByID)
	protected.POST("/users/", userHandler.Create)
	protected.POST("/users/bulk", userHandler.CreateBulk)
	protected.PATCH("/users/:user_id", userHandler.Update)
	protected.DELETE("/users/:user_id", userHandler.Delete)

	// Projects Routes
	projectHandler := NewProjectHandler(projectService)
	protected.GET("/projects/", projectHandler.List)
	protected.GET("/projects/:project_id", projectHandler.GetByID)
	protected.POST("/projects/", projectHandler.Create)
	protected.POST("/projects/bulk", projectHandler.CreateBulk)
	protected.PATCH("/projects/:project_id", projectHandler.Update)
	protected.DELETE("/projects/:project_id", projectHandler.Delete)
}
