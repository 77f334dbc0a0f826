// cmd/user-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	v1 "github.com/SlavaKlkv/fastapi-2-alchemy/internal/api/rest/v1"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/app"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/auth"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/external"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/projects"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/tasks"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/users"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/infrastructure/connector"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/infrastructure/mailer"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/infrastructure/persistence"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/infrastructure/security"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/infrastructure/taskqueue"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/infrastructure/tokenstore"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/config"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Error("Failed to close database connection: ", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services *appServices
	db       *gorm.DB
}

type appServices struct {
	users      users.UserService
	projects   projects.ProjectService
	auth       auth.AuthService
	emailTasks tasks.EmailTaskService
	posts      external.PostsService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.MigrateDB(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	projectRepo, err := persistence.NewGormProjectRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create project repository: %w", err)
	}

	// Initialize services
	services, err := initializeApplicationServices(cfg, db, userRepo, projectRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		services: services,
		db:       db,
	}, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	cfg *config.RestConfig,
	db *gorm.DB,
	userRepo users.UserRepository,
	projectRepo projects.ProjectRepository,
	log logger.Logger,
) (*appServices, error) {
	ctx := context.Background()

	hasher := security.NewBcryptHasher()

	userService, err := app.NewUserService(userRepo, hasher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	projectService, err := app.NewProjectService(projectRepo, userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create project service: %w", err)
	}

	tokenManager, err := security.NewJWTTokenManager(&cfg.Auth, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create token manager: %w", err)
	}

	brokerClient, err := connector.NewRedisClient(ctx, cfg.Redis.BrokerURL, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis broker: %w", err)
	}

	resultClient, err := connector.NewRedisClient(ctx, cfg.Redis.ResultURL, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis result backend: %w", err)
	}

	revocationStore, err := tokenstore.NewRevocationStore(&cfg.Auth, brokerClient, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create revocation store: %w", err)
	}

	authService, err := app.NewAuthService(userService, userRepo, tokenManager, hasher, revocationStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	// The API only enqueues email tasks; delivery happens in the worker
	// binary. The mailer is still wired so the service stays whole.
	mail, err := mailer.NewMailer(&cfg.Mail, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create mailer: %w", err)
	}

	emailTaskService, err := app.NewEmailTaskService(
		taskqueue.NewRedisQueue(brokerClient, log),
		taskqueue.NewRedisResultStore(resultClient, log),
		mail, log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create email task service: %w", err)
	}

	postsClient, err := connector.NewHTTPPostsClient(&cfg.External, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create posts client: %w", err)
	}

	postsService, err := app.NewPostsService(postsClient, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create posts service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		users:      userService,
		projects:   projectService,
		auth:       authService,
		emailTasks: emailTaskService,
		posts:      postsService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.users,
		deps.services.projects,
		deps.services.auth,
		deps.services.emailTasks,
		deps.services.posts,
		&cfg.Auth,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
