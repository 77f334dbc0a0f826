package commands

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/app"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/users"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/infrastructure/persistence"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/infrastructure/security"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// UserCommandHandler encapsulates logic for managing user accounts via CLI.
type UserCommandHandler struct {
	logger logger.Logger
}

// NewUserCommandHandler initializes and returns a UserCommandHandler instance
// with a configured logger.
func NewUserCommandHandler() (*UserCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &UserCommandHandler{
		logger: loggerInstance,
	}, nil
}

// openUserService connects to the configured database and assembles the user
// service on top of it. The caller owns the returned connection.
func (commandHandler *UserCommandHandler) openUserService() (users.UserService, *gorm.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	userRepo, err := persistence.NewGormUserRepository(db, commandHandler.logger)
	if err != nil {
		_ = persistence.CloseDB(db)
		return nil, nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	userService, err := app.NewUserService(userRepo, security.NewBcryptHasher(), commandHandler.logger)
	if err != nil {
		_ = persistence.CloseDB(db)
		return nil, nil, fmt.Errorf("failed to create user service: %w", err)
	}

	return userService, db, nil
}

// CreateUserCmd registers a new user account in the configured database
func (commandHandler *UserCommandHandler) CreateUserCmd(cmd *cobra.Command, _ []string) {
	username, err := cmd.Flags().GetString("username")
	if err != nil {
		commandHandler.logger.Error("invalid username flag ", err)
		return
	}
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		commandHandler.logger.Error("invalid email flag ", err)
		return
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		commandHandler.logger.Error("invalid password flag ", err)
		return
	}
	fullName, err := cmd.Flags().GetString("full-name")
	if err != nil {
		commandHandler.logger.Error("invalid full-name flag ", err)
		return
	}

	newUser := &users.NewUser{
		Username: username,
		Email:    email,
		Password: password,
	}
	if fullName != "" {
		newUser.FullName = &fullName
	}

	userService, db, err := commandHandler.openUserService()
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() { _ = persistence.CloseDB(db) }()

	user, err := userService.Create(context.Background(), newUser)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Created user ", user.ID, " (", user.Username, ")")
}

// ListUsersCmd prints every registered user account
func (commandHandler *UserCommandHandler) ListUsersCmd(_ *cobra.Command, _ []string) {
	userService, db, err := commandHandler.openUserService()
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() { _ = persistence.CloseDB(db) }()

	list, err := userService.List(context.Background())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Found ", len(list), " user(s)")
	for _, user := range list {
		state := "active"
		if user.Disabled {
			state = "disabled"
		}
		commandHandler.logger.Info("User ", user.ID, ": ", user.Username, " <", user.Email, "> ", state)
	}
}

// DeleteUserCmd removes a user account by its ID
func (commandHandler *UserCommandHandler) DeleteUserCmd(cmd *cobra.Command, _ []string) {
	userID, err := cmd.Flags().GetInt64("user-id")
	if err != nil {
		commandHandler.logger.Error("invalid user-id flag ", err)
		return
	}

	userService, db, err := commandHandler.openUserService()
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() { _ = persistence.CloseDB(db) }()

	user, err := userService.Delete(context.Background(), userID)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Deleted user ", user.ID, " (", user.Username, ")")
}

// InitUserCommands registers user management commands
func InitUserCommands(rootCmd *cobra.Command) error {
	handler, err := NewUserCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create user command handler %w", err)
	}

	var createUserCmd = &cobra.Command{
		Use:   "create-user",
		Short: "Create a user account",
		Run:   handler.CreateUserCmd,
	}
	createUserCmd.Flags().StringP("username", "", "", "Username of the new account")
	createUserCmd.Flags().StringP("email", "", "", "Email address of the new account")
	createUserCmd.Flags().StringP("password", "", "", "Password of the new account")
	createUserCmd.Flags().StringP("full-name", "", "", "Optional display name")
	rootCmd.AddCommand(createUserCmd)

	var listUsersCmd = &cobra.Command{
		Use:   "list-users",
		Short: "List all user accounts",
		Run:   handler.ListUsersCmd,
	}
	rootCmd.AddCommand(listUsersCmd)

	var deleteUserCmd = &cobra.Command{
		Use:   "delete-user",
		Short: "Delete a user account by ID",
		Run:   handler.DeleteUserCmd,
	}
	deleteUserCmd.Flags().Int64P("user-id", "", 0, "ID of the account to delete")
	rootCmd.AddCommand(deleteUserCmd)

	return nil
}
