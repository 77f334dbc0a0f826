package commands

import (
	"fmt"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/infrastructure/persistence"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// MigrationCommandHandler encapsulates logic for managing the database schema via CLI.
type MigrationCommandHandler struct {
	logger logger.Logger
}

// NewMigrationCommandHandler initializes and returns a MigrationCommandHandler
// instance with a configured logger.
func NewMigrationCommandHandler() (*MigrationCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &MigrationCommandHandler{
		logger: loggerInstance,
	}, nil
}

// MigrateCmd applies the schema for all persisted models to the configured database
func (commandHandler *MigrationCommandHandler) MigrateCmd(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			commandHandler.logger.Error(err)
		}
	}()

	if err := persistence.MigrateDB(db); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Database migrations completed successfully")
}

// InitMigrationCommands registers schema management commands
func InitMigrationCommands(rootCmd *cobra.Command) error {
	handler, err := NewMigrationCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create migration command handler %w", err)
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Run:   handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	return nil
}
