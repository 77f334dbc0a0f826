// Package main is the entry point for the user-cli application.
// It initializes the root command and registers the migration, user and
// email sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/SlavaKlkv/fastapi-2-alchemy/cmd/user-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "user-cli",
		Short: "User API operations CLI tool",
		Long: `user-cli is a command-line tool for operating the user API deployment.
Supports applying database migrations, managing user accounts directly and
exercising the email task queue.

The configuration file is resolved from the CONFIG_PATH environment variable
and defaults to configs/rest-app.yaml. Connections to the database and the
queue are only opened when a command that needs them runs.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register migration commands
	if err := commands.InitMigrationCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize migration commands: %w", err)
	}

	// Register user commands
	if err := commands.InitUserCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize user commands: %w", err)
	}

	// Register email commands
	if err := commands.InitEmailCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize email commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
