package commands

import (
	"context"
	"fmt"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/app"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/tasks"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/infrastructure/connector"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/infrastructure/mailer"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/infrastructure/taskqueue"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// EmailCommandHandler encapsulates logic for exercising the email task queue via CLI.
type EmailCommandHandler struct {
	logger logger.Logger
}

// NewEmailCommandHandler initializes and returns an EmailCommandHandler
// instance with a configured logger.
func NewEmailCommandHandler() (*EmailCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &EmailCommandHandler{
		logger: loggerInstance,
	}, nil
}

// openEmailTaskService connects to redis and assembles the email task service.
func (commandHandler *EmailCommandHandler) openEmailTaskService(ctx context.Context) (tasks.EmailTaskService, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	brokerClient, err := connector.NewRedisClient(ctx, cfg.Redis.BrokerURL, commandHandler.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis broker: %w", err)
	}

	resultClient, err := connector.NewRedisClient(ctx, cfg.Redis.ResultURL, commandHandler.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis result backend: %w", err)
	}

	mail, err := mailer.NewMailer(&cfg.Mail, commandHandler.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create mailer: %w", err)
	}

	emailTaskService, err := app.NewEmailTaskService(
		taskqueue.NewRedisQueue(brokerClient, commandHandler.logger),
		taskqueue.NewRedisResultStore(resultClient, commandHandler.logger),
		mail, commandHandler.logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create email task service: %w", err)
	}

	return emailTaskService, nil
}

// SendEmailCmd queues an email task for the worker to deliver
func (commandHandler *EmailCommandHandler) SendEmailCmd(cmd *cobra.Command, _ []string) {
	recipient, err := cmd.Flags().GetString("to")
	if err != nil {
		commandHandler.logger.Error("invalid to flag ", err)
		return
	}

	ctx := context.Background()
	emailTaskService, err := commandHandler.openEmailTaskService(ctx)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	task, err := emailTaskService.Enqueue(ctx, recipient)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Queued email task ", task.ID, " for ", task.Email)
}

// TaskResultCmd fetches the stored outcome of an email task
func (commandHandler *EmailCommandHandler) TaskResultCmd(cmd *cobra.Command, _ []string) {
	taskID, err := cmd.Flags().GetString("task-id")
	if err != nil {
		commandHandler.logger.Error("invalid task-id flag ", err)
		return
	}

	ctx := context.Background()
	emailTaskService, err := commandHandler.openEmailTaskService(ctx)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	result, err := emailTaskService.Result(ctx, taskID)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if result.Detail != "" {
		commandHandler.logger.Info("Task ", result.TaskID, ": ", result.Status, " (", result.Detail, ")")
		return
	}
	commandHandler.logger.Info("Task ", result.TaskID, ": ", result.Status)
}

// InitEmailCommands registers email queue commands
func InitEmailCommands(rootCmd *cobra.Command) error {
	handler, err := NewEmailCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create email command handler %w", err)
	}

	var sendEmailCmd = &cobra.Command{
		Use:   "send-email",
		Short: "Queue an email for delivery",
		Run:   handler.SendEmailCmd,
	}
	sendEmailCmd.Flags().StringP("to", "", "", "Recipient email address")
	rootCmd.AddCommand(sendEmailCmd)

	var taskResultCmd = &cobra.Command{
		Use:   "task-result",
		Short: "Show the outcome of a queued email task",
		Run:   handler.TaskResultCmd,
	}
	taskResultCmd.Flags().StringP("task-id", "", "", "ID returned when the task was queued")
	rootCmd.AddCommand(taskResultCmd)

	return nil
}
