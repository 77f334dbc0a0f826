// cmd/user-worker/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/app"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/tasks"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/infrastructure/connector"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/infrastructure/mailer"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/infrastructure/taskqueue"
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
		configPath = "../../configs/worker.yaml"
	}

	workerConfig, err := config.InitializeWorkerConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&workerConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// The context ends on SIGINT or SIGTERM, which unblocks every worker
	// waiting on the queue.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	queue, emailTaskService, err := initializeWorkerServices(ctx, workerConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	log.Info("Starting ", workerConfig.Concurrency, " email worker(s)")

	var wg sync.WaitGroup
	for workerID := 1; workerID <= workerConfig.Concurrency; workerID++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			consumeTasks(ctx, id, queue, emailTaskService, log)
		}(workerID)
	}

	wg.Wait()
	log.Info("All workers stopped")
	return nil
}

// initializeWorkerServices sets up the queue consumer side of the email pipeline
func initializeWorkerServices(ctx context.Context, cfg *config.WorkerConfig, log logger.Logger) (tasks.Queue, tasks.EmailTaskService, error) {
	brokerClient, err := connector.NewRedisClient(ctx, cfg.Redis.BrokerURL, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis broker: %w", err)
	}

	resultClient, err := connector.NewRedisClient(ctx, cfg.Redis.ResultURL, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis result backend: %w", err)
	}

	mail, err := mailer.NewMailer(&cfg.Mail, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create mailer: %w", err)
	}

	queue := taskqueue.NewRedisQueue(brokerClient, log)
	resultStore := taskqueue.NewRedisResultStore(resultClient, log)

	emailTaskService, err := app.NewEmailTaskService(queue, resultStore, mail, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create email task service: %w", err)
	}

	return queue, emailTaskService, nil
}

// consumeTasks processes queued email tasks until the context is cancelled.
// Delivery failures are already recorded in the result store by Process, so
// the loop only logs and keeps going.
func consumeTasks(ctx context.Context, id int, queue tasks.Queue, service tasks.EmailTaskService, log logger.Logger) {
	for {
		task, err := queue.Dequeue(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("Worker ", id, " shutting down")
				return
			}
			log.Error("Worker ", id, " failed to dequeue: ", err)
			time.Sleep(time.Second)
			continue
		}

		log.Info("Worker ", id, " processing task ", task.ID)
		if _, err := service.Process(ctx, task); err != nil {
			log.Error("Worker ", id, " failed to process task ", task.ID, ": ", err)
		}
	}
}
