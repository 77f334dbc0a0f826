package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// WorkerConfig aggregates every setting the queue worker binary needs
type WorkerConfig struct {
	Logger      LoggerSettings `mapstructure:"logger"`
	Redis       RedisSettings  `mapstructure:"redis"`
	Mail        MailSettings   `mapstructure:"mail"`
	Concurrency int            `mapstructure:"concurrency" validate:"required,min=1,max=64"`
}

// Validate checks the top-level fields and every settings section
func (c *WorkerConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for WorkerConfig: %w", err)
	}

	sections := []interface{ Validate() error }{&c.Logger, &c.Redis, &c.Mail}
	for _, section := range sections {
		if err := section.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// InitializeWorkerConfig loads the worker configuration from a YAML file,
// applies environment overrides and validates the result.
func InitializeWorkerConfig(configPath string) (*WorkerConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(configPath)
	setSharedDefaults(v)
	v.SetDefault("concurrency", 2)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := bindEnvOverrides(v, workerEnvBindings()); err != nil {
		return nil, err
	}

	var cfg WorkerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func workerEnvBindings() map[string]string {
	return map[string]string{
		"redis.broker_url": "CELERY_BROKER_URL",
		"redis.result_url": "CELERY_RESULT_BACKEND",
		"mail.provider":    "MAIL_PROVIDER",
		"mail.api_key":     "SENDGRID_API_KEY",
		"mail.sender":      "MAIL_SENDER",
		"concurrency":      "WORKER_CONCURRENCY",
	}
}
