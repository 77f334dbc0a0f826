package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// RestConfig aggregates every setting the REST API binary needs
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required,numeric"`
	Database DatabaseSettings `mapstructure:"database"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Auth     AuthSettings     `mapstructure:"auth"`
	Redis    RedisSettings    `mapstructure:"redis"`
	Mail     MailSettings     `mapstructure:"mail"`
	External ExternalSettings `mapstructure:"external"`
}

// Validate checks the top-level fields and every settings section
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	sections := []interface{ Validate() error }{
		&c.Database, &c.Logger, &c.Auth, &c.Redis, &c.Mail, &c.External,
	}
	for _, section := range sections {
		if err := section.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// InitializeRestConfig loads the REST API configuration from a YAML file,
// applies environment overrides and validates the result. A local .env file
// is picked up when present.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(configPath)
	setSharedDefaults(v)
	setRestDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := bindEnvOverrides(v, restEnvBindings()); err != nil {
		return nil, err
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDatabaseEnvParts(&cfg.Database)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setSharedDefaults(v *viper.Viper) {
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("redis.broker_url", "redis://localhost:6379/0")
	v.SetDefault("redis.result_url", "redis://localhost:6379/1")
	v.SetDefault("mail.provider", MailProviderLog)
	v.SetDefault("mail.send_delay_seconds", 2)
}

func setRestDefaults(v *viper.Viper) {
	v.SetDefault("port", "8000")
	v.SetDefault("database.type", PostgresDbType)
	v.SetDefault("auth.secret_key", "dev-insecure-secret-key")
	v.SetDefault("auth.algorithm", "HS256")
	v.SetDefault("auth.access_ttl_min", 15)
	v.SetDefault("auth.refresh_ttl_days", 7)
	v.SetDefault("auth.revocation_store", RevocationStoreMemory)
	v.SetDefault("auth.login_rate_per_min", 10)
	v.SetDefault("auth.login_burst", 5)
	v.SetDefault("external.posts_base_url", "https://jsonplaceholder.typicode.com")
	v.SetDefault("external.timeout_seconds", 10)
}

// restEnvBindings maps config keys to the environment names the service
// has always been deployed with.
func restEnvBindings() map[string]string {
	return map[string]string{
		"port":                    "PORT",
		"database.dsn":            "DATABASE_DSN",
		"auth.secret_key":         "SECRET_KEY",
		"auth.access_ttl_min":     "ACCESS_TTL_MIN",
		"auth.refresh_ttl_days":   "REFRESH_TTL_DAYS",
		"redis.broker_url":        "CELERY_BROKER_URL",
		"redis.result_url":        "CELERY_RESULT_BACKEND",
		"mail.provider":           "MAIL_PROVIDER",
		"mail.api_key":            "SENDGRID_API_KEY",
		"mail.sender":             "MAIL_SENDER",
		"external.posts_base_url": "EXTERNAL_POSTS_URL",
	}
}

func bindEnvOverrides(v *viper.Viper, bindings map[string]string) error {
	for key, envName := range bindings {
		if err := v.BindEnv(key, envName); err != nil {
			return fmt.Errorf("failed to bind env %s: %w", envName, err)
		}
	}
	return nil
}

// applyDatabaseEnvParts assembles a Postgres DSN from the discrete DB_*
// variables when a host is given. The DSN stays server-level; the database
// name is kept separate so the connection layer can ensure it exists.
func applyDatabaseEnvParts(settings *DatabaseSettings) {
	host := os.Getenv("DB_HOST")
	if host == "" {
		return
	}

	port := envOrDefault("DB_PORT", "5432")
	user := envOrDefault("DB_USER", "postgres")
	pass := envOrDefault("DB_PASS", "postgres")
	name := envOrDefault("DB_NAME", "user_api")

	settings.Type = PostgresDbType
	settings.DSN = fmt.Sprintf("host=%s port=%s user=%s password=%s sslmode=disable",
		host, port, user, pass)
	settings.DBName = name
}

func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}
