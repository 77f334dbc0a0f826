package config

import "time"

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// Log level constants
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Mail provider constants
const (
	MailProviderLog      = "log"
	MailProviderSendGrid = "sendgrid"
)

// Revocation store constants
const (
	RevocationStoreMemory = "memory"
	RevocationStoreRedis  = "redis"
)

// Redis key layout shared by the REST API and the worker
const (
	EmailQueueKey         = "tasks:email"
	TaskResultKeyPrefix   = "tasks:result:"
	RevokedTokenKeyPrefix = "auth:revoked:"
)

// TaskResultTTL is how long finished task results stay readable.
const TaskResultTTL = 24 * time.Hour
