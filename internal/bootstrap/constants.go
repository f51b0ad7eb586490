package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// ServiceName tags every log line
	ServiceName = "craftbench"

	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept on startup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting craftbench"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDefaultDeadLetterPath is the default file path for dead-letter event logging
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

const (
	LogMsgEventSystemInitialized    = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir = "failed to create dead-letter directory"
	LogMsgFailedCreateDeadLetter    = "failed to create dead-letter writer"
)

// =============================================================================
// Backends
// =============================================================================

const (
	LogMsgStorageInitialized  = "Recipe storage initialized"
	LogMsgDatabaseConnected   = "Database connected"
	ErrMsgUnknownBackend      = "unknown storage backend"
	ErrMsgFailedCreateDataDir = "failed to create data directory"
	ErrMsgFailedConnectDB     = "failed to connect to database"
	ErrMsgFailedMigrateDB     = "failed to migrate database"
)

// =============================================================================
// Inventory Seed
// =============================================================================

const (
	LogMsgSyncingInventory = "Syncing inventory seed..."
	LogMsgInventorySynced  = "Inventory seed synced"
	LogMsgNoInventorySeed  = "No inventory seed configured, skipping sync"

	ErrMsgFailedLoadInventory = "failed to load inventory seed"
	ErrMsgInvalidInventory    = "invalid inventory seed"
	ErrMsgFailedSyncInventory = "failed to sync inventory seed"
)

// =============================================================================
// Coordinator
// =============================================================================

const (
	LogMsgTransportSelected  = "Coordinator transport selected"
	LogMsgPlayerNotification = "Notification for player"
	ErrMsgFailedConnectRedis = "failed to connect coordinator transport"
	ErrMsgUnknownTransport   = "unknown coordinator transport"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgCloseFailed                = " close failed"

	ComponentDeadLetter = "dead-letter writer"
	ComponentTransport  = "coordinator transport"
)
