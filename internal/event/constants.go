package event

import "time"

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Metadata keys
const (
	MetadataKeyFile       = "file"
	MetadataKeyRecipeType = "recipe_type"
	MetadataKeyForced     = "forced"
	MetadataKeyLevel      = "level"
)

// Retry defaults
const (
	RetryMaxAttempts = 5
	RetryBaseDelay   = 2 * time.Second
)

// DeadLetterFilePermissions is the file permission mode for dead-letter files
const DeadLetterFilePermissions = 0644

// Log messages
const (
	LogMsgEventPublishFailed  = "Event publish failed, retrying in background"
	LogMsgEventRetryFailed    = "Event retry failed"
	LogMsgEventRetrySucceeded = "Event retry succeeded"
	LogMsgEventDeadLettered   = "Event written to dead letter file"
	LogMsgDeadLetterFailed    = "Failed to write dead letter entry"

	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)

// CalculateRetryDelay returns the exponential backoff delay for a 1-based attempt.
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	return baseDelay * time.Duration(1<<(attempt-1))
}
