package inventory

// Error Messages - Seed Loading
const (
	ErrMsgReadSeedFileFailed = "failed to read seed file: %w"
	ErrMsgParseSeedFailed    = "failed to parse seed file: %w"
	ErrMsgSeedNil            = "seed is nil"
	ErrFmtActorEmptyID       = "%w: actor at index %d has empty id"
	ErrFmtActorEmptyName     = "%w: actor '%s' has empty name"
	ErrFmtActorBadItem       = "%w: actor '%s' item %d: %v"
)

// Log Messages
const (
	LogMsgSeedLoaded  = "Inventory seed loaded"
	LogMsgActorSeeded = "Actor seeded"
)
