package storage

// Document keys
const (
	KeyFileInfo     = "fileInfo"
	keyLegacySystem = "system"
	keyLegacyWorld  = "world"
)

// Warning codes returned by Decode
const (
	WarningEmptyFile       = "empty_file"
	WarningMissingFileInfo = "missing_file_info"
	WarningSystemMismatch  = "system_mismatch"
	WarningWorldMismatch   = "world_mismatch"
)

const (
	// DefaultCacheSize is the number of documents CachedStore keeps
	DefaultCacheSize = 64

	// encodeIndent matches the indentation of files written by earlier releases
	encodeIndent = " "

	filePerm = 0o644
	dirPerm  = 0o755
)

// Log Messages
const (
	LogMsgDocumentWritten   = "Recipe file written"
	LogMsgDocumentRead      = "Recipe file read"
	LogMsgDecodeWarning     = "Recipe file loaded with warning"
	LogMsgCacheHit          = "Recipe file cache hit"
	LogMsgPersistenceFailed = "Recipe file write failed"
)
