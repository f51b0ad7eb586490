package config

import "time"

// Storage backends
const (
	StorageDisk     = "disk"
	StoragePostgres = "postgres"
)

// Coordinator transports
const (
	TransportLocal = "local"
	TransportRedis = "redis"
)

// EnvironmentProduction enables production-only warnings
const EnvironmentProduction = "production"

// Defaults
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultGameSystem        = "dnd5e"
	DefaultWorldID           = "world"
	DefaultDataDir           = "data"
	DefaultCacheSize         = 64
	DefaultCacheTTL          = 5 * time.Minute
	DefaultWriteTimeout      = 10 * time.Second
	DefaultCraftSessionTTL   = 30 * time.Minute
	DefaultDBMaxConns        = 10
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
)
