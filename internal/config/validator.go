package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks values that would otherwise fail late at startup.
func (c *Config) Validate() error {
	var errs []error

	switch c.StorageBackend {
	case StorageDisk:
		if strings.TrimSpace(c.DataDir) == "" {
			errs = append(errs, errors.New("DATA_DIR must be set for the disk storage backend"))
		}
	case StoragePostgres:
	default:
		errs = append(errs, fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", StorageDisk, StoragePostgres, c.StorageBackend))
	}

	if strings.TrimSpace(c.WorldID) == "" {
		errs = append(errs, errors.New("WORLD_ID must not be empty"))
	}
	if c.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("CACHE_SIZE must not be negative, got %d", c.CacheSize))
	}
	if c.WriteTimeout <= 0 {
		errs = append(errs, fmt.Errorf("WRITE_TIMEOUT must be positive, got %s", c.WriteTimeout))
	}

	return errors.Join(errs...)
}

// Warnings returns non-fatal configuration issues worth logging at startup.
func (c *Config) Warnings() []string {
	var warnings []string

	if c.StorageBackend == StoragePostgres && c.DatabaseURL == "" && c.DBPassword == "postgres" {
		warnings = append(warnings, "DB_PASSWORD is the default value - please use a secure password")
	}
	if c.Transport == TransportLocal && !c.SessionPrivileged {
		warnings = append(warnings, "SESSION_PRIVILEGED is false with the local transport - no session can write recipe files")
	}
	if c.APIKey == "" && c.Environment == EnvironmentProduction {
		warnings = append(warnings, "API_KEY is not set - the API accepts unauthenticated requests")
	}
	if c.InventorySeed == "" && c.StorageBackend == StorageDisk {
		warnings = append(warnings, "INVENTORY_SEED is not set - the in-memory inventory starts empty")
	}

	return warnings
}
