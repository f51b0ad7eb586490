package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/craftbench/internal/config"
	"github.com/osse101/craftbench/internal/crafting"
	"github.com/osse101/craftbench/internal/database"
	"github.com/osse101/craftbench/internal/database/postgres"
	"github.com/osse101/craftbench/internal/inventory"
	"github.com/osse101/craftbench/internal/settings"
	"github.com/osse101/craftbench/internal/storage"
)

// InventoryBackend is the actor store the crafting engine runs against. Seed
// files are synced into it on startup.
type InventoryBackend interface {
	crafting.Inventory
	inventory.Seeder
}

// Repositories holds the storage backends selected by configuration. Pool is
// nil for the disk backend.
type Repositories struct {
	Files     storage.FileStore
	Settings  settings.Store
	Inventory InventoryBackend
	Pool      *pgxpool.Pool
}

// InitializeRepositories builds the backends for cfg.StorageBackend. The
// recipe file store is always fronted by the LRU cache.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	var repos *Repositories

	switch cfg.StorageBackend {
	case config.StorageDisk:
		disk, err := storage.NewDiskStore(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDataDir, err)
		}
		repos = &Repositories{
			Files:     disk,
			Settings:  settings.NewMemory(),
			Inventory: inventory.NewMemory(),
		}

	case config.StoragePostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDB, err)
		}
		slog.Info(LogMsgDatabaseConnected, "max_conns", cfg.DBMaxConns)
		repos = &Repositories{
			Files:     postgres.NewRecipeFileRepository(pool),
			Settings:  postgres.NewSettingsRepository(pool, cfg.WorldID),
			Inventory: postgres.NewInventoryRepository(pool),
			Pool:      pool,
		}

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownBackend, cfg.StorageBackend)
	}

	repos.Files = storage.NewCachedStore(repos.Files, cfg.CacheSize, cfg.CacheTTL)
	slog.Info(LogMsgStorageInitialized,
		"backend", cfg.StorageBackend,
		"cache_size", cfg.CacheSize,
		"cache_ttl", cfg.CacheTTL)

	return repos, nil
}

// Ping checks the database when one is configured.
func (r *Repositories) Ping(ctx context.Context) error {
	if r.Pool == nil {
		return nil
	}
	return r.Pool.Ping(ctx)
}

// Close releases the database pool.
func (r *Repositories) Close() {
	if r.Pool != nil {
		r.Pool.Close()
	}
}
