package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/craftbench/internal/inventory"
)

// SyncInventory loads, validates and writes the inventory seed at path into
// target. An empty path is a no-op.
func SyncInventory(ctx context.Context, path string, target inventory.Seeder) error {
	if path == "" {
		slog.Info(LogMsgNoInventorySeed)
		return nil
	}

	slog.Info(LogMsgSyncingInventory, "path", path)
	loader := inventory.NewLoader()

	seed, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadInventory, err)
	}

	if err := loader.Validate(seed); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidInventory, err)
	}

	result, err := loader.Sync(ctx, seed, target)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncInventory, err)
	}

	slog.Info(LogMsgInventorySynced, "actors", result.Actors, "items", result.Items)
	return nil
}
