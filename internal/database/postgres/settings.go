package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SettingsRepository stores per-world settings as JSONB values.
type SettingsRepository struct {
	db    *pgxpool.Pool
	world string
}

// NewSettingsRepository creates a repository scoped to one world.
func NewSettingsRepository(db *pgxpool.Pool, worldID string) *SettingsRepository {
	return &SettingsRepository{db: db, world: worldID}
}

// Get returns the raw value and whether it was set.
func (r *SettingsRepository) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	var value string
	err := r.db.QueryRow(ctx,
		`SELECT value::text FROM world_settings WHERE world_id = $1 AND key = $2`,
		r.world, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%s %q: %w", ErrMsgFailedToGetSetting, key, err)
	}
	return json.RawMessage(value), true, nil
}

// Set upserts the value.
func (r *SettingsRepository) Set(ctx context.Context, key string, value json.RawMessage) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO world_settings (world_id, key, value, updated_at)
		VALUES ($1, $2, $3::jsonb, NOW())
		ON CONFLICT (world_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		r.world, key, string(value))
	if err != nil {
		return fmt.Errorf("%s %q: %w", ErrMsgFailedToSetSetting, key, err)
	}
	return nil
}
