// Package settings holds per-world configuration values.
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/logger"
	"github.com/osse101/craftbench/internal/quantity"
)

// Setting keys
const (
	KeySavePath        = "save-path"
	KeyCurrentFile     = "current-file"
	KeyRecipeFiles     = "recipe-files"
	KeyQuantityPath    = "quantity-path"
	KeyAllowPlayerEdit = "allow-player-edit"
)

// Store persists raw setting values.
type Store interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
}

// Memory is an in-process Store.
type Memory struct {
	mu     sync.RWMutex
	values map[string]json.RawMessage
}

func NewMemory() *Memory {
	return &Memory{values: map[string]json.RawMessage{}}
}

func (m *Memory) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return slices.Clone(v), ok, nil
}

func (m *Memory) Set(ctx context.Context, key string, value json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = slices.Clone(value)
	return nil
}

// Settings reads and writes typed values with defaults.
type Settings struct {
	store Store
}

func New(store Store) *Settings {
	return &Settings{store: store}
}

func get[T any](ctx context.Context, s *Settings, key string, def T) (T, error) {
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil || !ok {
		return def, err
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.FromContext(ctx).Warn("Ignoring malformed setting", "key", key, "error", err)
		return def, nil
	}
	return v, nil
}

func set[T any](ctx context.Context, s *Settings, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode setting %s: %w", key, err)
	}
	return s.store.Set(ctx, key, raw)
}

func (s *Settings) SavePath(ctx context.Context) (string, error) {
	return get(ctx, s, KeySavePath, domain.DefaultSavePath)
}

func (s *Settings) SetSavePath(ctx context.Context, p string) error {
	return set(ctx, s, KeySavePath, p)
}

func (s *Settings) CurrentFile(ctx context.Context) (string, error) {
	return get(ctx, s, KeyCurrentFile, domain.DefaultFileName)
}

func (s *Settings) SetCurrentFile(ctx context.Context, name string) error {
	return set(ctx, s, KeyCurrentFile, name)
}

// RecipeFiles lists the known file names, starting with the default file.
func (s *Settings) RecipeFiles(ctx context.Context) ([]string, error) {
	return get(ctx, s, KeyRecipeFiles, []string{domain.DefaultFileName})
}

// AddRecipeFile records name once.
func (s *Settings) AddRecipeFile(ctx context.Context, name string) error {
	files, err := s.RecipeFiles(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(files, name) {
		return nil
	}
	return set(ctx, s, KeyRecipeFiles, append(files, name))
}

func (s *Settings) AllowPlayerEdit(ctx context.Context) (bool, error) {
	return get(ctx, s, KeyAllowPlayerEdit, false)
}

func (s *Settings) SetAllowPlayerEdit(ctx context.Context, allow bool) error {
	return set(ctx, s, KeyAllowPlayerEdit, allow)
}

// QuantityTable returns the stored table and whether one was stored.
func (s *Settings) QuantityTable(ctx context.Context) (quantity.PathTable, bool, error) {
	raw, ok, err := s.store.Get(ctx, KeyQuantityPath)
	if err != nil || !ok {
		return nil, false, err
	}
	var table quantity.PathTable
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, false, fmt.Errorf("%w: %s: %v", domain.ErrValidation, KeyQuantityPath, err)
	}
	return table, true, nil
}

func (s *Settings) SetQuantityTable(ctx context.Context, table quantity.PathTable) error {
	if table == nil {
		table = quantity.PathTable{}
	}
	return set(ctx, s, KeyQuantityPath, table)
}

// EnsureQuantityTable returns the stored table, seeding it from the system
// defaults the first time.
func EnsureQuantityTable(ctx context.Context, s *Settings, system string, knownTypes []string) (quantity.PathTable, error) {
	log := logger.FromContext(ctx)

	table, ok, err := s.QuantityTable(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		return table, nil
	}

	table, err = quantity.DefaultTable(system, knownTypes)
	if err != nil {
		return nil, err
	}
	if err := s.SetQuantityTable(ctx, table); err != nil {
		return nil, err
	}
	log.Info("Seeded quantity path table", "system", system, "types", len(table))
	return table, nil
}
