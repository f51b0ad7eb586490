package settings

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/quantity"
)

func TestSettings_Defaults(t *testing.T) {
	s := New(NewMemory())
	ctx := context.Background()

	savePath, err := s.SavePath(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSavePath, savePath)

	file, err := s.CurrentFile(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultFileName, file)

	files, err := s.RecipeFiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.DefaultFileName}, files)

	allow, err := s.AllowPlayerEdit(ctx)
	require.NoError(t, err)
	assert.False(t, allow)
}

func TestSettings_RoundTrip(t *testing.T) {
	s := New(NewMemory())
	ctx := context.Background()

	require.NoError(t, s.SetSavePath(ctx, "/custom"))
	require.NoError(t, s.SetCurrentFile(ctx, "alchemy"))
	require.NoError(t, s.SetAllowPlayerEdit(ctx, true))
	require.NoError(t, s.AddRecipeFile(ctx, "alchemy"))
	require.NoError(t, s.AddRecipeFile(ctx, "alchemy"))

	savePath, _ := s.SavePath(ctx)
	file, _ := s.CurrentFile(ctx)
	allow, _ := s.AllowPlayerEdit(ctx)
	files, _ := s.RecipeFiles(ctx)

	assert.Equal(t, "/custom", savePath)
	assert.Equal(t, "alchemy", file)
	assert.True(t, allow)
	assert.Equal(t, []string{domain.DefaultFileName, "alchemy"}, files)
}

func TestSettings_MalformedValueFallsBack(t *testing.T) {
	mem := NewMemory()
	require.NoError(t, mem.Set(context.Background(), KeyAllowPlayerEdit, json.RawMessage(`"yes"`)))

	allow, err := New(mem).AllowPlayerEdit(context.Background())
	require.NoError(t, err)
	assert.False(t, allow)
}

type failingStore struct{}

func (failingStore) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	return nil, false, errors.New("db down")
}

func (failingStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	return errors.New("db down")
}

func TestSettings_StoreErrors(t *testing.T) {
	s := New(failingStore{})
	ctx := context.Background()

	_, err := s.SavePath(ctx)
	assert.Error(t, err)
	assert.Error(t, s.SetCurrentFile(ctx, "x"))
	_, err = EnsureQuantityTable(ctx, s, "dnd5e", nil)
	assert.Error(t, err)
}

func TestEnsureQuantityTable(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds from system defaults once", func(t *testing.T) {
		s := New(NewMemory())

		table, err := EnsureQuantityTable(ctx, s, "dnd5e", nil)
		require.NoError(t, err)
		require.NotNil(t, table["loot"])
		assert.Equal(t, "system.quantity", *table["loot"])

		custom := "system.count"
		table["loot"] = &custom
		require.NoError(t, s.SetQuantityTable(ctx, table))

		again, err := EnsureQuantityTable(ctx, s, "dnd5e", nil)
		require.NoError(t, err)
		assert.Equal(t, "system.count", *again["loot"])
	})

	t.Run("unknown system maps known types to synthetic", func(t *testing.T) {
		s := New(NewMemory())

		table, err := EnsureQuantityTable(ctx, s, "homebrew", []string{"gadget"})
		require.NoError(t, err)
		v, ok := table["gadget"]
		assert.True(t, ok)
		assert.Nil(t, v)

		stored, ok, err := s.QuantityTable(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, quantity.PathTable{"gadget": nil}, stored)
	})

	t.Run("malformed table is a validation error", func(t *testing.T) {
		mem := NewMemory()
		require.NoError(t, mem.Set(ctx, KeyQuantityPath, json.RawMessage(`[1,2]`)))
		_, err := EnsureQuantityTable(ctx, New(mem), "dnd5e", nil)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
