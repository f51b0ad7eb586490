package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftbench/internal/domain"
)

func TestDiskStore(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStore(root)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.EnsureFolder(ctx, "/Crafting_Data"))
	assert.DirExists(t, filepath.Join(root, "Crafting_Data"))

	_, err = store.Read(ctx, "/Crafting_Data", "recipes.json")
	assert.ErrorIs(t, err, domain.ErrFileNotFound)

	p, err := store.Write(ctx, "/Crafting_Data", "recipes.json", []byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, "/Crafting_Data/recipes.json", p)

	data, err := store.Read(ctx, "/Crafting_Data", "recipes.json")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data))

	require.NoError(t, os.WriteFile(filepath.Join(root, "Crafting_Data", "notes.txt"), []byte("x"), 0o644))
	_, err = store.Write(ctx, "/Crafting_Data", "alchemy.json", []byte(`{}`))
	require.NoError(t, err)

	names, err := store.List(ctx, "/Crafting_Data")
	require.NoError(t, err)
	assert.Equal(t, []string{"alchemy.json", "recipes.json"}, names)

	names, err = store.List(ctx, "/nowhere")
	require.NoError(t, err)
	assert.Empty(t, names)

	entries, err := os.ReadDir(filepath.Join(root, "Crafting_Data"))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp", "temp files are cleaned up")
	}
}

func TestDiskStore_RejectsEscape(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Write(ctx, "/data", "../evil.json", []byte(`{}`))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = store.Write(ctx, "/", "..", []byte(`{}`))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Folder traversal is clamped to the root.
	p, err := store.Write(ctx, "../../outside", "x.json", []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "/outside/x.json", p)
}

type countingStore struct {
	FileStore
	reads int
}

func (c *countingStore) Read(ctx context.Context, folder, name string) ([]byte, error) {
	c.reads++
	return c.FileStore.Read(ctx, folder, name)
}

func TestCachedStore(t *testing.T) {
	disk, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)
	inner := &countingStore{FileStore: disk}
	cached := NewCachedStore(inner, 4, time.Minute)
	ctx := context.Background()

	_, err = cached.Write(ctx, "/d", "a.json", []byte(`1`))
	require.NoError(t, err)

	data, err := cached.Read(ctx, "/d", "a.json")
	require.NoError(t, err)
	assert.Equal(t, "1", string(data))
	assert.Equal(t, 0, inner.reads, "write primes the cache")

	_, err = cached.Write(ctx, "/d", "a.json", []byte(`2`))
	require.NoError(t, err)
	data, err = cached.Read(ctx, "/d", "a.json")
	require.NoError(t, err)
	assert.Equal(t, "2", string(data))

	cached.Invalidate()
	data, err = cached.Read(ctx, "/d", "a.json")
	require.NoError(t, err)
	assert.Equal(t, "2", string(data))
	assert.Equal(t, 1, inner.reads)

	_, err = cached.Read(ctx, "/d", "missing.json")
	assert.ErrorIs(t, err, domain.ErrFileNotFound)

	// Mutating a returned slice must not poison the cache.
	data[0] = '9'
	again, err := cached.Read(ctx, "/d", "a.json")
	require.NoError(t, err)
	assert.Equal(t, "2", string(again))
}
