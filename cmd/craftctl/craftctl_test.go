package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const recipeFile = `{
	"fileInfo": {"system": "dnd5e", "world": "w1"},
	"r-chair": {"name": "Chair", "type": "items", "ingredients": {"src-wood": {"name": "Wood"}}},
	"r-note": {"name": "Note", "type": "text", "description": "A reminder about chairs"},
	"r-rope": {"name": "Rope", "type": "tags", "tags": {"Fiber": 2}, "isVisible": false}
}`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipes.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestValidateCmd(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		out, err := execute(t, "validate", writeFile(t, recipeFile))
		require.NoError(t, err)
		assert.Contains(t, out, "3 recipes")
		assert.NotContains(t, out, "warning")
	})

	t.Run("world mismatch is reported", func(t *testing.T) {
		out, err := execute(t, "validate", "--world", "w2", writeFile(t, recipeFile))
		require.NoError(t, err)
		assert.Contains(t, out, "warning")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, "validate", filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}

func TestListCmd(t *testing.T) {
	path := writeFile(t, recipeFile)

	t.Run("all visible", func(t *testing.T) {
		out, err := execute(t, "list", path)
		require.NoError(t, err)
		assert.Contains(t, out, "r-chair")
		assert.Contains(t, out, "r-note")
		assert.Contains(t, out, "r-rope")
	})

	t.Run("query", func(t *testing.T) {
		out, err := execute(t, "list", "--query", "wood", path)
		require.NoError(t, err)
		assert.Contains(t, out, "r-chair")
		assert.NotContains(t, out, "r-note")
	})

	t.Run("no results", func(t *testing.T) {
		out, err := execute(t, "list", "-q", "dragon", path)
		require.NoError(t, err)
		assert.Contains(t, out, "No recipes match")
	})
}

func TestDefaultsCmd(t *testing.T) {
	t.Run("known system", func(t *testing.T) {
		out, err := execute(t, "defaults", "dnd5e")
		require.NoError(t, err)

		var parsed map[string]map[string]*string
		require.NoError(t, yaml.Unmarshal([]byte(out), &parsed))
		require.Contains(t, parsed, "dnd5e")
		require.NotNil(t, parsed["dnd5e"]["loot"])
		assert.Equal(t, "system.quantity", *parsed["dnd5e"]["loot"])
	})

	t.Run("unknown system lists given types", func(t *testing.T) {
		out, err := execute(t, "defaults", "homebrew", "--types", "gear,trinket")
		require.NoError(t, err)

		var parsed map[string]map[string]*string
		require.NoError(t, yaml.Unmarshal([]byte(out), &parsed))
		assert.Len(t, parsed["homebrew"], 2)
		assert.Nil(t, parsed["homebrew"]["gear"])
	})

	t.Run("no system lists known systems", func(t *testing.T) {
		out, err := execute(t, "defaults")
		require.NoError(t, err)
		assert.Contains(t, out, "dnd5e")
	})
}
