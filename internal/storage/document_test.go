package storage

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftbench/internal/domain"
)

var env = FileInfo{System: "dnd5e", World: "w1"}

func TestCodec_Decode(t *testing.T) {
	codec := NewCodec(nil)

	t.Run("strips header and resets transient fields", func(t *testing.T) {
		data := `{
			"fileInfo": {"system": "dnd5e", "world": "w1"},
			"r1": {"name": "Chair", "type": "items", "editMode": true, "isVisible": false,
			       "target": {"name": "Chair", "system": {"quantity": 1}},
			       "ingredients": {"src-wood": {"name": "Wood"}}},
			"r2": {"id": "stale", "name": "Note", "type": "text"}
		}`
		recipes, info, warnings, err := codec.Decode([]byte(data), env)
		require.NoError(t, err)
		assert.Empty(t, warnings)
		assert.Equal(t, env, info)
		require.Len(t, recipes, 2)

		r1 := recipes["r1"]
		assert.Equal(t, "r1", r1.ID)
		assert.False(t, r1.EditMode)
		assert.True(t, r1.IsVisible)
		require.NotNil(t, r1.Target)
		assert.Equal(t, "Chair", r1.Target.Name())
		assert.Contains(t, r1.Ingredients, "src-wood")

		assert.Equal(t, "r2", recipes["r2"].ID, "key wins over stored id")
	})

	t.Run("mismatch produces warnings", func(t *testing.T) {
		data := `{"fileInfo": {"system": "pf2e", "world": "other"}}`
		recipes, info, warnings, err := codec.Decode([]byte(data), env)
		require.NoError(t, err)
		assert.Empty(t, recipes)
		assert.Equal(t, "pf2e", info.System)
		require.Len(t, warnings, 2)
		assert.Equal(t, WarningSystemMismatch, warnings[0].Code)
		assert.Equal(t, WarningWorldMismatch, warnings[1].Code)
	})

	t.Run("legacy top-level header", func(t *testing.T) {
		data := `{"system": "dnd5e", "world": "w1", "r1": {"name": "A", "type": "text"}}`
		recipes, info, warnings, err := codec.Decode([]byte(data), env)
		require.NoError(t, err)
		assert.Empty(t, warnings)
		assert.Equal(t, env, info)
		assert.Len(t, recipes, 1)
	})

	t.Run("missing header falls back to env", func(t *testing.T) {
		recipes, info, warnings, err := codec.Decode([]byte(`{"r1": {"name": "A", "type": "text"}}`), env)
		require.NoError(t, err)
		assert.Len(t, recipes, 1)
		assert.Equal(t, env, info)
		require.Len(t, warnings, 1)
		assert.Equal(t, WarningMissingFileInfo, warnings[0].Code)
	})

	t.Run("empty file", func(t *testing.T) {
		for _, data := range []string{"", "  ", "null"} {
			recipes, info, warnings, err := codec.Decode([]byte(data), env)
			require.NoError(t, err)
			assert.Empty(t, recipes)
			assert.Equal(t, env, info)
			require.Len(t, warnings, 1)
			assert.Equal(t, WarningEmptyFile, warnings[0].Code)
		}
	})

	t.Run("schema violation", func(t *testing.T) {
		_, _, _, err := codec.Decode([]byte(`{"r1": {"name": "A", "type": "potion"}}`), env)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("not json", func(t *testing.T) {
		_, _, _, err := codec.Decode([]byte(`{oops`), env)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestCodec_Encode(t *testing.T) {
	codec := NewCodec(nil)
	target, err := domain.NewItem([]byte(`{"name":"Chair"}`))
	require.NoError(t, err)

	recipes := domain.RecipeCollection{
		"b": {ID: "b", Name: "B", Type: domain.RecipeTypeText, IsVisible: true},
		"a": {ID: "a", Name: "A", Type: domain.RecipeTypeItems, Target: &target, Tags: map[string]int{"wood": 2}},
	}

	data, err := codec.Encode(recipes, env)
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "{\n \"fileInfo\": {\n  \"system\": \"dnd5e\""), text)
	assert.Less(t, strings.Index(text, `"a": {`), strings.Index(text, `"b": {`))

	var generic map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &generic))
	assert.Len(t, generic, 3)

	decoded, info, warnings, err := codec.Decode(data, env)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, env, info)
	assert.Equal(t, "Chair", decoded["a"].Target.Name())
	assert.Equal(t, 2, decoded["a"].Tags["wood"])
}

func TestCodec_KeepsUndeclaredRecipeKeys(t *testing.T) {
	codec := NewCodec(nil)
	data := []byte(`{
		"fileInfo": {"system": "dnd5e", "world": "w1"},
		"r1": {"name": "A", "type": "text", "flavor": "smoky", "settings": {"opened": true, "custom": [1, 2]}}
	}`)

	recipes, _, _, err := codec.Decode(data, env)
	require.NoError(t, err)

	out, err := codec.Encode(recipes, env)
	require.NoError(t, err)
	again, _, _, err := codec.Decode(out, env)
	require.NoError(t, err)

	r := again["r1"]
	require.NotNil(t, r)
	assert.JSONEq(t, `"smoky"`, string(r.Extra["flavor"]))
	assert.JSONEq(t, `[1, 2]`, string(r.Settings.Extra["custom"]))
	assert.True(t, r.Settings.Opened)
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"recipes", "recipes.json"},
		{"my file.v2", "my_file_v2.json"},
		{`a\b/c:d*e?f"g<h>i|j+k-l%m!n@o,p`, "a_b_c_d_e_f_g_h_i_j_k_l_m_n_o_p.json"},
		{"", ".json"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFileName(tt.in), tt.in)
	}
}
