package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("object", func(t *testing.T) {
		it, err := NewItem([]byte(`{"name":"Sword","type":"weapon"}`))
		require.NoError(t, err)
		assert.Equal(t, "Sword", it.Name())
		assert.Equal(t, "weapon", it.Type())
	})

	t.Run("rejects non-object", func(t *testing.T) {
		for _, raw := range []string{`[]`, `"x"`, `{bad`, ``} {
			_, err := NewItem([]byte(raw))
			assert.ErrorIs(t, err, ErrInvalidInput, raw)
		}
	})
}

func TestItemSetIsCopy(t *testing.T) {
	orig, err := NewItem([]byte(`{"name":"Potion","system":{"quantity":2}}`))
	require.NoError(t, err)

	updated, err := orig.Set("system.quantity", 5)
	require.NoError(t, err)

	assert.Equal(t, int64(2), orig.Get("system.quantity").Int())
	assert.Equal(t, int64(5), updated.Get("system.quantity").Int())
}

func TestItemDelete(t *testing.T) {
	it, err := NewItem([]byte(`{"_id":"abc","name":"Rope"}`))
	require.NoError(t, err)

	out, err := it.Delete("_id")
	require.NoError(t, err)
	assert.False(t, out.Has("_id"))
	assert.True(t, it.Has("_id"))

	same, err := out.Delete("missing.path")
	require.NoError(t, err)
	assert.Equal(t, out.String(), same.String())
}

func TestItemJSON(t *testing.T) {
	type wrapper struct {
		Target *Item           `json:"target,omitempty"`
		Items  map[string]Item `json:"items"`
	}

	in := `{"target":{"name":"Axe","flags":{"x":1}},"items":{"a":{"name":"Log"}}}`
	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(in), &w))
	require.NotNil(t, w.Target)
	assert.Equal(t, "Axe", w.Target.Name())
	assert.Equal(t, int64(1), w.Target.Get("flags.x").Int())
	assert.Equal(t, "Log", w.Items["a"].Name())

	out, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestRecipeClone(t *testing.T) {
	target, err := NewItem([]byte(`{"name":"Axe"}`))
	require.NoError(t, err)
	macro := "open"
	r := &Recipe{
		ID:          "r1",
		Target:      &target,
		Ingredients: map[string]Item{"log": target},
		Tags:        map[string]int{"wood": 2},
	}
	r.Settings.Macros.OpenMacros = &macro

	c := r.Clone()
	c.Tags["wood"] = 5
	delete(c.Ingredients, "log")
	*c.Settings.Macros.OpenMacros = "changed"

	assert.Equal(t, 2, r.Tags["wood"])
	assert.Contains(t, r.Ingredients, "log")
	assert.Equal(t, "open", *r.Settings.Macros.OpenMacros)
}

func TestRecipeTargets(t *testing.T) {
	a, _ := NewItem([]byte(`{"name":"A"}`))
	b, _ := NewItem([]byte(`{"name":"B"}`))

	r := &Recipe{Target: &a, TargetList: map[string]Item{"2": b, "1": a}}
	assert.Len(t, r.Targets(), 1)

	r.Settings.IsTargetList = true
	got := r.Targets()
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Name())
	assert.Equal(t, "B", got[1].Name())

	empty := &Recipe{}
	assert.Empty(t, empty.Targets())
}

func TestUserCanEdit(t *testing.T) {
	assert.True(t, User{Role: RoleGM}.CanEdit(false))
	assert.False(t, User{Role: RolePlayer}.CanEdit(false))
	assert.True(t, User{Role: RolePlayer}.CanEdit(true))
}
