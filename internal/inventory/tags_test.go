package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/tags"
)

func newTagFixture(t *testing.T) (*Memory, *ItemTagEditor) {
	t.Helper()
	inv := NewMemory()
	sword := `{"_id":"i-sword","name":"Sword","type":"weapon","flags":{"craftbench":{"craftTags":{"Metal":2,"Blade":1}}}}`
	require.NoError(t, inv.PutActor(context.Background(),
		domain.Actor{ID: "a1", Name: "Hero", Owners: []string{"p1"}},
		[]domain.Item{mustItem(t, sword)}))
	return inv, NewItemTagEditor(inv)
}

func TestItemTagEditor_Reformat(t *testing.T) {
	ctx := context.Background()
	inv, editor := newTagFixture(t)
	player := domain.User{ID: "p1", Role: domain.RolePlayer}

	set, err := editor.Reformat(ctx, player, "a1", "i-sword", map[string]tags.Edit{
		"Metal": {Tag: "Steel", Quantity: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, tags.Set{"Steel": 3, "Blade": 1}, set)

	items, err := inv.Items(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, tags.Set{"Steel": 3, "Blade": 1}, tags.ItemTags(items[0]))
}

func TestItemTagEditor_RejectedBatchLeavesItem(t *testing.T) {
	ctx := context.Background()
	inv, editor := newTagFixture(t)
	gm := domain.User{ID: "gm", Role: domain.RoleGM}

	_, err := editor.Reformat(ctx, gm, "a1", "i-sword", map[string]tags.Edit{
		"Metal": {Tag: "Blade", Quantity: 1},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateTag)

	items, err := inv.Items(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, tags.Set{"Metal": 2, "Blade": 1}, tags.ItemTags(items[0]))
}

func TestItemTagEditor_Access(t *testing.T) {
	ctx := context.Background()
	_, editor := newTagFixture(t)

	_, _, err := editor.List(ctx, domain.User{ID: "stranger", Role: domain.RolePlayer}, "a1", "i-sword", "")
	assert.ErrorIs(t, err, domain.ErrNoOwnedActor)

	_, _, err = editor.List(ctx, domain.User{ID: "gm", Role: domain.RoleGM}, "a1", "missing", "")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	entries, noResults, err := editor.List(ctx, domain.User{ID: "p1", Role: domain.RolePlayer}, "a1", "i-sword", "bla")
	require.NoError(t, err)
	assert.False(t, noResults)
	require.Len(t, entries, 2)
	assert.Equal(t, "Blade", entries[0].Tag)
	assert.True(t, entries[0].Visible)
	assert.False(t, entries[1].Visible)
}
