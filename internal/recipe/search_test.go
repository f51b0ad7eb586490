package recipe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSearch(t *testing.T) (*Store, map[string]string) {
	t.Helper()
	ctx := context.Background()
	s := newTestStore()
	ids := map[string]string{}

	sword := s.Create(ctx)
	_, err := s.Update(ctx, sword.ID, map[string]any{"name": "Iron Sword"})
	require.NoError(t, err)
	ids["sword"] = sword.ID

	potion := s.Create(ctx)
	_, err = s.Update(ctx, potion.ID, map[string]any{"name": "Healing Draught"})
	require.NoError(t, err)
	_, err = s.AddIngredient(ctx, potion.ID, mustItem(t, `{"_id":"h","name":"Silverleaf Herb","type":"loot"}`))
	require.NoError(t, err)
	ids["potion"] = potion.ID

	tagged := s.Create(ctx)
	_, err = s.Update(ctx, tagged.ID, map[string]any{"name": "Campfire", "type": "tags"})
	require.NoError(t, err)
	_, err = s.AddTag(ctx, tagged.ID, "Kindling")
	require.NoError(t, err)
	ids["tagged"] = tagged.ID

	secret := s.Create(ctx)
	_, err = s.Update(ctx, secret.ID, map[string]any{"name": "Secret Sword", "settings": map[string]any{"isHidden": true}})
	require.NoError(t, err)
	ids["secret"] = secret.ID

	return s, ids
}

func visibility(s *Store) map[string]bool {
	out := map[string]bool{}
	for _, r := range s.List(context.Background()) {
		out[r.ID] = r.IsVisible
	}
	return out
}

func TestSearch_MatchesFieldsCaseInsensitive(t *testing.T) {
	s, ids := seedSearch(t)

	res := s.Search(context.Background(), "SWORD", false)
	assert.False(t, res.NoResults)
	assert.Equal(t, []string{ids["sword"]}, res.Visible)

	vis := visibility(s)
	assert.True(t, vis[ids["sword"]])
	assert.False(t, vis[ids["potion"]])
	assert.False(t, vis[ids["secret"]])

	res = s.Search(context.Background(), "silverleaf", false)
	assert.Equal(t, []string{ids["potion"]}, res.Visible)

	res = s.Search(context.Background(), "kindl", false)
	assert.Equal(t, []string{ids["tagged"]}, res.Visible)
}

func TestSearch_EditorsSeeHidden(t *testing.T) {
	s, ids := seedSearch(t)

	res := s.Search(context.Background(), "sword", true)
	assert.ElementsMatch(t, []string{ids["sword"], ids["secret"]}, res.Visible)
}

func TestSearch_NoResultsShowsEverything(t *testing.T) {
	s, ids := seedSearch(t)

	res := s.Search(context.Background(), "dragon", false)
	assert.True(t, res.NoResults)
	assert.ElementsMatch(t, []string{ids["sword"], ids["potion"], ids["tagged"]}, res.Visible)

	vis := visibility(s)
	assert.False(t, vis[ids["secret"]])
}

func TestSearch_EmptyQuery(t *testing.T) {
	s, _ := seedSearch(t)

	res := s.Search(context.Background(), "  ", true)
	assert.False(t, res.NoResults)
	assert.Len(t, res.Visible, 4)
}

func TestSearch_DoesNotChangeContent(t *testing.T) {
	s, ids := seedSearch(t)
	before, _ := s.Get(context.Background(), ids["potion"])

	s.Search(context.Background(), "iron", false)

	after, _ := s.Get(context.Background(), ids["potion"])
	after.IsVisible = before.IsVisible
	assert.Equal(t, before, after)
}

func TestSearch_EmptyStore(t *testing.T) {
	s := newTestStore()
	res := s.Search(context.Background(), "x", false)
	assert.True(t, res.NoResults)
	assert.Empty(t, res.Visible)
}
