package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/tags"
)

func TestRecipeHandler_EditRights(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, playerUser, http.MethodPost, "/recipes", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = api.do(t, domain.User{}, http.MethodPost, "/recipes", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	require.NoError(t, api.settings.SetAllowPlayerEdit(context.Background(), true))
	rec = api.do(t, playerUser, http.MethodPost, "/recipes", nil)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRecipeHandler_ListHidesHiddenRecipes(t *testing.T) {
	api := newTestAPI(t)
	visible := api.createRecipe(t)
	hidden := api.createRecipe(t)

	rec := api.do(t, gmUser, http.MethodPatch, "/recipes/"+hidden, map[string]any{
		"name":     "Secret",
		"settings": map[string]any{"isHidden": true},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var list RecipeListResponse
	decodeBody(t, api.do(t, playerUser, http.MethodGet, "/recipes", nil), &list)
	require.Len(t, list.Recipes, 1)
	assert.Equal(t, visible, list.Recipes[0].ID)
	assert.False(t, list.CanEdit)

	decodeBody(t, api.do(t, gmUser, http.MethodGet, "/recipes", nil), &list)
	assert.Len(t, list.Recipes, 2)
	assert.True(t, list.CanEdit)

	assert.Equal(t, http.StatusNotFound, api.do(t, playerUser, http.MethodGet, "/recipes/"+hidden, nil).Code)
	assert.Equal(t, http.StatusOK, api.do(t, gmUser, http.MethodGet, "/recipes/"+hidden, nil).Code)
}

func TestRecipeHandler_SearchNoResults(t *testing.T) {
	api := newTestAPI(t)
	api.createRecipe(t)

	var list RecipeListResponse
	decodeBody(t, api.do(t, gmUser, http.MethodGet, "/recipes?q=zzz", nil), &list)
	assert.True(t, list.NoResults)
	assert.Len(t, list.Recipes, 1)
}

func TestRecipeHandler_Update(t *testing.T) {
	api := newTestAPI(t)
	id := api.createRecipe(t)

	t.Run("partial merge keeps other settings", func(t *testing.T) {
		rec := api.do(t, gmUser, http.MethodPatch, "/recipes/"+id, map[string]any{
			"settings": map[string]any{"allowForceCraft": true},
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var r domain.Recipe
		decodeBody(t, rec, &r)
		assert.True(t, r.Settings.AllowForceCraft)
		assert.Equal(t, domain.DefaultRecipeName, r.Name)
	})

	t.Run("unknown recipe", func(t *testing.T) {
		rec := api.do(t, gmUser, http.MethodPatch, "/recipes/missing", map[string]any{"name": "x"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		rec := api.do(t, gmUser, http.MethodPatch, "/recipes/"+id, "not an object")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRecipeHandler_UpdateMany(t *testing.T) {
	api := newTestAPI(t)
	a, b := api.createRecipe(t), api.createRecipe(t)

	rec := api.do(t, gmUser, http.MethodPatch, "/recipes", UpdateManyRequest{
		a: {"name": "Alpha"},
		b: {"name": "Beta"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	ra, err := api.catalog.Recipes().Get(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", ra.Name)
}

func TestRecipeHandler_SetType(t *testing.T) {
	api := newTestAPI(t)
	id := api.createRecipe(t)

	rec := api.do(t, gmUser, http.MethodPut, "/recipes/"+id+"/type", SetTypeRequest{Type: "potion"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, gmUser, http.MethodPut, "/recipes/"+id+"/type", SetTypeRequest{Type: "tags"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var r domain.Recipe
	decodeBody(t, rec, &r)
	assert.Equal(t, domain.RecipeTypeTags, r.Type)
}

func TestRecipeHandler_Delete(t *testing.T) {
	api := newTestAPI(t)
	id := api.createRecipe(t)

	rec := api.do(t, gmUser, http.MethodDelete, "/recipes/"+id, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, 1, api.catalog.Recipes().Len())

	rec = api.do(t, gmUser, http.MethodDelete, "/recipes/"+id+"?confirm=true", nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 0, api.catalog.Recipes().Len())
	rec = api.do(t, gmUser, http.MethodDelete, "/recipes/"+id+"?confirm=true", nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRecipeHandler_ToggleEditMode(t *testing.T) {
	api := newTestAPI(t)
	id := api.createRecipe(t)

	var resp ToggleResponse
	decodeBody(t, api.do(t, gmUser, http.MethodPost, "/recipes/"+id+"/edit-mode", nil), &resp)
	assert.True(t, resp.Value)
	decodeBody(t, api.do(t, gmUser, http.MethodPost, "/recipes/"+id+"/edit-mode", nil), &resp)
	assert.False(t, resp.Value)
}

func TestRecipeHandler_TargetAndIngredients(t *testing.T) {
	api := newTestAPI(t)
	id := api.createRecipe(t)

	rec := api.do(t, gmUser, http.MethodPut, "/recipes/"+id+"/target", ItemRequest{Item: json.RawMessage(plankItem)})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var r domain.Recipe
	decodeBody(t, rec, &r)
	assert.Equal(t, "Plank", r.Name)
	require.NotNil(t, r.Target)

	t.Run("target as ingredient needs confirmation", func(t *testing.T) {
		rec := api.do(t, gmUser, http.MethodPost, "/recipes/"+id+"/ingredients", ItemRequest{Item: json.RawMessage(plankItem)})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("ingredient then quantity rewrite", func(t *testing.T) {
		rec := api.do(t, gmUser, http.MethodPost, "/recipes/"+id+"/ingredients", ItemRequest{Item: json.RawMessage(logItem)})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var sid SourceIDResponse
		decodeBody(t, rec, &sid)
		assert.Equal(t, "src-log", sid.SourceID)

		body := map[string]any{
			"slot":    map[string]any{"kind": "ingredient", "sourceId": "src-log"},
			"value":   0,
			"rewrite": true,
		}
		var q QuantityResponse
		rec = api.do(t, gmUser, http.MethodPost, "/recipes/"+id+"/quantity", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		decodeBody(t, rec, &q)
		assert.Equal(t, 1, q.Quantity)
	})

	t.Run("bad slot kind", func(t *testing.T) {
		body := map[string]any{"slot": map[string]any{"kind": "pocket"}, "value": 1}
		rec := api.do(t, gmUser, http.MethodPost, "/recipes/"+id+"/quantity", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid item document", func(t *testing.T) {
		rec := api.do(t, gmUser, http.MethodPut, "/recipes/"+id+"/target", ItemRequest{Item: json.RawMessage(`"nope"`)})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRecipeHandler_Tags(t *testing.T) {
	api := newTestAPI(t)
	id := api.createRecipe(t)
	base := "/recipes/" + id + "/tags"

	rec := api.do(t, gmUser, http.MethodPost, base, AddTagRequest{Tag: "Metal"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, http.StatusConflict, api.do(t, gmUser, http.MethodPost, base, AddTagRequest{Tag: "Metal"}).Code)
	assert.Equal(t, http.StatusBadRequest, api.do(t, gmUser, http.MethodPost, base, AddTagRequest{Tag: "bad tag"}).Code)

	tagsOf := func(rec *httptest.ResponseRecorder) tags.Set {
		t.Helper()
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var resp TagSetResponse
		decodeBody(t, rec, &resp)
		return resp.Tags
	}

	qty := 3
	set := tagsOf(api.do(t, gmUser, http.MethodPatch, base+"/Metal", EditTagRequest{NewTag: "Steel", Quantity: &qty, Overwrite: true}))
	assert.Equal(t, tags.Set{"Steel": 3}, set)

	set = tagsOf(api.do(t, gmUser, http.MethodPut, base, map[string]any{
		"edits": map[string]any{"Steel": map[string]any{"tag": "Iron", "quantity": "2"}},
	}))
	assert.Equal(t, tags.Set{"Iron": 2}, set)

	assert.Equal(t, http.StatusNotFound, api.do(t, gmUser, http.MethodDelete, base+"/Steel", nil).Code)
	assert.Empty(t, tagsOf(api.do(t, gmUser, http.MethodDelete, base+"/Iron", nil)))
}
