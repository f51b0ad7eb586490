package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftbench/internal/catalog"
	"github.com/osse101/craftbench/internal/concurrency"
	"github.com/osse101/craftbench/internal/coordinator"
	"github.com/osse101/craftbench/internal/crafting"
	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/event"
	"github.com/osse101/craftbench/internal/inventory"
	"github.com/osse101/craftbench/internal/middleware"
	"github.com/osse101/craftbench/internal/quantity"
	"github.com/osse101/craftbench/internal/recipe"
	"github.com/osse101/craftbench/internal/settings"
	"github.com/osse101/craftbench/internal/storage"
)

var (
	gmUser     = domain.User{ID: "gm", Role: domain.RoleGM}
	playerUser = domain.User{ID: "p1", Role: domain.RolePlayer}
)

const (
	logItem   = `{"_id":"i-log","name":"Log","type":"loot","flags":{"core":{"sourceId":"src-log"}},"system":{"quantity":3}}`
	plankItem = `{"_id":"i-plank","name":"Plank","type":"loot","flags":{"core":{"sourceId":"src-plank"}},"system":{"quantity":1}}`
	swordItem = `{"_id":"i-sword","name":"Sword","type":"weapon","flags":{"craftbench":{"craftTags":{"Metal":2}}}}`
)

// performWriter performs saves in-process.
type performWriter coordinator.PerformFunc

func (f performWriter) RequestWrite(ctx context.Context, req coordinator.SaveRequest) (string, error) {
	return f(ctx, req)
}

type testAPI struct {
	router   http.Handler
	catalog  catalog.Service
	settings *settings.Settings
	resolver *quantity.Resolver
	inv      *inventory.Memory
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	ctx := context.Background()

	disk, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)
	persister := storage.NewPersister(disk, storage.NewCodec(nil))
	loot := "system.quantity"
	resolver := quantity.NewResolver(quantity.PathTable{"loot": &loot})
	st := settings.New(settings.NewMemory())
	require.NoError(t, st.SetQuantityTable(ctx, resolver.Table()))

	bus := event.NewMemoryBus()
	cat := catalog.NewService(recipe.NewStore(resolver), resolver, st, persister,
		performWriter(catalog.NewPerformer(persister)), bus,
		catalog.Config{Env: storage.FileInfo{System: "dnd5e", World: "w1"}})
	_, err = cat.Initialize(ctx)
	require.NoError(t, err)

	inv := inventory.NewMemory()
	require.NoError(t, inv.PutActor(ctx, domain.Actor{ID: "a1", Name: "Hero", Owners: []string{playerUser.ID}},
		[]domain.Item{mustDoc(t, logItem), mustDoc(t, swordItem)}))

	crafter := crafting.NewService(cat.Recipes(), inv, resolver, concurrency.NewLockManager(), bus, time.Minute)

	recipes := NewRecipeHandler(cat)
	files := NewFileHandler(cat)
	craft := NewCraftHandler(crafter)
	itemTags := NewItemTagHandler(inventory.NewItemTagEditor(inv))
	settingsHandler := NewSettingsHandler(st, resolver)

	r := chi.NewRouter()
	r.Use(middleware.Identity, middleware.Confirmation)
	r.Route("/recipes", func(r chi.Router) {
		r.Get("/", recipes.HandleList)
		r.Post("/", recipes.HandleCreate)
		r.Patch("/", recipes.HandleUpdateMany)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", recipes.HandleGet)
			r.Patch("/", recipes.HandleUpdate)
			r.Delete("/", recipes.HandleDelete)
			r.Put("/type", recipes.HandleSetType)
			r.Post("/edit-mode", recipes.HandleToggleEditMode)
			r.Put("/target", recipes.HandleSetTarget)
			r.Post("/ingredients", recipes.HandleAddIngredient)
			r.Post("/quantity", recipes.HandleChangeQuantity)
			r.Post("/tags", recipes.HandleAddTag)
			r.Put("/tags", recipes.HandleReformatTags)
			r.Patch("/tags/{tag}", recipes.HandleEditTag)
			r.Delete("/tags/{tag}", recipes.HandleRemoveTag)
		})
	})
	r.Route("/files", func(r chi.Router) {
		r.Get("/", files.HandleList)
		r.Post("/", files.HandleCreate)
		r.Post("/save", files.HandleSave)
		r.Post("/reload", files.HandleReload)
		r.Post("/clear", files.HandleClear)
		r.Post("/close", files.HandleClose)
	})
	r.Route("/craft", func(r chi.Router) {
		r.Post("/", craft.HandleOpen)
		r.Get("/{sessionId}", craft.HandleGet)
		r.Post("/{sessionId}/craft", craft.HandleCraft)
		r.Delete("/{sessionId}", craft.HandleClose)
	})
	r.Get("/actors/{actorId}/items/{itemId}/tags", itemTags.HandleList)
	r.Put("/actors/{actorId}/items/{itemId}/tags", itemTags.HandleReformat)
	r.Get("/settings", settingsHandler.HandleGet)
	r.Put("/settings/allow-player-edit", settingsHandler.HandleSetAllowPlayerEdit)
	r.Put("/settings/quantity-paths", settingsHandler.HandleSetQuantityPaths)

	return &testAPI{router: r, catalog: cat, settings: st, resolver: resolver, inv: inv}
}

func (a *testAPI) do(t *testing.T, user domain.User, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if user.ID != "" {
		req.Header.Set(middleware.HeaderUserID, user.ID)
		req.Header.Set(middleware.HeaderUserRole, string(user.Role))
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testAPI) createRecipe(t *testing.T) string {
	t.Helper()
	rec := a.do(t, gmUser, http.MethodPost, "/recipes", nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var r domain.Recipe
	decodeBody(t, rec, &r)
	return r.ID
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func mustDoc(t *testing.T, raw string) domain.Item {
	t.Helper()
	doc, err := domain.NewItem([]byte(raw))
	require.NoError(t, err)
	return doc
}
