package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftbench/internal/catalog"
	"github.com/osse101/craftbench/internal/concurrency"
	"github.com/osse101/craftbench/internal/coordinator"
	"github.com/osse101/craftbench/internal/crafting"
	"github.com/osse101/craftbench/internal/event"
	"github.com/osse101/craftbench/internal/handler"
	"github.com/osse101/craftbench/internal/inventory"
	"github.com/osse101/craftbench/internal/middleware"
	"github.com/osse101/craftbench/internal/quantity"
	"github.com/osse101/craftbench/internal/recipe"
	"github.com/osse101/craftbench/internal/settings"
	"github.com/osse101/craftbench/internal/storage"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type performWriter coordinator.PerformFunc

func (f performWriter) RequestWrite(ctx context.Context, req coordinator.SaveRequest) (string, error) {
	return f(ctx, req)
}

func newTestServer(t *testing.T, apiKey string, ready map[string]handler.Pinger) *Server {
	t.Helper()
	disk, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)
	persister := storage.NewPersister(disk, storage.NewCodec(nil))
	resolver := quantity.NewResolver(quantity.PathTable{})
	st := settings.New(settings.NewMemory())
	bus := event.NewMemoryBus()
	inv := inventory.NewMemory()

	cat := catalog.NewService(recipe.NewStore(resolver), resolver, st, persister,
		performWriter(catalog.NewPerformer(persister)), bus, catalog.Config{})
	_, err = cat.Initialize(context.Background())
	require.NoError(t, err)

	return NewServer(Options{Port: 0, APIKey: apiKey}, Deps{
		Catalog:  cat,
		Crafting: crafting.NewService(cat.Recipes(), inv, resolver, concurrency.NewLockManager(), bus, time.Minute),
		Settings: st,
		Resolver: resolver,
		ItemTags: inventory.NewItemTagEditor(inv),
		Ready:    ready,
	})
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_Routes(t *testing.T) {
	s := newTestServer(t, "", nil)

	assert.Equal(t, http.StatusOK, serve(s, httptest.NewRequest(http.MethodGet, "/healthz", nil)).Code)
	assert.Equal(t, http.StatusOK, serve(s, httptest.NewRequest(http.MethodGet, "/version", nil)).Code)
	assert.Equal(t, http.StatusOK, serve(s, httptest.NewRequest(http.MethodGet, "/metrics", nil)).Code)

	t.Run("api requires identity", func(t *testing.T) {
		rec := serve(s, httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("game master creates and lists", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes", nil)
		req.Header.Set(middleware.HeaderUserID, "gm")
		req.Header.Set(middleware.HeaderUserRole, "gm")
		require.Equal(t, http.StatusCreated, serve(s, req).Code)

		req = httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil)
		req.Header.Set(middleware.HeaderUserID, "p1")
		rec := serve(s, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"canEdit":false`)
	})

	t.Run("security headers applied", func(t *testing.T) {
		rec := serve(s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	})
}

func TestServer_APIKey(t *testing.T) {
	s := newTestServer(t, "secret", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
	req.Header.Set(middleware.HeaderUserID, "p1")
	assert.Equal(t, http.StatusUnauthorized, serve(s, req).Code)

	req.Header.Set(HeaderAPIKey, "secret")
	assert.Equal(t, http.StatusOK, serve(s, req).Code)

	assert.Equal(t, http.StatusOK, serve(s, httptest.NewRequest(http.MethodGet, "/healthz", nil)).Code)
}

func TestServer_Readyz(t *testing.T) {
	healthy := newTestServer(t, "", map[string]handler.Pinger{
		"database": pingFunc(func(context.Context) error { return nil }),
	})
	assert.Equal(t, http.StatusOK, serve(healthy, httptest.NewRequest(http.MethodGet, "/readyz", nil)).Code)

	failing := newTestServer(t, "", map[string]handler.Pinger{
		"redis": pingFunc(func(context.Context) error { return errors.New("down") }),
	})
	rec := serve(failing, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "redis")
}
