package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftbench/internal/event"
)

func TestEventMetricsCollector_RecordsCrafts(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))

	crafts := CraftsCompleted.WithLabelValues("items", "false")
	planks := ItemsProduced.WithLabelValues("Test Plank")
	beforeCrafts := testutil.ToFloat64(crafts)
	beforePlanks := testutil.ToFloat64(planks)

	err := bus.Publish(context.Background(), event.NewItemCraftedEvent(event.ItemCraftedPayloadV1{
		RecipeType: "items",
		Consumed:   2,
		Produced:   []event.ProducedItem{{Name: "Test Plank", Quantity: 3}},
	}))
	require.NoError(t, err)

	assert.Equal(t, beforeCrafts+1, testutil.ToFloat64(crafts))
	assert.Equal(t, beforePlanks+3, testutil.ToFloat64(planks))
}

func TestEventMetricsCollector_RecordsSaves(t *testing.T) {
	collector := NewEventMetricsCollector()
	saved := RecipesSaved.WithLabelValues("metrics-test")
	before := testutil.ToFloat64(saved)

	err := collector.HandleEvent(context.Background(), event.NewRecipeSavedEvent("u1", "/data", "metrics-test", "/data/metrics-test.json", 4))
	require.NoError(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(saved))
	assert.Equal(t, float64(4), testutil.ToFloat64(RecipeFileSize.WithLabelValues("metrics-test")))
}

func TestEventMetricsCollector_DecodesGenericPayload(t *testing.T) {
	notified := NotificationsSent.WithLabelValues("metrics-warn")
	before := testutil.ToFloat64(notified)

	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.Event{
		Type:    event.NotificationSent,
		Payload: map[string]interface{}{"session_id": "s1", "level": "metrics-warn", "message": "saved"},
	})
	require.NoError(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(notified))
}

func TestEventMetricsCollector_SkipsMalformedPayload(t *testing.T) {
	published := EventsPublished.WithLabelValues(string(event.ItemCrafted))
	before := testutil.ToFloat64(published)

	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.Event{Type: event.ItemCrafted, Payload: 42})
	assert.NoError(t, err)
	assert.Equal(t, before, testutil.ToFloat64(published))
}

func TestEventMetricsCollector_IgnoresUnknownPayload(t *testing.T) {
	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.Event{Type: "custom", Payload: 42})
	assert.NoError(t, err)
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/recipes/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/recipes/{id}", "418")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recipes/abc123", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
