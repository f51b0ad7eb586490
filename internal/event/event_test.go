package event

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got Event

	bus.Subscribe(RecipeSaved, func(ctx context.Context, e Event) error {
		got = e
		return nil
	})

	evt := NewRecipeSavedEvent("u1", "/Crafting_Data", "recipes", "/Crafting_Data/recipes.json", 3)
	require.NoError(t, bus.Publish(context.Background(), evt))

	assert.Equal(t, RecipeSaved, got.Type)
	payload, err := DecodePayload[RecipeSavedPayloadV1](got)
	require.NoError(t, err)
	assert.Equal(t, 3, payload.RecipeCount)
	assert.Equal(t, "recipes", got.GetMetadataValue(MetadataKeyFile))
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), NewSearchNoResultsEvent("u", "q")))
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	calls := 0
	bus.Subscribe(ItemCrafted, func(ctx context.Context, e Event) error {
		calls++
		return errors.New("handler error")
	})
	bus.Subscribe(ItemCrafted, func(ctx context.Context, e Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), NewItemCraftedEvent(ItemCraftedPayloadV1{RecipeID: "r"}))
	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	evt := Event{Type: SearchNoResults, Payload: map[string]interface{}{"user_id": "u1", "query": "sword"}}
	p, err := DecodePayload[SearchNoResultsPayloadV1](evt)
	require.NoError(t, err)
	assert.Equal(t, "sword", p.Query)
}

func TestDecodePayload_RawMessage(t *testing.T) {
	evt := Event{Type: RecipeSaved, Payload: json.RawMessage(`{"file":"recipes","recipe_count":2}`)}
	p, err := DecodePayload[RecipeSavedPayloadV1](evt)
	require.NoError(t, err)
	assert.Equal(t, "recipes", p.File)
	assert.Equal(t, 2, p.RecipeCount)
}

func TestDecodePayload_Mismatch(t *testing.T) {
	evt := Event{Type: ItemCrafted, Payload: json.RawMessage(`{"consumed":"many"}`)}
	_, err := DecodePayload[ItemCraftedPayloadV1](evt)
	assert.ErrorContains(t, err, string(ItemCrafted))
}

type flakyBus struct {
	*MemoryBus
	failures atomic.Int32
}

func (b *flakyBus) Publish(ctx context.Context, e Event) error {
	if b.failures.Add(-1) >= 0 {
		return errors.New("unavailable")
	}
	return b.MemoryBus.Publish(ctx, e)
}

func TestResilientPublisher_RetriesUntilSuccess(t *testing.T) {
	inner := &flakyBus{MemoryBus: NewMemoryBus()}
	inner.failures.Store(2)

	delivered := make(chan struct{}, 1)
	inner.Subscribe(FileSelected, func(ctx context.Context, e Event) error {
		delivered <- struct{}{}
		return nil
	})

	p := NewResilientPublisher(inner, ResilientConfig{MaxRetries: 3, RetryDelay: time.Millisecond}, nil)
	require.NoError(t, p.Publish(context.Background(), NewFileSelectedEvent("u", "b", "a")))

	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("event was not redelivered")
	}
	require.NoError(t, p.Shutdown(context.Background()))
}

func TestResilientPublisher_DeadLetters(t *testing.T) {
	inner := &flakyBus{MemoryBus: NewMemoryBus()}
	inner.failures.Store(100)

	path := filepath.Join(t.TempDir(), "dead.jsonl")
	dl, err := NewDeadLetterWriter(path)
	require.NoError(t, err)
	defer dl.Close()

	var exhausted atomic.Int32
	p := NewResilientPublisher(inner, ResilientConfig{
		MaxRetries:   2,
		RetryDelay:   time.Millisecond,
		OnDeadLetter: func(Event) { exhausted.Add(1) },
	}, dl)
	require.NoError(t, p.Publish(context.Background(), NewSearchNoResultsEvent("u", "dragon")))

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(path)
		return err == nil && strings.Contains(string(data), "dragon")
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), exhausted.Load())

	require.NoError(t, p.Shutdown(context.Background()))
}

func TestCalculateRetryDelay(t *testing.T) {
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(2*time.Second, 1))
	assert.Equal(t, 8*time.Second, CalculateRetryDelay(2*time.Second, 3))
}
