package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/craftbench/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"`
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from map metadata.
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Event types
const (
	RecipeSaved      Type = domain.EventTypeRecipeSaved
	FileSelected     Type = domain.EventTypeFileSelected
	ItemCrafted      Type = domain.EventTypeItemCrafted
	SearchNoResults  Type = domain.EventTypeSearchNoResults
	NotificationSent Type = domain.EventTypeNotificationSent
)

// RecipeSavedPayloadV1 is the payload for RecipeSaved
type RecipeSavedPayloadV1 struct {
	UserID      string `json:"user_id"`
	Folder      string `json:"folder"`
	File        string `json:"file"`
	Path        string `json:"path"`
	RecipeCount int    `json:"recipe_count"`
	Timestamp   int64  `json:"timestamp"`
}

// FileSelectedPayloadV1 is the payload for FileSelected
type FileSelectedPayloadV1 struct {
	UserID   string `json:"user_id"`
	File     string `json:"file"`
	Previous string `json:"previous"`
}

// ProducedItem is one entry of a craft's output
type ProducedItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ItemCraftedPayloadV1 is the payload for ItemCrafted
type ItemCraftedPayloadV1 struct {
	UserID     string         `json:"user_id"`
	ActorID    string         `json:"actor_id"`
	RecipeID   string         `json:"recipe_id"`
	RecipeName string         `json:"recipe_name"`
	RecipeType string         `json:"recipe_type"`
	Forced     bool           `json:"forced"`
	Consumed   int            `json:"consumed"`
	Produced   []ProducedItem `json:"produced"`
	Timestamp  int64          `json:"timestamp"`
}

// SearchNoResultsPayloadV1 is the payload for SearchNoResults
type SearchNoResultsPayloadV1 struct {
	UserID string `json:"user_id"`
	Query  string `json:"query"`
}

// NotificationSentPayloadV1 is the payload for NotificationSent
type NotificationSentPayloadV1 struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Path      string `json:"path,omitempty"`
}

// NewRecipeSavedEvent creates a RecipeSaved event
func NewRecipeSavedEvent(userID, folder, file, path string, count int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RecipeSaved,
		Payload: RecipeSavedPayloadV1{
			UserID:      userID,
			Folder:      folder,
			File:        file,
			Path:        path,
			RecipeCount: count,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: map[string]interface{}{MetadataKeyFile: file},
	}
}

// NewFileSelectedEvent creates a FileSelected event
func NewFileSelectedEvent(userID, file, previous string) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     FileSelected,
		Payload:  FileSelectedPayloadV1{UserID: userID, File: file, Previous: previous},
		Metadata: map[string]interface{}{MetadataKeyFile: file},
	}
}

// NewItemCraftedEvent creates an ItemCrafted event
func NewItemCraftedEvent(p ItemCraftedPayloadV1) Event {
	if p.Timestamp == 0 {
		p.Timestamp = time.Now().Unix()
	}
	return Event{
		Version:  EventSchemaVersion,
		Type:     ItemCrafted,
		Payload:  p,
		Metadata: map[string]interface{}{
			MetadataKeyRecipeType: p.RecipeType,
			MetadataKeyForced:     p.Forced,
		},
	}
}

// NewSearchNoResultsEvent creates a SearchNoResults event
func NewSearchNoResultsEvent(userID, query string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SearchNoResults,
		Payload: SearchNoResultsPayloadV1{UserID: userID, Query: query},
	}
}

// NewNotificationSentEvent creates a NotificationSent event
func NewNotificationSentEvent(p NotificationSentPayloadV1) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     NotificationSent,
		Payload:  p,
		Metadata: map[string]interface{}{MetadataKeyLevel: p.Level},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every handler subscribed to the event type synchronously.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
