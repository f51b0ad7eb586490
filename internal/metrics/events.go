package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/craftbench/internal/event"
	"github.com/osse101/craftbench/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.RecipeSaved,
		event.FileSelected,
		event.ItemCrafted,
		event.SearchNoResults,
		event.NotificationSent,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	var err error
	switch evt.Type {
	case event.RecipeSaved:
		err = record(evt, func(p event.RecipeSavedPayloadV1) {
			RecipesSaved.WithLabelValues(p.File).Inc()
			RecipeFileSize.WithLabelValues(p.File).Set(float64(p.RecipeCount))
		})

	case event.FileSelected:
		FilesSelected.Inc()

	case event.ItemCrafted:
		err = record(evt, func(p event.ItemCraftedPayloadV1) {
			CraftsCompleted.WithLabelValues(p.RecipeType, strconv.FormatBool(p.Forced)).Inc()
			ItemsConsumed.Add(float64(p.Consumed))
			for _, item := range p.Produced {
				ItemsProduced.WithLabelValues(item.Name).Add(float64(item.Quantity))
			}
		})

	case event.SearchNoResults:
		SearchesNoResults.Inc()

	case event.NotificationSent:
		err = record(evt, func(p event.NotificationSentPayloadV1) {
			NotificationsSent.WithLabelValues(p.Level).Inc()
		})

	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}
	if err != nil {
		log.Warn(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
		return nil
	}

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()
	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func record[T any](evt event.Event, fn func(T)) error {
	p, err := event.DecodePayload[T](evt)
	if err != nil {
		return err
	}
	fn(p)
	return nil
}

// CountHandlerError records a failed event delivery.
func CountHandlerError(evt event.Event) {
	EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
}
