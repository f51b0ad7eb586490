package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/craftbench/internal/event"
	"github.com/osse101/craftbench/internal/metrics"
)

// RegisterEventHandlers subscribes the metrics collector to the bus.
func RegisterEventHandlers(bus event.Bus) error {
	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)
	return nil
}
