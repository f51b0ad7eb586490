package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/craftbench/internal/server"
)

// ShutdownComponents holds everything that needs an orderly stop. Nil
// fields are skipped.
type ShutdownComponents struct {
	Server       *server.Server
	Coordination *Coordination
	Events       *EventSystem
	Repositories *Repositories
}

// GracefulShutdown stops the components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Coordinator (leave the channel, close the transport)
// 3. Event publisher (flush pending retries, close the dead-letter file)
// 4. Database pool
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Coordination != nil {
		closeComponent(ComponentTransport, func() error { return c.Coordination.Stop(ctx) })
	}

	if c.Events != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.Events.Publisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
		if c.Events.DeadLetter != nil {
			closeComponent(ComponentDeadLetter, c.Events.DeadLetter.Close)
		}
	}

	if c.Repositories != nil {
		c.Repositories.Close()
	}

	slog.Info(LogMsgServerStopped)
}

func closeComponent(name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		slog.Error(name+LogMsgCloseFailed, "error", err)
	}
}
