package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/osse101/craftbench/internal/config"
	"github.com/osse101/craftbench/internal/coordinator"
	"github.com/osse101/craftbench/internal/event"
	"github.com/osse101/craftbench/internal/logger"
)

// Coordination is the running responsible-writer setup. Redis is nil for the
// local transport.
type Coordination struct {
	Coordinator *coordinator.Coordinator
	Redis       *coordinator.RedisTransport
	cancel      context.CancelFunc
}

// InitializeCoordinator connects the configured transport and starts a
// coordinator for this process's session. perform runs the actual writes
// whenever this session is the responsible one.
func InitializeCoordinator(ctx context.Context, cfg *config.Config, perform coordinator.PerformFunc, bus event.Bus) (*Coordination, error) {
	var (
		transport coordinator.Transport
		redis     *coordinator.RedisTransport
	)

	switch cfg.Transport {
	case config.TransportLocal:
		transport = coordinator.NewLocalTransport(coordinator.DefaultBufferSize)
	case config.TransportRedis:
		rt, err := coordinator.NewRedisTransport(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
		}
		transport, redis = rt, rt
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownTransport, cfg.Transport)
	}
	slog.Info(LogMsgTransportSelected, "transport", cfg.Transport)

	sessionID := cfg.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	c := coordinator.New(coordinator.Config{
		Self: coordinator.Peer{
			ID:         sessionID,
			UserID:     cfg.SessionUserID,
			Privileged: cfg.SessionPrivileged,
			Active:     true,
		},
		WorldID:      cfg.WorldID,
		Transport:    transport,
		Perform:      perform,
		OnNotify:     logNotification,
		WriteTimeout: cfg.WriteTimeout,
		Bus:          bus,
	})

	runCtx, cancel := context.WithCancel(logger.WithSessionID(context.WithoutCancel(ctx), sessionID))
	if err := c.Start(runCtx); err != nil {
		cancel()
		if redis != nil {
			_ = redis.Close()
		}
		return nil, err
	}

	return &Coordination{Coordinator: c, Redis: redis, cancel: cancel}, nil
}

// logNotification surfaces notifications addressed to this session's user.
// The HTTP API has no push channel, so the log is where they land.
func logNotification(ctx context.Context, n coordinator.Notification) {
	log := logger.FromContext(ctx)
	if n.Level == coordinator.LevelError {
		log.Error(LogMsgPlayerNotification, "message", n.Message, "path", n.Path, "request_id", n.RequestID)
		return
	}
	log.Info(LogMsgPlayerNotification, "message", n.Message, "path", n.Path, "request_id", n.RequestID)
}

// Ping checks the Redis connection when one is in use.
func (c *Coordination) Ping(ctx context.Context) error {
	if c.Redis == nil {
		return nil
	}
	return c.Redis.Ping(ctx)
}

// Stop ends the message loop and waits for it to exit or ctx to expire, then
// closes the transport.
func (c *Coordination) Stop(ctx context.Context) error {
	c.cancel()
	select {
	case <-c.Coordinator.Done():
	case <-ctx.Done():
	}
	if c.Redis != nil {
		return c.Redis.Close()
	}
	return nil
}
