package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/craftbench/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries int
	RetryDelay time.Duration
	// OnDeadLetter is called once for every event that exhausted its retries.
	OnDeadLetter func(Event)
}

// ResilientPublisher wraps a Bus. A failed publish is retried in the
// background with exponential backoff and dead-lettered when retries run out.
type ResilientPublisher struct {
	inner      Bus
	config     ResilientConfig
	deadLetter *DeadLetterWriter
	wg         sync.WaitGroup
	stop       chan struct{}
	stopOnce   sync.Once
}

// NewResilientPublisher creates a publisher. deadLetter may be nil, in which
// case exhausted events are only logged.
func NewResilientPublisher(inner Bus, config ResilientConfig, deadLetter *DeadLetterWriter) *ResilientPublisher {
	if config.MaxRetries <= 0 {
		config.MaxRetries = RetryMaxAttempts
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = RetryBaseDelay
	}
	return &ResilientPublisher{
		inner:      inner,
		config:     config,
		deadLetter: deadLetter,
		stop:       make(chan struct{}),
	}
}

// Publish delivers the event. A failure is retried asynchronously and
// Publish itself returns nil.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"retries", p.config.MaxRetries)

	p.wg.Add(1)
	go p.retryLoop(event, err)
	return nil
}

func (p *ResilientPublisher) retryLoop(event Event, lastErr error) {
	defer p.wg.Done()
	ctx := context.Background()
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= p.config.MaxRetries; attempt++ {
		select {
		case <-time.After(CalculateRetryDelay(p.config.RetryDelay, attempt)):
		case <-p.stop:
			p.writeDeadLetter(event, attempt-1, lastErr)
			return
		}

		if lastErr = p.inner.Publish(ctx, event); lastErr == nil {
			log.Info(LogMsgEventRetrySucceeded, "event_type", event.Type, "attempt", attempt)
			return
		}
		log.Warn(LogMsgEventRetryFailed, "event_type", event.Type, "attempt", attempt, "error", lastErr)
	}

	p.writeDeadLetter(event, p.config.MaxRetries, lastErr)
}

func (p *ResilientPublisher) writeDeadLetter(event Event, attempts int, lastErr error) {
	log := logger.FromContext(context.Background())
	if p.config.OnDeadLetter != nil {
		p.config.OnDeadLetter(event)
	}
	if p.deadLetter == nil {
		log.Error(LogMsgDeadLetterFailed, "event_type", event.Type, "error", lastErr)
		return
	}
	if err := p.deadLetter.Write(event, attempts, lastErr); err != nil {
		log.Error(LogMsgDeadLetterFailed, "event_type", event.Type, "error", err)
		return
	}
	log.Warn(LogMsgEventDeadLettered, "event_type", event.Type, "attempts", attempts)
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown stops pending retries, dead-lettering their events, and waits for
// them or ctx.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.stopOnce.Do(func() { close(p.stop) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
