// Package coordinator elects one responsible session per world and funnels
// recipe file writes through it.
package coordinator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/event"
	"github.com/osse101/craftbench/internal/logger"
)

// PerformFunc writes a save request and returns the written path.
type PerformFunc func(ctx context.Context, req SaveRequest) (string, error)

// NotifyFunc receives notifications addressed to this session.
type NotifyFunc func(ctx context.Context, n Notification)

// Config configures a Coordinator.
type Config struct {
	Self         Peer
	WorldID      string
	Transport    Transport
	Roster       *Roster
	Perform      PerformFunc
	OnNotify     NotifyFunc
	WriteTimeout time.Duration
	Bus          event.Bus
}

// Coordinator runs the responsible-writer protocol for one session.
type Coordinator struct {
	self      Peer
	topic     string
	transport Transport
	roster    *Roster
	perform   PerformFunc
	onNotify  NotifyFunc
	timeout   time.Duration
	bus       event.Bus

	mu      sync.Mutex
	pending map[string]chan Notification
	done    chan struct{}
}

func New(cfg Config) *Coordinator {
	if cfg.Roster == nil {
		cfg.Roster = NewRoster()
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Self.JoinedAt.IsZero() {
		cfg.Self.JoinedAt = time.Now()
	}
	return &Coordinator{
		self:      cfg.Self,
		topic:     TopicPrefix + cfg.WorldID,
		transport: cfg.Transport,
		roster:    cfg.Roster,
		perform:   cfg.Perform,
		onNotify:  cfg.OnNotify,
		timeout:   cfg.WriteTimeout,
		bus:       cfg.Bus,
		pending:   map[string]chan Notification{},
		done:      make(chan struct{}),
	}
}

func (c *Coordinator) Self() Peer      { return c.self }
func (c *Coordinator) Roster() *Roster { return c.roster }

// IsResponsible reports whether this session is the elected writer.
func (c *Coordinator) IsResponsible() bool {
	return c.roster.IsLeader(c.self.ID)
}

// Start subscribes to the world channel and announces this session. Messages
// are handled in the background until ctx is done.
func (c *Coordinator) Start(ctx context.Context) error {
	log := logger.FromContext(ctx)

	msgs, cancel, err := c.transport.Subscribe(ctx, c.topic)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", c.topic, err)
	}
	c.roster.Join(c.self)

	go c.loop(ctx, msgs, cancel)

	self := c.self
	c.publish(ctx, Message{Action: ActionHello, From: self.ID, Peer: &self})
	log.Info(LogMsgCoordinatorStarted, "session_id", self.ID, "topic", c.topic, "privileged", self.Privileged)
	return nil
}

// Run starts the coordinator and blocks until ctx is done and the loop has exited.
func (c *Coordinator) Run(ctx context.Context) error {
	if err := c.Start(ctx); err != nil {
		return err
	}
	<-c.done
	return nil
}

// Done is closed once the message loop has exited.
func (c *Coordinator) Done() <-chan struct{} {
	return c.done
}

func (c *Coordinator) loop(ctx context.Context, msgs <-chan []byte, cancel func()) {
	defer close(c.done)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			byeCtx, stop := context.WithTimeout(context.WithoutCancel(ctx), goodbyeTimeout)
			c.publish(byeCtx, Message{Action: ActionGoodbye, From: c.self.ID})
			stop()
			logger.FromContext(ctx).Info(LogMsgCoordinatorStopped, "session_id", c.self.ID)
			return
		case raw, ok := <-msgs:
			if !ok {
				return
			}
			c.handle(ctx, raw)
		}
	}
}

func (c *Coordinator) handle(ctx context.Context, raw []byte) {
	log := logger.FromContext(ctx)

	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		log.Warn(LogMsgBadMessage, "error", err)
		return
	}
	if msg.From == c.self.ID {
		return
	}

	switch msg.Action {
	case ActionHello:
		if msg.Peer == nil || msg.Peer.ID != msg.From {
			log.Warn(LogMsgBadMessage, "action", msg.Action, "from", msg.From)
			return
		}
		c.roster.Join(*msg.Peer)
		log.Debug(LogMsgPeerJoined, "peer_id", msg.From, "privileged", msg.Peer.Privileged)
		if !msg.Reply {
			self := c.selfPeer()
			c.publish(ctx, Message{Action: ActionHello, From: self.ID, ToSession: msg.From, Reply: true, Peer: &self})
		}
	case ActionGoodbye:
		c.roster.Leave(msg.From)
		log.Debug(LogMsgPeerLeft, "peer_id", msg.From)
	case ActionSaveJSON:
		if msg.Save == nil || !c.IsResponsible() {
			return
		}
		c.performFor(ctx, msg.From, *msg.Save)
	case ActionNotifyClient:
		if msg.Notification == nil || !c.addressedToMe(msg) {
			return
		}
		c.deliver(ctx, *msg.Notification)
	default:
		log.Warn(LogMsgBadMessage, "action", msg.Action, "from", msg.From)
	}
}

func (c *Coordinator) addressedToMe(msg Message) bool {
	if msg.ToSession != "" {
		return msg.ToSession == c.self.ID
	}
	return msg.ToUser != "" && msg.ToUser == c.self.UserID
}

// selfPeer returns this session as currently recorded in the roster.
func (c *Coordinator) selfPeer() Peer {
	for _, p := range c.roster.Peers() {
		if p.ID == c.self.ID {
			return p
		}
	}
	return c.self
}

// performFor writes a follower's request and replies with the outcome.
func (c *Coordinator) performFor(ctx context.Context, requester string, req SaveRequest) {
	n := c.performWrite(ctx, req)
	c.publish(ctx, Message{
		Action:       ActionNotifyClient,
		From:         c.self.ID,
		ToSession:    requester,
		RequestID:    req.ID,
		Notification: &n,
	})
}

func (c *Coordinator) performWrite(ctx context.Context, req SaveRequest) Notification {
	log := logger.FromContext(ctx)

	path, err := c.perform(ctx, req)
	if err != nil {
		log.Error(LogMsgSaveFailed, "request_id", req.ID, "user_id", req.UserID, "file", req.File, "error", err)
		return Notification{Level: LevelError, Message: err.Error(), RequestID: req.ID}
	}
	log.Info(LogMsgSavePerformed, "request_id", req.ID, "user_id", req.UserID, "path", path)
	return Notification{
		Level:     LevelInfo,
		Message:   fmt.Sprintf("Saved recipes to %q", path),
		Path:      path,
		RequestID: req.ID,
	}
}

// SetActive marks this session active or idle and tells the other sessions.
func (c *Coordinator) SetActive(ctx context.Context, active bool) {
	c.roster.SetActive(c.self.ID, active)
	self := c.selfPeer()
	c.publish(ctx, Message{Action: ActionHello, From: self.ID, Reply: true, Peer: &self})
}

// RequestWrite persists req through the responsible session. The responsible
// session writes directly; any other session forwards the request and waits
// for the correlated reply until ctx or the write timeout ends.
func (c *Coordinator) RequestWrite(ctx context.Context, req SaveRequest) (string, error) {
	log := logger.FromContext(ctx)

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.UserID == "" {
		req.UserID = c.self.UserID
	}

	if c.IsResponsible() {
		n := c.performWrite(ctx, req)
		c.deliver(ctx, n)
		return notificationResult(n)
	}

	leader, ok := c.roster.Leader()
	if !ok {
		return "", fmt.Errorf("%w: no active privileged session", domain.ErrNotResponsible)
	}

	reply := make(chan Notification, 1)
	c.mu.Lock()
	c.pending[req.ID] = reply
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		delete(c.pending, req.ID)
		c.mu.Unlock()
	}()

	msg := Message{Action: ActionSaveJSON, From: c.self.ID, ToSession: leader.ID, RequestID: req.ID, Save: &req}
	if err := c.send(ctx, msg); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPersistenceFailure, err)
	}
	log.Info(LogMsgSaveForwarded, "request_id", req.ID, "leader", leader.ID)

	waitCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	select {
	case n := <-reply:
		return notificationResult(n)
	case <-waitCtx.Done():
		if errors.Is(ctx.Err(), context.Canceled) {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: no reply from %s for request %s", domain.ErrWriteTimeout, leader.ID, req.ID)
	}
}

func notificationResult(n Notification) (string, error) {
	if n.Level == LevelError {
		return "", fmt.Errorf("%w: %s", domain.ErrPersistenceFailure, n.Message)
	}
	return n.Path, nil
}

// Notify sends a notification to every session of userID.
func (c *Coordinator) Notify(ctx context.Context, userID string, n Notification) error {
	if userID == c.self.UserID {
		c.deliver(ctx, n)
	}
	return c.send(ctx, Message{Action: ActionNotifyClient, From: c.self.ID, ToUser: userID, Notification: &n})
}

// deliver hands a notification to this session's listener and any waiting request.
func (c *Coordinator) deliver(ctx context.Context, n Notification) {
	if n.RequestID != "" {
		c.mu.Lock()
		ch, ok := c.pending[n.RequestID]
		c.mu.Unlock()
		if ok {
			select {
			case ch <- n:
			default:
			}
		}
	}
	if c.bus != nil {
		evt := event.NewNotificationSentEvent(event.NotificationSentPayloadV1{
			SessionID: c.self.ID,
			UserID:    c.self.UserID,
			Level:     n.Level,
			Message:   n.Message,
			Path:      n.Path,
		})
		if err := c.bus.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn("Failed to publish notification event", "error", err)
		}
	}
	if c.onNotify != nil {
		c.onNotify(ctx, n)
	}
}

func (c *Coordinator) send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return c.transport.Publish(ctx, c.topic, payload)
}

// publish sends and logs failures.
func (c *Coordinator) publish(ctx context.Context, msg Message) {
	if err := c.send(ctx, msg); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "action", msg.Action, "error", err)
	}
}
