package coordinator

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Transport is a broadcast channel of raw payloads.
type Transport interface {
	Publish(ctx context.Context, topic string, payload []byte) error
	// Subscribe returns the payload stream and a cancel function that closes it.
	Subscribe(ctx context.Context, topic string) (<-chan []byte, func(), error)
}

// LocalTransport fans payloads out to in-process subscribers.
type LocalTransport struct {
	mu          sync.RWMutex
	subscribers map[string][]chan []byte
	bufSize     int
}

func NewLocalTransport(bufSize int) *LocalTransport {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	return &LocalTransport{
		subscribers: make(map[string][]chan []byte),
		bufSize:     bufSize,
	}
}

// Publish delivers to every subscriber, dropping for any whose buffer is full.
func (t *LocalTransport) Publish(_ context.Context, topic string, payload []byte) error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, ch := range t.subscribers[topic] {
		select {
		case ch <- payload:
		default:
		}
	}
	return nil
}

func (t *LocalTransport) Subscribe(_ context.Context, topic string) (<-chan []byte, func(), error) {
	ch := make(chan []byte, t.bufSize)

	t.mu.Lock()
	t.subscribers[topic] = append(t.subscribers[topic], ch)
	t.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			list := t.subscribers[topic]
			for i, sub := range list {
				if sub == ch {
					t.subscribers[topic] = append(list[:i], list[i+1:]...)
					break
				}
			}
			close(ch)
		})
	}
	return ch, cancel, nil
}

// RedisTransport publishes over Redis pub/sub so sessions in different
// processes share one channel.
type RedisTransport struct {
	client *redis.Client
}

// NewRedisTransport connects to addr and checks the connection.
func NewRedisTransport(ctx context.Context, addr, password string, db int) (*RedisTransport, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisTransport{client: client}, nil
}

func (r *RedisTransport) Publish(ctx context.Context, topic string, payload []byte) error {
	return r.client.Publish(ctx, topic, payload).Err()
}

func (r *RedisTransport) Subscribe(ctx context.Context, topic string) (<-chan []byte, func(), error) {
	ps := r.client.Subscribe(ctx, topic)
	// Wait for the subscription to be confirmed so no early publish is missed.
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, nil, err
	}
	ch := make(chan []byte, DefaultBufferSize)

	go func() {
		defer close(ch)
		for msg := range ps.Channel() {
			ch <- []byte(msg.Payload)
		}
	}()

	cancel := func() {
		_ = ps.Close()
	}
	return ch, cancel, nil
}

// Ping checks the Redis connection.
func (r *RedisTransport) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisTransport) Close() error {
	return r.client.Close()
}
