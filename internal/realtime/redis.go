package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisBroker fans events out through Redis pub/sub so every API replica
// sees changes made by any other.
type RedisBroker struct {
	rdb *redis.Client
	log *zap.Logger
}

// NewRedisBroker wraps an existing client. Close closes the client.
func NewRedisBroker(rdb *redis.Client, log *zap.Logger) *RedisBroker {
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisBroker{rdb: rdb, log: log}
}

var (
	_ Broker = (*RedisBroker)(nil)
	_ Pinger = (*RedisBroker)(nil)
)

// Publish sends ev as JSON on topic.
func (b *RedisBroker) Publish(ctx context.Context, topic string, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := b.rdb.Publish(ctx, topic, payload).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// Subscribe waits for Redis to confirm the subscription before returning.
func (b *RedisBroker) Subscribe(ctx context.Context, topic string, h Handler) (Subscription, error) {
	ps := b.rdb.Subscribe(ctx, topic)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("subscribe %s: %w", topic, err)
	}

	s := &redisSubscription{topic: topic, ps: ps, done: make(chan struct{})}
	go s.run(ctx, ps.Channel(), h, b.log)
	return s, nil
}

// Ping checks the Redis connection.
func (b *RedisBroker) Ping(ctx context.Context) error {
	return b.rdb.Ping(ctx).Err()
}

// Close closes the underlying client and with it every subscription.
func (b *RedisBroker) Close() error {
	return b.rdb.Close()
}

type redisSubscription struct {
	topic string
	ps    *redis.PubSub
	once  sync.Once
	err   error
	done  chan struct{}
}

func (s *redisSubscription) Topic() string { return s.topic }

func (s *redisSubscription) Close() error {
	s.once.Do(func() {
		close(s.done)
		s.err = s.ps.Close()
	})
	return s.err
}

func (s *redisSubscription) run(ctx context.Context, ch <-chan *redis.Message, h Handler, log *zap.Logger) {
	for {
		select {
		case <-ctx.Done():
			_ = s.Close()
			return
		case <-s.done:
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Warn("dropping malformed realtime payload", zap.String("topic", s.topic), zap.Error(err))
				continue
			}
			h(ev)
		}
	}
}
