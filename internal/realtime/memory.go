package realtime

import (
	"context"
	"errors"
	"sync"
)

// ErrBrokerClosed is returned by a closed in-process broker.
var ErrBrokerClosed = errors.New("broker closed")

// MemoryBroker delivers events within one process. Publish runs handlers
// synchronously in subscription order.
type MemoryBroker struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[string]map[uint64]*memorySubscription
	closed bool
}

// NewMemoryBroker creates an empty in-process broker.
func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{subs: make(map[string]map[uint64]*memorySubscription)}
}

var _ Broker = (*MemoryBroker)(nil)

type memorySubscription struct {
	broker  *MemoryBroker
	topic   string
	id      uint64
	handler Handler

	// deliver serializes handler calls for this subscription.
	deliver sync.Mutex
	once    sync.Once
	done    chan struct{}
}

func (s *memorySubscription) Topic() string { return s.topic }

func (s *memorySubscription) Close() error {
	s.once.Do(func() {
		s.broker.remove(s)
		close(s.done)
	})
	return nil
}

// Publish delivers ev to every current subscriber of topic.
func (b *MemoryBroker) Publish(ctx context.Context, topic string, ev Event) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrBrokerClosed
	}
	targets := make([]*memorySubscription, 0, len(b.subs[topic]))
	for _, s := range b.subs[topic] {
		targets = append(targets, s)
	}
	b.mu.RUnlock()

	for _, s := range targets {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.deliver.Lock()
		select {
		case <-s.done:
		default:
			s.handler(ev)
		}
		s.deliver.Unlock()
	}
	return nil
}

// Subscribe registers h on topic.
func (b *MemoryBroker) Subscribe(ctx context.Context, topic string, h Handler) (Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrBrokerClosed
	}

	b.nextID++
	s := &memorySubscription{
		broker:  b,
		topic:   topic,
		id:      b.nextID,
		handler: h,
		done:    make(chan struct{}),
	}
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[uint64]*memorySubscription)
	}
	b.subs[topic][s.id] = s

	if ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				_ = s.Close()
			case <-s.done:
			}
		}()
	}
	return s, nil
}

// Subscribers reports how many subscriptions are open on topic.
func (b *MemoryBroker) Subscribers(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[topic])
}

// Close drops every subscription; later calls fail with ErrBrokerClosed.
func (b *MemoryBroker) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	var all []*memorySubscription
	for _, topicSubs := range b.subs {
		for _, s := range topicSubs {
			all = append(all, s)
		}
	}
	b.mu.Unlock()

	for _, s := range all {
		_ = s.Close()
	}
	return nil
}

func (b *MemoryBroker) remove(s *memorySubscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if topicSubs, ok := b.subs[s.topic]; ok {
		delete(topicSubs, s.id)
		if len(topicSubs) == 0 {
			delete(b.subs, s.topic)
		}
	}
}
