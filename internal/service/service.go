package service

// Package service holds the use cases behind the HTTP API. Every method
// returns an *Error on failure and publishes a change event after each
// successful mutation.

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"interviewhub/internal/realtime"
)

// base carries what every service shares.
type base struct {
	broker realtime.Broker
	log    *zap.Logger
	now    func() time.Time
}

func newBase(broker realtime.Broker, log *zap.Logger) base {
	if log == nil {
		log = zap.NewNop()
	}
	return base{
		broker: broker,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// fail classifies err and logs the ones that are not the caller's fault.
func (b *base) fail(op, fallback string, err error) error {
	out := classify(op, fallback, err)
	var se *Error
	if errors.As(out, &se) {
		switch se.Kind {
		case KindNetwork, KindInternal:
			b.log.Error("operation failed", zap.String("op", op), zap.String("kind", string(se.Kind)), zap.Error(err))
		case KindBackend:
			b.log.Warn("database rejected operation", zap.String("op", op), zap.String("sqlstate", se.Code), zap.Error(err))
		}
	}
	return out
}

// publish sends a change event. Failures are logged only.
func (b *base) publish(ctx context.Context, topic, table string, t realtime.EventType, newRow, oldRow any) {
	if b.broker == nil {
		return
	}
	ev, err := realtime.NewEvent(t, table, newRow, oldRow)
	if err != nil {
		b.log.Warn("build change event", zap.String("topic", topic), zap.Error(err))
		return
	}
	if err := b.broker.Publish(context.WithoutCancel(ctx), topic, ev); err != nil {
		b.log.Warn("publish change event", zap.String("topic", topic), zap.String("event", string(t)), zap.Error(err))
	}
}

func (b *base) subscribe(ctx context.Context, op, topic string, h realtime.Handler) (realtime.Subscription, error) {
	if b.broker == nil {
		return nil, &Error{Kind: KindInternal, Op: op, Message: "realtime updates are not available"}
	}
	sub, err := b.broker.Subscribe(ctx, topic, h)
	if err != nil {
		b.log.Error("open realtime channel", zap.String("topic", topic), zap.Error(err))
		return nil, &Error{Kind: KindInternal, Op: op, Message: "Failed to subscribe to updates", Err: err}
	}
	return sub, nil
}
