package realtime

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts broker traffic.
type Metrics struct {
	published     *prometheus.CounterVec
	publishErrors *prometheus.CounterVec
	active        prometheus.Gauge
}

// NewMetrics registers the realtime collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		published: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "realtime_events_published_total",
			Help: "Number of change events published, by table and event type.",
		}, []string{"table", "event"}),
		publishErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "realtime_publish_errors_total",
			Help: "Number of change events the broker failed to publish.",
		}, []string{"table"}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "realtime_subscriptions_active",
			Help: "Number of open realtime subscriptions.",
		}),
	}
	reg.MustRegister(m.published, m.publishErrors, m.active)
	return m
}

// Instrument wraps b so that publishes and open subscriptions are counted.
func Instrument(b Broker, m *Metrics) Broker {
	return &instrumented{Broker: b, m: m}
}

type instrumented struct {
	Broker
	m *Metrics
}

func (i *instrumented) Publish(ctx context.Context, topic string, ev Event) error {
	if err := i.Broker.Publish(ctx, topic, ev); err != nil {
		i.m.publishErrors.WithLabelValues(ev.Table).Inc()
		return err
	}
	i.m.published.WithLabelValues(ev.Table, string(ev.Type)).Inc()
	return nil
}

func (i *instrumented) Subscribe(ctx context.Context, topic string, h Handler) (Subscription, error) {
	sub, err := i.Broker.Subscribe(ctx, topic, h)
	if err != nil {
		return nil, err
	}
	i.m.active.Inc()
	return &countedSubscription{Subscription: sub, gauge: i.m.active}, nil
}

// Ping forwards to the wrapped broker when it supports it.
func (i *instrumented) Ping(ctx context.Context) error {
	if p, ok := i.Broker.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

type countedSubscription struct {
	Subscription
	gauge prometheus.Gauge
	once  sync.Once
}

func (c *countedSubscription) Close() error {
	err := c.Subscription.Close()
	c.once.Do(c.gauge.Dec)
	return err
}
