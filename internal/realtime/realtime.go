// Package realtime carries row-change notifications between the services
// that mutate data and the listeners watching a record.
//
// A topic is a channel name keyed by record id. Publishing never blocks on
// slow listeners beyond the broker's own delivery, and there is no replay:
// a subscriber only sees events published after Subscribe returns.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// EventType is the kind of row change.
type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
)

// Tables whose changes are published.
const (
	TableInterviews     = "interviews"
	TableMessages       = "interview_messages"
	TableCodingSessions = "coding_sessions"
)

// InterviewsTopic carries every change to the interviews table.
const InterviewsTopic = "interviews"

// MessagesTopic carries chat changes of one interview.
func MessagesTopic(interviewID string) string {
	return "messages_" + interviewID
}

// CodingSessionTopic carries editor changes of one interview.
func CodingSessionTopic(interviewID string) string {
	return "coding_session_" + interviewID
}

// Event is a single row change. New is empty for deletes, Old for inserts.
type Event struct {
	Type            EventType       `json:"eventType"`
	Table           string          `json:"table"`
	New             json.RawMessage `json:"new,omitempty"`
	Old             json.RawMessage `json:"old,omitempty"`
	CommitTimestamp time.Time       `json:"commit_timestamp"`
}

// NewEvent marshals the row images into an Event. Nil rows are omitted.
func NewEvent(t EventType, table string, newRow, oldRow any) (Event, error) {
	ev := Event{Type: t, Table: table, CommitTimestamp: time.Now().UTC()}
	if newRow != nil {
		b, err := json.Marshal(newRow)
		if err != nil {
			return Event{}, fmt.Errorf("marshal new row: %w", err)
		}
		ev.New = b
	}
	if oldRow != nil {
		b, err := json.Marshal(oldRow)
		if err != nil {
			return Event{}, fmt.Errorf("marshal old row: %w", err)
		}
		ev.Old = b
	}
	return ev, nil
}

// Handler receives events of one subscription. Calls for a subscription are
// sequential; handlers must not block for long.
type Handler func(Event)

// Subscription is an open channel. Close stops delivery and is idempotent.
type Subscription interface {
	Topic() string
	Close() error
}

// Broker publishes events and opens subscriptions.
type Broker interface {
	Publish(ctx context.Context, topic string, ev Event) error
	// Subscribe opens topic and returns once the subscription is live.
	// Cancelling ctx closes the subscription.
	Subscribe(ctx context.Context, topic string, h Handler) (Subscription, error)
	Close() error
}

// Pinger is implemented by brokers backed by a remote service.
type Pinger interface {
	Ping(ctx context.Context) error
}
