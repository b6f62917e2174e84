// Package events publishes domain events to a message broker.
package events

import (
	"context"
	"encoding/json"
	"time"

	"finwise/internal/logger"
)

// Routing keys.
const (
	BudgetLimitReached = "budget.limit_reached"
)

// Event is the envelope every published message uses.
type Event struct {
	Type       string         `json:"type"`
	UserID     string         `json:"user_id"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// New stamps an event with the current time.
func New(eventType, userID string, payload map[string]any) Event {
	return Event{Type: eventType, UserID: userID, Payload: payload, OccurredAt: time.Now().UTC()}
}

// ToJSON converts the event to JSON bytes.
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher sends events somewhere other processes can consume them.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// LogPublisher only logs events. It is used when no broker is configured.
type LogPublisher struct{}

// Publish logs the event.
func (LogPublisher) Publish(_ context.Context, event Event) error {
	logger.Get().Infow("domain event", "type", event.Type, "user_id", event.UserID, "payload", event.Payload)
	return nil
}

// Close is a no-op.
func (LogPublisher) Close() error { return nil }
