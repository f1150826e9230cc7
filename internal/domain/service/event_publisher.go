package service

import (
	"context"
	"time"
)

// TimerEventType names a change made to a timer.
type TimerEventType string

const (
	TimerEventCreated     TimerEventType = "timer.created"
	TimerEventUpdated     TimerEventType = "timer.updated"
	TimerEventDeleted     TimerEventType = "timer.deleted"
	TimerEventActivated   TimerEventType = "timer.activated"
	TimerEventDeactivated TimerEventType = "timer.deactivated"
)

// TimerEvent is published after a timer has been changed, so storefront caches
// can refresh before their next poll
type TimerEvent struct {
	RequestID  string         `json:"request_id,omitempty"` // For distributed tracing
	Type       TimerEventType `json:"type"`
	TimerID    string         `json:"timer_id"`
	ShopID     string         `json:"shop_id"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishTimerEvent publishes a timer change event
	PublishTimerEvent(ctx context.Context, event *TimerEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
