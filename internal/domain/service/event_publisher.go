package service

import (
	"context"
	"time"
)

// Run task identifiers carried on run events and worker trigger messages.
const (
	TaskGenerate = "generate"
	TaskDispatch = "dispatch"
)

// RunEvent summarizes one completed generation or dispatch run.
type RunEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	Task       string    `json:"task"`                // generate or dispatch
	Period     string    `json:"period,omitempty"`    // Set for generation runs
	Surveys    int       `json:"surveys,omitempty"`   // Survey instances created (generation)
	Scheduled  int       `json:"scheduled,omitempty"` // Notifications scheduled (generation)
	Sent       int       `json:"sent"`                // Notifications sent (dispatch)
	Failed     int       `json:"failed"`              // Delivery failures (dispatch)
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing run summaries to a
// message queue for downstream consumers.
type EventPublisher interface {
	// PublishRunEvent publishes a run summary event.
	PublishRunEvent(ctx context.Context, event *RunEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
