package service

import (
	"context"
)

// PushMessage is the payload handed to the push transport for one delivery.
type PushMessage struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

// PushSender defines the interface for the push notification transport.
type PushSender interface {
	// Send delivers one push message with high priority and returns the
	// transport's message ID. A non-nil error carries the failure reason.
	Send(ctx context.Context, msg *PushMessage) (messageID string, err error)
}
