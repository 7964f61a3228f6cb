// Package notification implements the push transport boundary over Firebase
// Cloud Messaging.
package notification

import (
	"context"
	"fmt"

	"pulse/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseSender struct {
	client *messaging.Client
}

// NewFirebaseSender creates a new Firebase push sender instance
func NewFirebaseSender(ctx context.Context, credentialsPath string) (service.PushSender, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseSender{
		client: client,
	}, nil
}

// Send delivers one push message with high priority and returns the FCM
// message ID. A non-nil error carries the transport failure reason.
func (s *firebaseSender) Send(ctx context.Context, msg *service.PushMessage) (string, error) {
	message := &messaging.Message{
		Token: msg.Token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return "", fmt.Errorf("invalid or unregistered token: %w", err)
		}

		return "", fmt.Errorf("failed to send notification: %w", err)
	}

	return messageID, nil
}
