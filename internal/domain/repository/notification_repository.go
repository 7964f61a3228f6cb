package repository

import (
	"context"
	"errors"
	"time"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a state transition matches no row.
var ErrNotificationNotFound = errors.New("scheduled notification not found")

// NotificationRepository defines persistence operations for scheduled
// notifications and their audit log.
type NotificationRepository interface {
	// BatchCreateNotifications persists a full generation batch of scheduled notifications.
	BatchCreateNotifications(ctx context.Context, notifications []*entity.ScheduledNotification) error

	// FindDue retrieves up to limit notifications in state pending or retrying
	// with scheduledAt at or before now (UTC), earliest first.
	FindDue(ctx context.Context, now time.Time, limit int) ([]*entity.ScheduledNotification, error)

	// MarkSent transitions a notification to the terminal sent state.
	MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error

	// MarkRetrying records a failed attempt and re-queues the notification
	// for a later tick at nextAttemptAt.
	MarkRetrying(ctx context.Context, id uuid.UUID, nextAttemptAt time.Time, attemptCount int, reason string) error

	// MarkFailed transitions a notification to the terminal failed state.
	MarkFailed(ctx context.Context, id uuid.UUID, attemptCount int, reason string) error

	// BatchCreateLogs persists the audit log entries of one dispatch tick.
	BatchCreateLogs(ctx context.Context, logs []*entity.NotificationLogEntry) error
}
