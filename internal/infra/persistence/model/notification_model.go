package model

import (
	"time"

	"github.com/google/uuid"
)

// ScheduledNotificationModel is the GORM-specific struct for the
// 'scheduled_notifications' table. ScheduledAt is stored in UTC; the
// composite index serves the due-notification query of the dispatch tick.
type ScheduledNotificationModel struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key"`
	PushToken    string            `gorm:"type:text;not null"`
	Title        string            `gorm:"type:text;not null"`
	Body         string            `gorm:"type:text;not null"`
	Payload      map[string]string `gorm:"type:jsonb;serializer:json;not null"`
	ScheduledAt  time.Time         `gorm:"not null;index:idx_notifications_due,priority:2"`
	State        string            `gorm:"type:text;not null;default:'pending';index:idx_notifications_due,priority:1"`
	AttemptCount int               `gorm:"not null;default:0"`
	SentAt       *time.Time
	ErrorMessage string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (ScheduledNotificationModel) TableName() string {
	return "scheduled_notifications"
}

// NotificationLogModel is the GORM-specific struct for the
// 'notification_logs' table. Rows are append-only audit records, one per
// dispatch attempt.
type NotificationLogModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	SurveyID       string    `gorm:"type:text;not null;index"`
	RecipientEmail string    `gorm:"type:text"`
	Kind           string    `gorm:"type:text;not null"`
	SentAt         time.Time `gorm:"not null"`
	Outcome        string    `gorm:"type:text;not null"`
	ErrorMessage   string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationLogModel) TableName() string {
	return "notification_logs"
}
