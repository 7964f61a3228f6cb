package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind identifies which of the three scheduled notifications of
// a (recipient, survey) pair a record is.
type NotificationKind string

const (
	NotificationKindNew       NotificationKind = "new"
	NotificationKindReminder1 NotificationKind = "reminder1"
	NotificationKindReminder2 NotificationKind = "reminder2"
)

// NotificationState is the delivery state machine of a scheduled notification.
//
//	pending → sent
//	pending → retrying(n) → sent | failed
//
// sent and failed are terminal. retrying keeps the notification selectable as
// due once its pushed-forward ScheduledAt passes again.
type NotificationState string

const (
	NotificationStatePending  NotificationState = "pending"
	NotificationStateRetrying NotificationState = "retrying"
	NotificationStateSent     NotificationState = "sent"
	NotificationStateFailed   NotificationState = "failed"
)

// Payload keys carried on every scheduled notification.
const (
	PayloadKeySurveyID = "survey_id"
	PayloadKeyKind     = "kind"
)

// ScheduledNotification is one push notification queued for delivery at a
// specific instant. It is created by the notification scheduler and mutated
// only by the dispatch state updater.
type ScheduledNotification struct {
	ID           uuid.UUID         `json:"id"`
	PushToken    string            `json:"push_token"`
	Title        string            `json:"title"`
	Body         string            `json:"body"`
	Payload      map[string]string `json:"payload"` // Carries survey_id and kind at minimum.
	ScheduledAt  time.Time         `json:"scheduled_at"`
	State        NotificationState `json:"state"`
	AttemptCount int               `json:"attempt_count"`
	SentAt       *time.Time        `json:"sent_at"`
	ErrorMessage string            `json:"error_message"`
}

// SurveyID returns the survey instance id carried in the payload.
func (n *ScheduledNotification) SurveyID() string {
	return n.Payload[PayloadKeySurveyID]
}

// Kind returns the notification kind carried in the payload.
func (n *ScheduledNotification) Kind() NotificationKind {
	return NotificationKind(n.Payload[PayloadKeyKind])
}

// Audit outcomes for notification log entries.
const (
	LogOutcomeSuccess = "success"
	LogOutcomeFailure = "failure"
)

// NotificationLogEntry is an immutable audit record written once per
// dispatch attempt.
type NotificationLogEntry struct {
	ID             uuid.UUID        `json:"id"`
	SurveyID       string           `json:"survey_id"`
	RecipientEmail string           `json:"recipient_email"`
	Kind           NotificationKind `json:"kind"`
	SentAt         time.Time        `json:"sent_at"`
	Outcome        string           `json:"outcome"`
	ErrorMessage   string           `json:"error_message"`
}
