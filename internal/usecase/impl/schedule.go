// Package impl contains the concrete implementations of the use cases.
package impl

import (
	"fmt"
	"time"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// Notification copy per kind. Bodies mention the installation the survey
// belongs to.
var notificationCopy = map[entity.NotificationKind]struct {
	title string
	body  string
}{
	entity.NotificationKindNew: {
		title: "New Survey Available",
		body:  "You have a new satisfaction survey for %s",
	},
	entity.NotificationKindReminder1: {
		title: "Survey Reminder",
		body:  "Remember to complete the survey for %s",
	},
	entity.NotificationKindReminder2: {
		title: "Final Reminder",
		body:  "The survey for %s is due soon",
	},
}

// nextAllowedInstant advances the date component of t one day at a time until
// its weekday is in the allowed set, then pins the time to the given hour
// with minutes and seconds zeroed. Adjusting an already-adjusted instant is a
// no-op. The allowed set must be non-empty; the instant keeps its location.
func nextAllowedInstant(t time.Time, hour int, allowedWeekdays []int) time.Time {
	for !weekdayAllowed(t, allowedWeekdays) {
		t = t.AddDate(0, 0, 1)
	}

	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
}

func weekdayAllowed(t time.Time, allowedWeekdays []int) bool {
	weekday := entity.WeekdayOf(t)
	for _, allowed := range allowedWeekdays {
		if weekday == allowed {
			return true
		}
	}

	return false
}

// buildNotificationPlan produces the three scheduled notifications (new,
// reminder1, reminder2) of one (recipient, survey instance) pair. Reminder
// offsets are day-of-period values, so day N lands N-1 days after generation.
func buildNotificationPlan(
	surveyID uuid.UUID,
	pushToken string,
	installationKey string,
	now time.Time,
	cfg *entity.SchedulingConfig,
) []*entity.ScheduledNotification {
	plan := make([]*entity.ScheduledNotification, 0, 3)

	offsets := []struct {
		kind entity.NotificationKind
		days int
	}{
		{kind: entity.NotificationKindNew, days: 0},
		{kind: entity.NotificationKindReminder1, days: cfg.Reminder1Day - 1},
		{kind: entity.NotificationKindReminder2, days: cfg.Reminder2Day - 1},
	}

	for _, offset := range offsets {
		text := notificationCopy[offset.kind]
		scheduledAt := nextAllowedInstant(now.AddDate(0, 0, offset.days), cfg.WindowStartHour, cfg.AllowedWeekdays)

		plan = append(plan, &entity.ScheduledNotification{
			ID:        uuid.New(),
			PushToken: pushToken,
			Title:     text.title,
			Body:      fmt.Sprintf(text.body, installationKey),
			Payload: map[string]string{
				entity.PayloadKeySurveyID: surveyID.String(),
				entity.PayloadKeyKind:     string(offset.kind),
			},
			ScheduledAt: scheduledAt,
			State:       entity.NotificationStatePending,
		})
	}

	return plan
}
