package impl

import (
	"testing"
	"time"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdaysMonToFri() []int {
	return []int{
		entity.WeekdayMonday,
		entity.WeekdayTuesday,
		entity.WeekdayWednesday,
		entity.WeekdayThursday,
		entity.WeekdayFriday,
	}
}

func TestNextAllowedInstant_AllowedDayPinsHour(t *testing.T) {
	// Wednesday afternoon stays on the same day with the hour pinned.
	wednesday := time.Date(2024, 3, 6, 15, 42, 10, 0, time.UTC)

	adjusted := nextAllowedInstant(wednesday, 9, weekdaysMonToFri())

	assert.Equal(t, time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC), adjusted)
}

func TestNextAllowedInstant_WeekendRollsForward(t *testing.T) {
	// Saturday and Sunday both roll forward to Monday.
	saturday := time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, monday, nextAllowedInstant(saturday, 9, weekdaysMonToFri()))
	assert.Equal(t, monday, nextAllowedInstant(sunday, 9, weekdaysMonToFri()))
}

func TestNextAllowedInstant_Idempotent(t *testing.T) {
	start := time.Date(2024, 3, 9, 23, 30, 0, 0, time.UTC)

	once := nextAllowedInstant(start, 9, weekdaysMonToFri())
	twice := nextAllowedInstant(once, 9, weekdaysMonToFri())

	assert.Equal(t, once, twice)
}

func TestNextAllowedInstant_AlwaysLandsOnAllowedWeekday(t *testing.T) {
	allowed := []int{entity.WeekdayTuesday, entity.WeekdayThursday}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 30; day++ {
		adjusted := nextAllowedInstant(start.AddDate(0, 0, day), 10, allowed)

		assert.True(t, weekdayAllowed(adjusted, allowed),
			"adjusted instant %s fell on disallowed weekday", adjusted)
		assert.Equal(t, 10, adjusted.Hour())
		assert.Equal(t, 0, adjusted.Minute())
		assert.False(t, adjusted.Before(start.AddDate(0, 0, day).Truncate(24*time.Hour)))
	}
}

func TestBuildNotificationPlan_ThreeKindsInOrder(t *testing.T) {
	cfg := &entity.SchedulingConfig{
		ResponseDeadlineDays: 10,
		Reminder1Day:         5,
		Reminder2Day:         7,
		WindowStartHour:      9,
		WindowEndHour:        18,
		AllowedWeekdays:      weekdaysMonToFri(),
	}

	surveyID := uuid.New()
	// Monday, inside the delivery window.
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	plan := buildNotificationPlan(surveyID, "token-1", "plant-7", now, cfg)
	require.Len(t, plan, 3)

	assert.Equal(t, entity.NotificationKindNew, plan[0].Kind())
	assert.Equal(t, entity.NotificationKindReminder1, plan[1].Kind())
	assert.Equal(t, entity.NotificationKindReminder2, plan[2].Kind())

	// Day 1 is the generation day, day 5 the first reminder, and day 7 lands
	// on Sunday 2024-03-10 so it rolls forward to Monday.
	assert.Equal(t, time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), plan[0].ScheduledAt)
	assert.Equal(t, time.Date(2024, 3, 8, 9, 0, 0, 0, time.UTC), plan[1].ScheduledAt)
	assert.Equal(t, time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC), plan[2].ScheduledAt)

	for _, notification := range plan {
		assert.Equal(t, "token-1", notification.PushToken)
		assert.Equal(t, surveyID.String(), notification.SurveyID())
		assert.Equal(t, entity.NotificationStatePending, notification.State)
		assert.Zero(t, notification.AttemptCount)
		assert.Contains(t, notification.Body, "plant-7")
		assert.False(t, plan[0].ScheduledAt.After(notification.ScheduledAt))
	}
}

func TestBuildNotificationPlan_DistinctTitles(t *testing.T) {
	cfg := &entity.SchedulingConfig{
		Reminder1Day:    3,
		Reminder2Day:    5,
		WindowStartHour: 9,
		AllowedWeekdays: weekdaysMonToFri(),
	}

	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	plan := buildNotificationPlan(uuid.New(), "token-1", "plant-7", now, cfg)
	require.Len(t, plan, 3)

	titles := map[string]bool{}
	for _, notification := range plan {
		titles[notification.Title] = true
	}
	assert.Len(t, titles, 3)
}
