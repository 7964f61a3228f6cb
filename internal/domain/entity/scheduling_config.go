// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Weekday ordinals follow the 0=Monday .. 6=Sunday convention used by the
// scheduling configuration. time.Weekday uses 0=Sunday, so conversion is needed.
const (
	WeekdayMonday = iota
	WeekdayTuesday
	WeekdayWednesday
	WeekdayThursday
	WeekdayFriday
	WeekdaySaturday
	WeekdaySunday
)

// WeekdayOf returns the Monday-based weekday ordinal of the given instant.
func WeekdayOf(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// SchedulingConfig is the active scheduling configuration snapshot governing
// one generation or dispatch run. It is loaded once per run and never mutated.
type SchedulingConfig struct {
	ID                   uuid.UUID `json:"id"`
	ResponseDeadlineDays int       `json:"response_deadline_days"` // Days recipients have to answer a survey.
	Reminder1Day         int       `json:"reminder1_day"`          // Day-of-period offset of the first reminder.
	Reminder2Day         int       `json:"reminder2_day"`          // Day-of-period offset of the second reminder.
	WindowStartHour      int       `json:"window_start_hour"`      // First hour of the delivery window (inclusive).
	WindowEndHour        int       `json:"window_end_hour"`        // End hour of the delivery window (exclusive).
	AllowedWeekdays      []int     `json:"allowed_weekdays"`       // Monday-based weekday ordinals allowed for delivery.
	NotificationsEnabled bool      `json:"notifications_enabled"`  // Global kill switch for dispatch.
	IsActive             bool      `json:"is_active"`              // Exactly one configuration is active at a time.
}

// Validate checks the cross-field invariants of a configuration snapshot.
func (c *SchedulingConfig) Validate() error {
	if c.ResponseDeadlineDays < 0 {
		return errors.Errorf("response deadline days must be non-negative, got %d", c.ResponseDeadlineDays)
	}
	if c.Reminder1Day >= c.Reminder2Day {
		return errors.Errorf("reminder1 day %d must precede reminder2 day %d", c.Reminder1Day, c.Reminder2Day)
	}
	if c.WindowStartHour < 0 || c.WindowEndHour > 23 || c.WindowStartHour >= c.WindowEndHour {
		return errors.Errorf("invalid delivery window [%d, %d)", c.WindowStartHour, c.WindowEndHour)
	}
	if len(c.AllowedWeekdays) == 0 {
		return errors.New("allowed weekdays must not be empty")
	}
	for _, weekday := range c.AllowedWeekdays {
		if weekday < WeekdayMonday || weekday > WeekdaySunday {
			return errors.Errorf("weekday ordinal %d out of range", weekday)
		}
	}

	return nil
}

// AllowsWeekday reports whether the given Monday-based weekday ordinal is in
// the allowed set.
func (c *SchedulingConfig) AllowsWeekday(weekday int) bool {
	return slices.Contains(c.AllowedWeekdays, weekday)
}

// WithinWindow reports whether the given hour-of-day falls inside the
// half-open delivery window [WindowStartHour, WindowEndHour).
func (c *SchedulingConfig) WithinWindow(hour int) bool {
	return hour >= c.WindowStartHour && hour < c.WindowEndHour
}
