package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayOf_MondayBased(t *testing.T) {
	// 2024-03-04 is a Monday.
	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	for offset := 0; offset < 7; offset++ {
		assert.Equal(t, offset, WeekdayOf(monday.AddDate(0, 0, offset)))
	}
}

func TestSchedulingConfig_WithinWindow(t *testing.T) {
	cfg := &SchedulingConfig{WindowStartHour: 9, WindowEndHour: 18}

	assert.False(t, cfg.WithinWindow(8))
	assert.True(t, cfg.WithinWindow(9))
	assert.True(t, cfg.WithinWindow(17))
	assert.False(t, cfg.WithinWindow(18))
}

func TestSchedulingConfig_Validate(t *testing.T) {
	valid := SchedulingConfig{
		ResponseDeadlineDays: 10,
		Reminder1Day:         5,
		Reminder2Day:         8,
		WindowStartHour:      9,
		WindowEndHour:        18,
		AllowedWeekdays:      []int{WeekdayMonday, WeekdayTuesday},
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *SchedulingConfig)
	}{
		{"negative deadline", func(c *SchedulingConfig) { c.ResponseDeadlineDays = -1 }},
		{"reminders out of order", func(c *SchedulingConfig) { c.Reminder1Day = 8; c.Reminder2Day = 5 }},
		{"reminders equal", func(c *SchedulingConfig) { c.Reminder2Day = c.Reminder1Day }},
		{"inverted window", func(c *SchedulingConfig) { c.WindowStartHour = 18; c.WindowEndHour = 9 }},
		{"empty weekdays", func(c *SchedulingConfig) { c.AllowedWeekdays = nil }},
		{"weekday out of range", func(c *SchedulingConfig) { c.AllowedWeekdays = []int{7} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			cfg.AllowedWeekdays = append([]int(nil), valid.AllowedWeekdays...)
			tt.mutate(&cfg)

			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSchedulingConfig_AllowsWeekday(t *testing.T) {
	cfg := &SchedulingConfig{AllowedWeekdays: []int{WeekdayMonday, WeekdayFriday}}

	assert.True(t, cfg.AllowsWeekday(WeekdayMonday))
	assert.False(t, cfg.AllowsWeekday(WeekdaySaturday))
}
