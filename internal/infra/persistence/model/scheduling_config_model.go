package model

import (
	"github.com/google/uuid"
)

// SchedulingConfigModel is the GORM-specific struct for the
// 'scheduling_configurations' table. Exactly one row has is_active=true,
// enforced by a partial unique index in the schema.
type SchedulingConfigModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ResponseDeadlineDays int       `gorm:"not null"`
	Reminder1Day         int       `gorm:"not null"`
	Reminder2Day         int       `gorm:"not null"`
	WindowStartHour      int       `gorm:"not null"`
	WindowEndHour        int       `gorm:"not null"`
	AllowedWeekdays      []int     `gorm:"type:jsonb;serializer:json;not null"`
	NotificationsEnabled bool      `gorm:"not null;default:true"`
	IsActive             bool      `gorm:"not null;default:false;index"`
}

// TableName explicitly sets the table name for GORM.
func (SchedulingConfigModel) TableName() string {
	return "scheduling_configurations"
}
