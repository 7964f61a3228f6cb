package model

import (
	"time"

	"github.com/google/uuid"
)

// SurveyInstanceModel is the GORM-specific struct for the 'survey_instances'
// table. One shared instance exists per (period, client, installation);
// individual instances exist per eligible recipient.
type SurveyInstanceModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	Period          string    `gorm:"type:text;not null;index"`
	ClientKey       string    `gorm:"type:text;not null"`
	InstallationKey string    `gorm:"type:text;not null"`
	Mode            string    `gorm:"type:text;not null"`
	RecipientEmail  *string   `gorm:"type:text"`
	Status          string    `gorm:"type:text;not null;default:'pending'"`
	CreatedAt       time.Time
	DeadlineAt      time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SurveyInstanceModel) TableName() string {
	return "survey_instances"
}
