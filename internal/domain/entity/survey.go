package entity

import (
	"time"

	"github.com/google/uuid"
)

// SurveyMode distinguishes shared from individual survey instances.
type SurveyMode string

const (
	// SurveyModeShared marks the one instance per installation answerable by any recipient.
	SurveyModeShared SurveyMode = "shared"
	// SurveyModeIndividual marks a personal instance for a single recipient.
	SurveyModeIndividual SurveyMode = "individual"
)

// SurveyStatus is the answering lifecycle of a survey instance. Generation
// only ever writes pending; later transitions belong to the answering flow.
type SurveyStatus string

const (
	SurveyStatusPending  SurveyStatus = "pending"
	SurveyStatusAnswered SurveyStatus = "answered"
	SurveyStatusExpired  SurveyStatus = "expired"
)

// PeriodLayout is the time format of a survey period (year + month).
const PeriodLayout = "200601"

// SurveyInstance is one concrete survey produced by a generation run for a
// (period, client, installation) scope. RecipientEmail is nil iff the mode
// is shared.
type SurveyInstance struct {
	ID              uuid.UUID    `json:"id"`
	Period          string       `json:"period"`
	ClientKey       string       `json:"client_key"`
	InstallationKey string       `json:"installation_key"`
	Mode            SurveyMode   `json:"mode"`
	RecipientEmail  *string      `json:"recipient_email"`
	Status          SurveyStatus `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	DeadlineAt      time.Time    `json:"deadline_at"`
}
