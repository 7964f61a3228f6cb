// Package usecase defines the application-level interfaces of the service.
package usecase

import (
	"context"
)

// GenerationResult summarizes one survey generation run.
type GenerationResult struct {
	Period                 string `json:"period"`
	SurveysCreated         int    `json:"surveys_created"`
	NotificationsScheduled int    `json:"notifications_scheduled"`
}

// GenerationUsecase defines the survey generation entry point. It is invoked
// once per period by an external scheduler.
type GenerationUsecase interface {
	// GenerateSurveys expands the active configuration and the full
	// installation/recipient topology into one batch of survey instances and
	// their scheduled notifications. A second call for an already-generated
	// period fails with ErrPeriodAlreadyGenerated.
	GenerateSurveys(ctx context.Context) (*GenerationResult, error)
}
