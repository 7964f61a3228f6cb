package repository

import (
	"context"

	"pulse/internal/domain/entity"
)

// SurveyRepository defines persistence operations for survey instances.
type SurveyRepository interface {
	// BatchCreateInstances persists a full generation batch of survey instances.
	BatchCreateInstances(ctx context.Context, instances []*entity.SurveyInstance) error

	// CountInstancesForPeriod counts survey instances already created for a
	// period. Used as the idempotency pre-check before generation.
	CountInstancesForPeriod(ctx context.Context, period string) (int64, error)
}
