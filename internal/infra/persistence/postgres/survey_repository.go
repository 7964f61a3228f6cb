package postgres

import (
	"context"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// surveyRepository implements the repository.SurveyRepository interface.
type surveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository is the constructor for surveyRepository.
func NewSurveyRepository(db *gorm.DB) repository.SurveyRepository {
	return &surveyRepository{
		db: db,
	}
}

// BatchCreateInstances persists a full generation batch of survey instances.
func (repo *surveyRepository) BatchCreateInstances(ctx context.Context, instances []*entity.SurveyInstance) error {
	if len(instances) == 0 {
		return nil
	}

	instanceModels := make([]*model.SurveyInstanceModel, 0, len(instances))
	for _, instance := range instances {
		instanceModels = append(instanceModels, fromSurveyInstanceDomain(instance))
	}

	// Use GORM's CreateInBatches for efficient batch insertion
	if err := repo.db.WithContext(ctx).CreateInBatches(instanceModels, 100).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// The partial unique index on shared instances rejects a second
			// generation batch for the same period.
			return domainerrors.ErrPeriodAlreadyGenerated.WrapMessage("shared instance already exists for period")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrGenerationFailed.WrapMessage("missing required survey instance information in batch")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create survey instances")
	}

	return nil
}

// CountInstancesForPeriod counts survey instances already created for a period.
func (repo *surveyRepository) CountInstancesForPeriod(ctx context.Context, period string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SurveyInstanceModel{}).
		Where("period = ?", period).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count survey instances for period")
	}

	return count, nil
}

// --- Mapper Functions ---

// fromSurveyInstanceDomain converts a domain SurveyInstance entity to a GORM SurveyInstanceModel.
func fromSurveyInstanceDomain(data *entity.SurveyInstance) *model.SurveyInstanceModel {
	if data == nil {
		return nil
	}

	return &model.SurveyInstanceModel{
		ID:              data.ID,
		Period:          data.Period,
		ClientKey:       data.ClientKey,
		InstallationKey: data.InstallationKey,
		Mode:            string(data.Mode),
		RecipientEmail:  data.RecipientEmail,
		Status:          string(data.Status),
		CreatedAt:       data.CreatedAt,
		DeadlineAt:      data.DeadlineAt,
	}
}
