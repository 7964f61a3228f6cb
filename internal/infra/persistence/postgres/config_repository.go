// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// configRepository implements the repository.ConfigRepository interface.
type configRepository struct {
	db *gorm.DB
}

// NewConfigRepository is the constructor for configRepository.
func NewConfigRepository(db *gorm.DB) repository.ConfigRepository {
	return &configRepository{
		db: db,
	}
}

// FindActive retrieves the single active scheduling configuration.
func (repo *configRepository) FindActive(ctx context.Context) (*entity.SchedulingConfig, error) {
	var configM model.SchedulingConfigModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		First(&configM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoActiveConfig
		}

		return nil, errors.Wrap(err, "failed to find active scheduling configuration")
	}

	return toSchedulingConfigDomain(&configM), nil
}

// --- Mapper Functions ---

// toSchedulingConfigDomain converts a GORM SchedulingConfigModel to a domain SchedulingConfig entity.
func toSchedulingConfigDomain(data *model.SchedulingConfigModel) *entity.SchedulingConfig {
	if data == nil {
		return nil
	}

	return &entity.SchedulingConfig{
		ID:                   data.ID,
		ResponseDeadlineDays: data.ResponseDeadlineDays,
		Reminder1Day:         data.Reminder1Day,
		Reminder2Day:         data.Reminder2Day,
		WindowStartHour:      data.WindowStartHour,
		WindowEndHour:        data.WindowEndHour,
		AllowedWeekdays:      data.AllowedWeekdays,
		NotificationsEnabled: data.NotificationsEnabled,
		IsActive:             data.IsActive,
	}
}
