package postgres

import (
	"context"
	"time"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// BatchCreateNotifications persists a full generation batch of scheduled notifications.
func (repo *notificationRepository) BatchCreateNotifications(ctx context.Context, notifications []*entity.ScheduledNotification) error {
	if len(notifications) == 0 {
		return nil
	}

	notificationModels := make([]*model.ScheduledNotificationModel, 0, len(notifications))
	for _, notification := range notifications {
		notificationModels = append(notificationModels, fromScheduledNotificationDomain(notification))
	}

	// Use GORM's CreateInBatches for efficient batch insertion
	if err := repo.db.WithContext(ctx).CreateInBatches(notificationModels, 100).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrGenerationFailed.WrapMessage("missing required notification information in batch")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create scheduled notifications")
	}

	return nil
}

// FindDue retrieves up to limit notifications in state pending or retrying
// with scheduledAt at or before now, earliest first.
func (repo *notificationRepository) FindDue(ctx context.Context, now time.Time, limit int) ([]*entity.ScheduledNotification, error) {
	var notificationModels []*model.ScheduledNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("state IN ?", []string{
			string(entity.NotificationStatePending),
			string(entity.NotificationStateRetrying),
		}).
		Where("scheduled_at <= ?", now).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due notifications")
	}

	notifications := make([]*entity.ScheduledNotification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toScheduledNotificationDomain(notificationM))
	}

	return notifications, nil
}

// MarkSent transitions a notification to the terminal sent state.
func (repo *notificationRepository) MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	return repo.updateState(ctx, id, map[string]interface{}{
		"state":   string(entity.NotificationStateSent),
		"sent_at": sentAt,
	})
}

// MarkRetrying records a failed attempt and re-queues the notification for a
// later tick at nextAttemptAt.
func (repo *notificationRepository) MarkRetrying(ctx context.Context, id uuid.UUID, nextAttemptAt time.Time, attemptCount int, reason string) error {
	return repo.updateState(ctx, id, map[string]interface{}{
		"state":         string(entity.NotificationStateRetrying),
		"scheduled_at":  nextAttemptAt,
		"attempt_count": attemptCount,
		"error_message": reason,
	})
}

// MarkFailed transitions a notification to the terminal failed state.
func (repo *notificationRepository) MarkFailed(ctx context.Context, id uuid.UUID, attemptCount int, reason string) error {
	return repo.updateState(ctx, id, map[string]interface{}{
		"state":         string(entity.NotificationStateFailed),
		"attempt_count": attemptCount,
		"error_message": reason,
	})
}

func (repo *notificationRepository) updateState(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ScheduledNotificationModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update notification state")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// BatchCreateLogs persists the audit log entries of one dispatch tick.
func (repo *notificationRepository) BatchCreateLogs(ctx context.Context, logs []*entity.NotificationLogEntry) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.NotificationLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromNotificationLogDomain(log))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(logModels, 100).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create notification logs")
	}

	return nil
}

// --- Mapper Functions ---

// toScheduledNotificationDomain converts a GORM ScheduledNotificationModel to a domain ScheduledNotification entity.
func toScheduledNotificationDomain(data *model.ScheduledNotificationModel) *entity.ScheduledNotification {
	if data == nil {
		return nil
	}

	return &entity.ScheduledNotification{
		ID:           data.ID,
		PushToken:    data.PushToken,
		Title:        data.Title,
		Body:         data.Body,
		Payload:      data.Payload,
		ScheduledAt:  data.ScheduledAt,
		State:        entity.NotificationState(data.State),
		AttemptCount: data.AttemptCount,
		SentAt:       data.SentAt,
		ErrorMessage: data.ErrorMessage,
	}
}

// fromScheduledNotificationDomain converts a domain ScheduledNotification entity to a GORM ScheduledNotificationModel.
func fromScheduledNotificationDomain(data *entity.ScheduledNotification) *model.ScheduledNotificationModel {
	if data == nil {
		return nil
	}

	return &model.ScheduledNotificationModel{
		ID:           data.ID,
		PushToken:    data.PushToken,
		Title:        data.Title,
		Body:         data.Body,
		Payload:      data.Payload,
		ScheduledAt:  data.ScheduledAt,
		State:        string(data.State),
		AttemptCount: data.AttemptCount,
		SentAt:       data.SentAt,
		ErrorMessage: data.ErrorMessage,
	}
}

// fromNotificationLogDomain converts a domain NotificationLogEntry entity to a GORM NotificationLogModel.
func fromNotificationLogDomain(data *entity.NotificationLogEntry) *model.NotificationLogModel {
	if data == nil {
		return nil
	}

	return &model.NotificationLogModel{
		ID:             data.ID,
		SurveyID:       data.SurveyID,
		RecipientEmail: data.RecipientEmail,
		Kind:           string(data.Kind),
		SentAt:         data.SentAt,
		Outcome:        data.Outcome,
		ErrorMessage:   data.ErrorMessage,
	}
}
