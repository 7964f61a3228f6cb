package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	mockRepo "pulse/internal/mocks/repository"
	mockSvc "pulse/internal/mocks/service"
	"pulse/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// generationServiceFixtures holds all test dependencies for generation service tests.
type generationServiceFixtures struct {
	service          usecase.GenerationUsecase
	clock            *mockSvc.MockClock
	configRepo       *mockRepo.MockConfigRepository
	topologyRepo     *mockRepo.MockTopologyRepository
	surveyRepo       *mockRepo.MockSurveyRepository
	notificationRepo *mockRepo.MockNotificationRepository
	publisher        *mockSvc.MockEventPublisher
}

func createTestGenerationService(t *testing.T) generationServiceFixtures {
	clock := mockSvc.NewMockClock(t)
	configRepo := mockRepo.NewMockConfigRepository(t)
	topologyRepo := mockRepo.NewMockTopologyRepository(t)
	surveyRepo := mockRepo.NewMockSurveyRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewGenerationService(logger, clock, configRepo, topologyRepo, surveyRepo, notificationRepo, publisher)

	return generationServiceFixtures{
		service:          svc,
		clock:            clock,
		configRepo:       configRepo,
		topologyRepo:     topologyRepo,
		surveyRepo:       surveyRepo,
		notificationRepo: notificationRepo,
		publisher:        publisher,
	}
}

func activeSchedulingConfig() *entity.SchedulingConfig {
	return &entity.SchedulingConfig{
		ResponseDeadlineDays: 10,
		Reminder1Day:         5,
		Reminder2Day:         8,
		WindowStartHour:      9,
		WindowEndHour:        18,
		AllowedWeekdays:      weekdaysMonToFri(),
		NotificationsEnabled: true,
		IsActive:             true,
	}
}

func TestGenerationService_GenerateSurveys_SharedAndIndividual(t *testing.T) {
	fx := createTestGenerationService(t)

	ctx := context.Background()
	// Monday 2024-03-04, period 202403.
	now := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)

	fx.clock.EXPECT().Now().Return(now)
	fx.configRepo.EXPECT().FindActive(ctx).Return(activeSchedulingConfig(), nil)
	fx.surveyRepo.EXPECT().CountInstancesForPeriod(ctx, "202403").Return(int64(0), nil)

	fx.topologyRepo.EXPECT().ListInstallations(ctx).Return([]*entity.Installation{
		{ClientKey: "acme", InstallationKey: "plant-7"},
	}, nil)

	fx.topologyRepo.EXPECT().
		ListIndividualRecipients(ctx, "acme", "plant-7").
		Return([]*entity.Recipient{
			{Email: "boss@acme.test", Active: true, RequiresIndividualSurvey: true},
		}, nil)

	fx.topologyRepo.EXPECT().
		ListPushRecipients(ctx, "acme", "plant-7").
		Return([]*entity.Recipient{
			{Email: "boss@acme.test", PushToken: "token-boss", Active: true, RequiresIndividualSurvey: true},
			{Email: "crew@acme.test", PushToken: "token-crew", Active: true},
		}, nil)

	var createdSurveys []*entity.SurveyInstance
	fx.surveyRepo.EXPECT().
		BatchCreateInstances(ctx, mock.Anything).
		Run(func(_ context.Context, instances []*entity.SurveyInstance) {
			createdSurveys = instances
		}).
		Return(nil)

	var createdNotifications []*entity.ScheduledNotification
	fx.notificationRepo.EXPECT().
		BatchCreateNotifications(ctx, mock.Anything).
		Run(func(_ context.Context, notifications []*entity.ScheduledNotification) {
			createdNotifications = notifications
		}).
		Return(nil)

	fx.publisher.EXPECT().PublishRunEvent(ctx, mock.Anything).Return(nil)

	result, err := fx.service.GenerateSurveys(ctx)
	require.NoError(t, err)
	assert.Equal(t, "202403", result.Period)
	assert.Equal(t, 2, result.SurveysCreated)
	assert.Equal(t, 6, result.NotificationsScheduled)

	// One shared instance plus one individual instance.
	require.Len(t, createdSurveys, 2)
	assert.Equal(t, entity.SurveyModeShared, createdSurveys[0].Mode)
	assert.Nil(t, createdSurveys[0].RecipientEmail)
	assert.Equal(t, entity.SurveyModeIndividual, createdSurveys[1].Mode)
	require.NotNil(t, createdSurveys[1].RecipientEmail)
	assert.Equal(t, "boss@acme.test", *createdSurveys[1].RecipientEmail)
	assert.Equal(t, now.AddDate(0, 0, 10), createdSurveys[0].DeadlineAt)

	// Three notifications per push recipient. The recipient requiring an
	// individual survey points at their own instance, the other at the shared.
	require.Len(t, createdNotifications, 6)
	for _, notification := range createdNotifications {
		switch notification.PushToken {
		case "token-boss":
			assert.Equal(t, createdSurveys[1].ID.String(), notification.SurveyID())
		case "token-crew":
			assert.Equal(t, createdSurveys[0].ID.String(), notification.SurveyID())
		default:
			t.Fatalf("unexpected push token %q", notification.PushToken)
		}
	}
}

func TestGenerationService_GenerateSurveys_PeriodAlreadyGenerated(t *testing.T) {
	fx := createTestGenerationService(t)

	ctx := context.Background()
	now := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)

	fx.clock.EXPECT().Now().Return(now)
	fx.configRepo.EXPECT().FindActive(ctx).Return(activeSchedulingConfig(), nil)
	fx.surveyRepo.EXPECT().CountInstancesForPeriod(ctx, "202403").Return(int64(42), nil)

	result, err := fx.service.GenerateSurveys(ctx)
	require.Error(t, err)
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrPeriodAlreadyGenerated.ErrorCode(), appErr.ErrorCode())
}

func TestGenerationService_GenerateSurveys_NoActiveConfig(t *testing.T) {
	fx := createTestGenerationService(t)

	ctx := context.Background()
	fx.configRepo.EXPECT().FindActive(ctx).Return(nil, repository.ErrNoActiveConfig)

	result, err := fx.service.GenerateSurveys(ctx)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveConfiguration)
}

func TestGenerationService_GenerateSurveys_InvalidConfigRejected(t *testing.T) {
	fx := createTestGenerationService(t)

	ctx := context.Background()
	cfg := activeSchedulingConfig()
	cfg.Reminder1Day = 9
	cfg.Reminder2Day = 5

	fx.configRepo.EXPECT().FindActive(ctx).Return(cfg, nil)

	result, err := fx.service.GenerateSurveys(ctx)
	require.Error(t, err)
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestGenerationService_GenerateSurveys_PublishFailureIsNonFatal(t *testing.T) {
	fx := createTestGenerationService(t)

	ctx := context.Background()
	now := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)

	fx.clock.EXPECT().Now().Return(now)
	fx.configRepo.EXPECT().FindActive(ctx).Return(activeSchedulingConfig(), nil)
	fx.surveyRepo.EXPECT().CountInstancesForPeriod(ctx, "202403").Return(int64(0), nil)
	fx.topologyRepo.EXPECT().ListInstallations(ctx).Return([]*entity.Installation{}, nil)
	fx.surveyRepo.EXPECT().BatchCreateInstances(ctx, mock.Anything).Return(nil)
	fx.notificationRepo.EXPECT().BatchCreateNotifications(ctx, mock.Anything).Return(nil)

	fx.publisher.EXPECT().
		PublishRunEvent(ctx, mock.AnythingOfType("*service.RunEvent")).
		Return(assert.AnError)

	result, err := fx.service.GenerateSurveys(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.SurveysCreated)
}
