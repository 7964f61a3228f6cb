package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	mockRepo "pulse/internal/mocks/repository"
	mockSvc "pulse/internal/mocks/service"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// dispatchServiceFixtures holds all test dependencies for dispatch service tests.
type dispatchServiceFixtures struct {
	service          usecase.DispatchUsecase
	clock            *mockSvc.MockClock
	configRepo       *mockRepo.MockConfigRepository
	topologyRepo     *mockRepo.MockTopologyRepository
	notificationRepo *mockRepo.MockNotificationRepository
	pushSender       *mockSvc.MockPushSender
	publisher        *mockSvc.MockEventPublisher
}

func createTestDispatchService(t *testing.T) dispatchServiceFixtures {
	clock := mockSvc.NewMockClock(t)
	configRepo := mockRepo.NewMockConfigRepository(t)
	topologyRepo := mockRepo.NewMockTopologyRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	pushSender := mockSvc.NewMockPushSender(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	cfg := &config.SurveyConfig{
		Timezone:          "UTC",
		DispatchBatchSize: 100,
		MaxAttempts:       3,
		RetryBackoff:      time.Hour,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := NewDispatchService(logger, cfg, clock, configRepo, topologyRepo, notificationRepo, pushSender, publisher)
	require.NoError(t, err)

	return dispatchServiceFixtures{
		service:          svc,
		clock:            clock,
		configRepo:       configRepo,
		topologyRepo:     topologyRepo,
		notificationRepo: notificationRepo,
		pushSender:       pushSender,
		publisher:        publisher,
	}
}

func dueNotification(token string, attempts int) *entity.ScheduledNotification {
	return &entity.ScheduledNotification{
		ID:        uuid.New(),
		PushToken: token,
		Title:     "New Survey Available",
		Body:      "You have a new satisfaction survey for plant-7",
		Payload: map[string]string{
			entity.PayloadKeySurveyID: uuid.New().String(),
			entity.PayloadKeyKind:     string(entity.NotificationKindNew),
		},
		State:        entity.NotificationStatePending,
		AttemptCount: attempts,
	}
}

func TestDispatchService_InvalidTimezoneRejected(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.SurveyConfig{Timezone: "Not/AZone", DispatchBatchSize: 1, MaxAttempts: 1, RetryBackoff: time.Hour}

	svc, err := NewDispatchService(logger, cfg, nil, nil, nil, nil, nil, nil)
	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestDispatchService_GatedWhenDisabled(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	cfg := activeSchedulingConfig()
	cfg.NotificationsEnabled = false

	fx.configRepo.EXPECT().FindActive(ctx).Return(cfg, nil)

	result, err := fx.service.DispatchDueNotifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.GateReasonDisabled, result.Reason)
	assert.Zero(t, result.Sent)
	assert.Zero(t, result.TotalConsidered)
}

func TestDispatchService_GatedOutsideWeekday(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	fx.configRepo.EXPECT().FindActive(ctx).Return(activeSchedulingConfig(), nil)
	// Saturday 2024-03-09.
	fx.clock.EXPECT().Now().Return(time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC))

	result, err := fx.service.DispatchDueNotifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.GateReasonOutsideWeekday, result.Reason)
	assert.Zero(t, result.Sent)
}

func TestDispatchService_GatedOutsideWindow(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	fx.configRepo.EXPECT().FindActive(ctx).Return(activeSchedulingConfig(), nil)
	// Monday 18:00, window end hour is exclusive.
	fx.clock.EXPECT().Now().Return(time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC))

	result, err := fx.service.DispatchDueNotifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.GateReasonOutsideWindow, result.Reason)
	assert.Zero(t, result.Sent)
}

func TestDispatchService_NoneDue(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	now := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	fx.configRepo.EXPECT().FindActive(ctx).Return(activeSchedulingConfig(), nil)
	fx.clock.EXPECT().Now().Return(now)
	fx.notificationRepo.EXPECT().FindDue(ctx, now, 100).Return(nil, nil)

	result, err := fx.service.DispatchDueNotifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.GateReasonNoneDue, result.Reason)
	assert.Zero(t, result.TotalConsidered)
}

func TestDispatchService_MixedSuccessAndFailure(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	now := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	good := dueNotification("token-good", 0)
	bad := dueNotification("token-bad", 0)

	fx.configRepo.EXPECT().FindActive(ctx).Return(activeSchedulingConfig(), nil)
	fx.clock.EXPECT().Now().Return(now)
	fx.notificationRepo.EXPECT().FindDue(ctx, now, 100).
		Return([]*entity.ScheduledNotification{good, bad}, nil)

	fx.pushSender.EXPECT().
		Send(ctx, mock.MatchedBy(func(msg *service.PushMessage) bool { return msg.Token == "token-good" })).
		Return("projects/p/messages/1", nil)
	fx.pushSender.EXPECT().
		Send(ctx, mock.MatchedBy(func(msg *service.PushMessage) bool { return msg.Token == "token-bad" })).
		Return("", assert.AnError)

	fx.notificationRepo.EXPECT().MarkSent(ctx, good.ID, now).Return(nil)
	// First failure on a fresh notification re-queues it with backoff.
	fx.notificationRepo.EXPECT().
		MarkRetrying(ctx, bad.ID, now.Add(time.Hour), 1, assert.AnError.Error()).
		Return(nil)

	fx.topologyRepo.EXPECT().
		FindRecipientEmailByToken(ctx, "token-good").
		Return("crew@acme.test", nil)
	fx.topologyRepo.EXPECT().
		FindRecipientEmailByToken(ctx, "token-bad").
		Return("", repository.ErrRecipientNotFound)

	var logs []*entity.NotificationLogEntry
	fx.notificationRepo.EXPECT().
		BatchCreateLogs(ctx, mock.Anything).
		Run(func(_ context.Context, entries []*entity.NotificationLogEntry) {
			logs = entries
		}).
		Return(nil)

	fx.publisher.EXPECT().PublishRunEvent(ctx, mock.Anything).Return(nil)

	result, err := fx.service.DispatchDueNotifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 2, result.TotalConsidered)
	assert.Empty(t, result.Reason)

	require.Len(t, logs, 2)
	assert.Equal(t, entity.LogOutcomeSuccess, logs[0].Outcome)
	assert.Equal(t, "crew@acme.test", logs[0].RecipientEmail)
	assert.Equal(t, good.SurveyID(), logs[0].SurveyID)
	assert.Equal(t, entity.LogOutcomeFailure, logs[1].Outcome)
	assert.Equal(t, assert.AnError.Error(), logs[1].ErrorMessage)
	assert.Empty(t, logs[1].RecipientEmail)
}

func TestDispatchService_ExhaustedAttemptsMarkFailed(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	now := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	// Two prior attempts; this delivery is the third and last.
	exhausted := dueNotification("token-bad", 2)
	exhausted.State = entity.NotificationStateRetrying

	fx.configRepo.EXPECT().FindActive(ctx).Return(activeSchedulingConfig(), nil)
	fx.clock.EXPECT().Now().Return(now)
	fx.notificationRepo.EXPECT().FindDue(ctx, now, 100).
		Return([]*entity.ScheduledNotification{exhausted}, nil)

	fx.pushSender.EXPECT().Send(ctx, mock.Anything).Return("", assert.AnError)
	fx.notificationRepo.EXPECT().
		MarkFailed(ctx, exhausted.ID, 3, assert.AnError.Error()).
		Return(nil)

	fx.topologyRepo.EXPECT().
		FindRecipientEmailByToken(ctx, "token-bad").
		Return("crew@acme.test", nil)
	fx.notificationRepo.EXPECT().BatchCreateLogs(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishRunEvent(ctx, mock.Anything).Return(nil)

	result, err := fx.service.DispatchDueNotifications(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.Sent)
	assert.Equal(t, 1, result.Failed)
}

func TestDispatchService_StateUpdateFailureSkipsAuditEntry(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	now := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	stuck := dueNotification("token-good", 0)

	fx.configRepo.EXPECT().FindActive(ctx).Return(activeSchedulingConfig(), nil)
	fx.clock.EXPECT().Now().Return(now)
	fx.notificationRepo.EXPECT().FindDue(ctx, now, 100).
		Return([]*entity.ScheduledNotification{stuck}, nil)

	fx.pushSender.EXPECT().Send(ctx, mock.Anything).Return("projects/p/messages/1", nil)
	fx.notificationRepo.EXPECT().MarkSent(ctx, stuck.ID, now).Return(assert.AnError)

	var logs []*entity.NotificationLogEntry
	fx.notificationRepo.EXPECT().
		BatchCreateLogs(ctx, mock.Anything).
		Run(func(_ context.Context, entries []*entity.NotificationLogEntry) {
			logs = entries
		}).
		Return(nil)
	fx.publisher.EXPECT().PublishRunEvent(ctx, mock.Anything).Return(nil)

	result, err := fx.service.DispatchDueNotifications(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Empty(t, logs)
}
