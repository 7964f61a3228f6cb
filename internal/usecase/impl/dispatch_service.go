package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pulse/config"
	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	"pulse/internal/errors"
	"pulse/internal/usecase"

	"github.com/google/uuid"
)

type dispatchService struct {
	logger           *slog.Logger
	clock            service.Clock
	location         *time.Location
	batchSize        int
	maxAttempts      int
	retryBackoff     time.Duration
	configRepo       repository.ConfigRepository
	topologyRepo     repository.TopologyRepository
	notificationRepo repository.NotificationRepository
	pushSender       service.PushSender
	publisher        service.EventPublisher
}

// NewDispatchService creates a new notification dispatch service instance.
// The operating timezone comes from deployment configuration and is resolved
// once at construction.
func NewDispatchService(
	logger *slog.Logger,
	cfg *config.SurveyConfig,
	clock service.Clock,
	configRepo repository.ConfigRepository,
	topologyRepo repository.TopologyRepository,
	notificationRepo repository.NotificationRepository,
	pushSender service.PushSender,
	publisher service.EventPublisher,
) (usecase.DispatchUsecase, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid operating timezone %q", cfg.Timezone)
	}

	return &dispatchService{
		logger:           logger,
		clock:            clock,
		location:         location,
		batchSize:        cfg.DispatchBatchSize,
		maxAttempts:      cfg.MaxAttempts,
		retryBackoff:     cfg.RetryBackoff,
		configRepo:       configRepo,
		topologyRepo:     topologyRepo,
		notificationRepo: notificationRepo,
		pushSender:       pushSender,
		publisher:        publisher,
	}, nil
}

// DispatchDueNotifications runs one dispatch tick: evaluate the window gates
// and, when open, deliver due notifications in scheduledAt order.
func (s *dispatchService) DispatchDueNotifications(ctx context.Context) (*usecase.DispatchResult, error) {
	cfg, err := s.configRepo.FindActive(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoActiveConfig) {
			return nil, domainerrors.ErrNoActiveConfiguration
		}

		return nil, fmt.Errorf("failed to load active configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if !cfg.NotificationsEnabled {
		s.log(ctx).Info("Dispatch gated", slog.String("reason", usecase.GateReasonDisabled))

		return &usecase.DispatchResult{Reason: usecase.GateReasonDisabled}, nil
	}

	// Weekday and hour gating use the operating timezone; due-notification
	// comparison stays in UTC.
	nowUTC := s.clock.Now().UTC()
	nowLocal := nowUTC.In(s.location)

	if weekday := entity.WeekdayOf(nowLocal); !cfg.AllowsWeekday(weekday) {
		s.log(ctx).Info("Dispatch gated",
			slog.String("reason", usecase.GateReasonOutsideWeekday),
			slog.Int("weekday", weekday),
		)

		return &usecase.DispatchResult{Reason: usecase.GateReasonOutsideWeekday}, nil
	}

	if hour := nowLocal.Hour(); !cfg.WithinWindow(hour) {
		s.log(ctx).Info("Dispatch gated",
			slog.String("reason", usecase.GateReasonOutsideWindow),
			slog.Int("hour", hour),
			slog.Int("window_start", cfg.WindowStartHour),
			slog.Int("window_end", cfg.WindowEndHour),
		)

		return &usecase.DispatchResult{Reason: usecase.GateReasonOutsideWindow}, nil
	}

	due, err := s.notificationRepo.FindDue(ctx, nowUTC, s.batchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to query due notifications: %w", err)
	}
	if len(due) == 0 {
		return &usecase.DispatchResult{Reason: usecase.GateReasonNoneDue}, nil
	}

	var (
		sent   int
		failed int
		logs   []*entity.NotificationLogEntry
	)

	for _, notification := range due {
		outcome := s.deliverOne(ctx, notification, nowUTC)
		if outcome == nil {
			// State bookkeeping failed; the attempt is counted as a failure
			// and the notification is left for inspection.
			failed++

			continue
		}

		if outcome.Outcome == entity.LogOutcomeSuccess {
			sent++
		} else {
			failed++
		}
		logs = append(logs, outcome)
	}

	// Audit log failures are reported but never alter the applied state
	// transitions or the tick's counts.
	if err := s.notificationRepo.BatchCreateLogs(ctx, logs); err != nil {
		s.log(ctx).Error("Failed to insert notification logs",
			slog.Int("log_count", len(logs)),
			slog.Any("error", err),
		)
	}

	s.log(ctx).Info("Dispatch tick completed",
		slog.Int("sent", sent),
		slog.Int("failed", failed),
		slog.Int("total_considered", len(due)),
	)

	s.publishRunEvent(ctx, &service.RunEvent{
		Task:       service.TaskDispatch,
		Sent:       sent,
		Failed:     failed,
		OccurredAt: nowUTC,
	})

	return &usecase.DispatchResult{
		Sent:            sent,
		Failed:          failed,
		TotalConsidered: len(due),
	}, nil
}

// deliverOne attempts delivery of a single notification, transitions its
// state, and returns the audit log entry of the attempt. A nil return means
// the state transition itself failed.
func (s *dispatchService) deliverOne(
	ctx context.Context,
	notification *entity.ScheduledNotification,
	now time.Time,
) *entity.NotificationLogEntry {
	_, sendErr := s.pushSender.Send(ctx, &service.PushMessage{
		Token: notification.PushToken,
		Title: notification.Title,
		Body:  notification.Body,
		Data:  notification.Payload,
	})

	if sendErr == nil {
		if err := s.notificationRepo.MarkSent(ctx, notification.ID, now); err != nil {
			s.log(ctx).Error("Failed to mark notification sent",
				slog.String("notification_id", notification.ID.String()),
				slog.Any("error", err),
			)

			return nil
		}

		return s.newLogEntry(ctx, notification, now, entity.LogOutcomeSuccess, "")
	}

	reason := sendErr.Error()
	attempts := notification.AttemptCount + 1

	var updateErr error
	if attempts < s.maxAttempts {
		updateErr = s.notificationRepo.MarkRetrying(ctx, notification.ID, now.Add(s.retryBackoff), attempts, reason)
	} else {
		updateErr = s.notificationRepo.MarkFailed(ctx, notification.ID, attempts, reason)
	}
	if updateErr != nil {
		s.log(ctx).Error("Failed to record delivery failure",
			slog.String("notification_id", notification.ID.String()),
			slog.Any("error", updateErr),
		)

		return nil
	}

	s.log(ctx).Warn("Notification delivery failed",
		slog.String("notification_id", notification.ID.String()),
		slog.Int("attempt", attempts),
		slog.String("reason", reason),
	)

	return s.newLogEntry(ctx, notification, now, entity.LogOutcomeFailure, reason)
}

// newLogEntry builds the audit record of one attempt, resolving the
// recipient address from the push token on a best-effort basis.
func (s *dispatchService) newLogEntry(
	ctx context.Context,
	notification *entity.ScheduledNotification,
	now time.Time,
	outcome string,
	errorMessage string,
) *entity.NotificationLogEntry {
	email, err := s.topologyRepo.FindRecipientEmailByToken(ctx, notification.PushToken)
	if err != nil && !errors.Is(err, repository.ErrRecipientNotFound) {
		s.log(ctx).Warn("Failed to resolve recipient for audit log",
			slog.String("notification_id", notification.ID.String()),
			slog.Any("error", err),
		)
	}

	return &entity.NotificationLogEntry{
		ID:             uuid.New(),
		SurveyID:       notification.SurveyID(),
		RecipientEmail: email,
		Kind:           notification.Kind(),
		SentAt:         now,
		Outcome:        outcome,
		ErrorMessage:   errorMessage,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *dispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *dispatchService) publishRunEvent(ctx context.Context, event *service.RunEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := s.publisher.PublishRunEvent(ctx, event); err != nil {
		// Event publishing is best-effort and never fails the tick.
		s.log(ctx).Warn("Failed to publish run event",
			slog.String("task", event.Task),
			slog.Any("error", err),
		)
	}
}
