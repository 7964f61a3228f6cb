package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	"pulse/internal/errors"
	"pulse/internal/usecase"

	"github.com/google/uuid"
)

type generationService struct {
	logger           *slog.Logger
	clock            service.Clock
	configRepo       repository.ConfigRepository
	topologyRepo     repository.TopologyRepository
	surveyRepo       repository.SurveyRepository
	notificationRepo repository.NotificationRepository
	publisher        service.EventPublisher
}

// NewGenerationService creates a new survey generation service instance
func NewGenerationService(
	logger *slog.Logger,
	clock service.Clock,
	configRepo repository.ConfigRepository,
	topologyRepo repository.TopologyRepository,
	surveyRepo repository.SurveyRepository,
	notificationRepo repository.NotificationRepository,
	publisher service.EventPublisher,
) usecase.GenerationUsecase {
	return &generationService{
		logger:           logger,
		clock:            clock,
		configRepo:       configRepo,
		topologyRepo:     topologyRepo,
		surveyRepo:       surveyRepo,
		notificationRepo: notificationRepo,
		publisher:        publisher,
	}
}

// GenerateSurveys expands the active configuration and the installation
// topology into one batch of survey instances plus their notification
// schedule, then commits both batches.
func (s *generationService) GenerateSurveys(ctx context.Context) (*usecase.GenerationResult, error) {
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

	now := s.clock.Now().UTC()
	period := now.Format(entity.PeriodLayout)

	// Idempotency pre-check: a period is generated at most once.
	existing, err := s.surveyRepo.CountInstancesForPeriod(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing instances for period %s: %w", period, err)
	}
	if existing > 0 {
		return nil, domainerrors.ErrPeriodAlreadyGenerated.WithDetails(
			fmt.Sprintf("period %s already has %d survey instances", period, existing))
	}

	installations, err := s.topologyRepo.ListInstallations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list installations: %w", err)
	}

	deadline := now.AddDate(0, 0, cfg.ResponseDeadlineDays)

	var (
		surveys       []*entity.SurveyInstance
		notifications []*entity.ScheduledNotification
	)

	for _, installation := range installations {
		installationSurveys, installationNotifications, err := s.expandInstallation(ctx, cfg, installation, now, period, deadline)
		if err != nil {
			return nil, err
		}

		surveys = append(surveys, installationSurveys...)
		notifications = append(notifications, installationNotifications...)
	}

	// Two batch writes, in order. A notification batch failure does not roll
	// back already-inserted instances; the run surfaces a fatal error and the
	// period pre-check blocks re-generation until corrected.
	if err := s.surveyRepo.BatchCreateInstances(ctx, surveys); err != nil {
		return nil, fmt.Errorf("failed to insert survey instances: %w", err)
	}
	if err := s.notificationRepo.BatchCreateNotifications(ctx, notifications); err != nil {
		return nil, fmt.Errorf("failed to insert scheduled notifications: %w", err)
	}

	s.log(ctx).Info("Survey generation completed",
		slog.String("period", period),
		slog.Int("installations", len(installations)),
		slog.Int("surveys_created", len(surveys)),
		slog.Int("notifications_scheduled", len(notifications)),
	)

	s.publishRunEvent(ctx, &service.RunEvent{
		Task:       service.TaskGenerate,
		Period:     period,
		Surveys:    len(surveys),
		Scheduled:  len(notifications),
		OccurredAt: now,
	})

	return &usecase.GenerationResult{
		Period:                 period,
		SurveysCreated:         len(surveys),
		NotificationsScheduled: len(notifications),
	}, nil
}

// expandInstallation produces the survey instances and scheduled
// notifications of one installation: one shared instance, one individual
// instance per eligible recipient, and three notifications per
// push-addressable recipient.
func (s *generationService) expandInstallation(
	ctx context.Context,
	cfg *entity.SchedulingConfig,
	installation *entity.Installation,
	now time.Time,
	period string,
	deadline time.Time,
) ([]*entity.SurveyInstance, []*entity.ScheduledNotification, error) {
	shared := &entity.SurveyInstance{
		ID:              uuid.New(),
		Period:          period,
		ClientKey:       installation.ClientKey,
		InstallationKey: installation.InstallationKey,
		Mode:            entity.SurveyModeShared,
		Status:          entity.SurveyStatusPending,
		CreatedAt:       now,
		DeadlineAt:      deadline,
	}
	surveys := []*entity.SurveyInstance{shared}

	individualRecipients, err := s.topologyRepo.ListIndividualRecipients(ctx, installation.ClientKey, installation.InstallationKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list individual recipients for %s/%s: %w",
			installation.ClientKey, installation.InstallationKey, err)
	}

	// Individual instances are scoped to this installation, so a recipient
	// with personal copies at several installations gets one per installation
	// and target lookup below can never cross installations.
	individualByEmail := make(map[string]uuid.UUID, len(individualRecipients))
	for _, recipient := range individualRecipients {
		email := recipient.Email
		instance := &entity.SurveyInstance{
			ID:              uuid.New(),
			Period:          period,
			ClientKey:       installation.ClientKey,
			InstallationKey: installation.InstallationKey,
			Mode:            entity.SurveyModeIndividual,
			RecipientEmail:  &email,
			Status:          entity.SurveyStatusPending,
			CreatedAt:       now,
			DeadlineAt:      deadline,
		}
		surveys = append(surveys, instance)
		individualByEmail[email] = instance.ID
	}

	pushRecipients, err := s.topologyRepo.ListPushRecipients(ctx, installation.ClientKey, installation.InstallationKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list push recipients for %s/%s: %w",
			installation.ClientKey, installation.InstallationKey, err)
	}

	var notifications []*entity.ScheduledNotification
	for _, recipient := range pushRecipients {
		targetID := shared.ID
		if recipient.RequiresIndividualSurvey {
			if individualID, ok := individualByEmail[recipient.Email]; ok {
				targetID = individualID
			}
		}

		notifications = append(notifications, buildNotificationPlan(
			targetID,
			recipient.PushToken,
			installation.InstallationKey,
			now,
			cfg,
		)...)
	}

	return surveys, notifications, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *generationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *generationService) publishRunEvent(ctx context.Context, event *service.RunEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := s.publisher.PublishRunEvent(ctx, event); err != nil {
		// Event publishing is best-effort and never fails the run.
		s.log(ctx).Warn("Failed to publish run event",
			slog.String("task", event.Task),
			slog.Any("error", err),
		)
	}
}
