package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"pulse/config"
	"pulse/internal/delivery"
	"pulse/internal/delivery/http"
	"pulse/internal/delivery/http/router/handler"
	"pulse/internal/delivery/worker"
	workerhandler "pulse/internal/delivery/worker/handler"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	"pulse/internal/infra/clock"
	logs "pulse/internal/infra/log"
	"pulse/internal/infra/notification"
	"pulse/internal/infra/persistence/postgres"
	"pulse/internal/infra/pubsub"
	"pulse/internal/usecase"
	"pulse/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		clock.NewSystemClock,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewConfigRepository,
			postgres.NewTopologyRepository,
			postgres.NewSurveyRepository,
			postgres.NewNotificationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newFirebaseSender,
			pubsub.NewEventPublisher,
		),
	)
}

// newFirebaseSender creates the FCM push sender with dependency injection
func newFirebaseSender(ctx context.Context, cfg *config.Config) (service.PushSender, error) {
	if cfg.Firebase == nil {
		return nil, fmt.Errorf("firebase configuration is required")
	}

	sender, err := notification.NewFirebaseSender(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase sender: %w", err)
	}

	return sender, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGenerationService,
			newDispatchService,
		),
	)
}

// newDispatchService creates the dispatch service from the survey section of
// the deployment configuration
func newDispatchService(
	logger *slog.Logger,
	cfg *config.Config,
	clk service.Clock,
	configRepo repository.ConfigRepository,
	topologyRepo repository.TopologyRepository,
	notificationRepo repository.NotificationRepository,
	pushSender service.PushSender,
	publisher service.EventPublisher,
) (usecase.DispatchUsecase, error) {
	return impl.NewDispatchService(
		logger,
		cfg.Survey,
		clk,
		configRepo,
		topologyRepo,
		notificationRepo,
		pushSender,
		publisher,
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSurveyHandler,
			handler.NewDispatchHandler,
			workerhandler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Provide(
			fx.Annotate(
				newWorkerServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// newWorkerServer builds the worker delivery only when enabled in config.
func newWorkerServer(params worker.ServerParams) (delivery.Delivery, error) {
	if params.Cfg.Worker == nil || !params.Cfg.Worker.Enabled {
		return nil, nil
	}

	return worker.NewServer(params)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		if delivery == nil {
			continue
		}
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
