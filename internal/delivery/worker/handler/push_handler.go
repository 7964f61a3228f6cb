// Package handler contains the Pub/Sub push handler of the worker server.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"pulse/config"
	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/constants"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/service"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TriggerMessage is the payload of a scheduled run trigger.
type TriggerMessage struct {
	Task      string `json:"task"`
	RequestID string `json:"request_id,omitempty"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying scheduled run triggers
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	generationSvc  usecase.GenerationUsecase
	dispatchSvc    usecase.DispatchUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	GenerationSvc usecase.GenerationUsecase
	DispatchSvc   usecase.DispatchUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		generationSvc:  params.GenerationSvc,
		dispatchSvc:    params.DispatchSvc,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	trigger, err := h.parseTrigger(&pushMsg)
	if err != nil {
		h.logger.Error("[Worker] Failed to parse trigger message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	requestID := h.extractRequestID(c, &pushMsg, trigger)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing run trigger", slog.String("task", trigger.Task))

	if err := h.runTask(ctx, trigger.Task); err != nil {
		reqLogger.Error("[Worker] Run trigger failed",
			slog.String("task", trigger.Task),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger a Pub/Sub redelivery.
		// Return 200 for non-retryable errors to prevent infinite retries.
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Run trigger completed", slog.String("task", trigger.Task))

	return c.NoContent(http.StatusOK)
}

// parseTrigger extracts the trigger from the message body, falling back to
// the task attribute when the data payload is empty.
func (h *PushHandler) parseTrigger(pushMsg *PubSubMessage) (*TriggerMessage, error) {
	var trigger TriggerMessage

	if pushMsg.Message.Data != "" {
		data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode message data")
		}
		if err := json.Unmarshal(data, &trigger); err != nil {
			return nil, errors.Wrap(err, "failed to parse trigger payload")
		}
	}

	if trigger.Task == "" {
		trigger.Task = pushMsg.Message.Attributes["task"]
	}

	switch trigger.Task {
	case service.TaskGenerate, service.TaskDispatch:
		return &trigger, nil
	default:
		return nil, errors.Errorf("unknown task %q", trigger.Task)
	}
}

// runTask executes the triggered operation. Domain rejections (period already
// generated, no active configuration) are permanent and must not be retried.
func (h *PushHandler) runTask(ctx context.Context, task string) error {
	var err error
	switch task {
	case service.TaskGenerate:
		_, err = h.generationSvc.GenerateSurveys(ctx)
	case service.TaskDispatch:
		_, err = h.dispatchSvc.DispatchDueNotifications(ctx)
	}
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return newRetryableError(err)
}

// extractRequestID extracts request_id from message attributes, trigger, or generates a new one
func (h *PushHandler) extractRequestID(c echo.Context, pushMsg *PubSubMessage, trigger *TriggerMessage) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try trigger field (from JSON payload)
	if trigger.RequestID != "" {
		return trigger.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(c.Request().Context()); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// verifyPubSubToken validates the OIDC token attached by a Pub/Sub push
// subscription.
func verifyPubSubToken(r *http.Request) error {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return errors.New("malformed authorization header")
	}

	if _, err := idtoken.Validate(r.Context(), token, ""); err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	return nil
}
