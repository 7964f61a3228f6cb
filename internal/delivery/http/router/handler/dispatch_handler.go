package handler

import (
	"log/slog"
	"net/http"

	"pulse/internal/delivery/http/response"
	"pulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DispatchHandler exposes the notification dispatch operation.
type DispatchHandler struct {
	logger      *slog.Logger
	dispatchSvc usecase.DispatchUsecase
}

// DispatchHandlerParams holds dependencies for the DispatchHandler.
type DispatchHandlerParams struct {
	fx.In

	Logger      *slog.Logger
	DispatchSvc usecase.DispatchUsecase
}

// NewDispatchHandler creates a new DispatchHandler instance.
func NewDispatchHandler(params DispatchHandlerParams) *DispatchHandler {
	return &DispatchHandler{
		logger:      params.Logger,
		dispatchSvc: params.DispatchSvc,
	}
}

// Dispatch runs one dispatch tick. A gated tick is still a successful
// request; the gate reason is carried in the result body.
// POST /api/notifications/dispatch
func (h *DispatchHandler) Dispatch(c echo.Context) error {
	result, err := h.dispatchSvc.DispatchDueNotifications(c.Request().Context())
	if err != nil {
		return err
	}

	message := "Notification dispatch completed"
	if result.Reason != "" {
		message = "Notification dispatch skipped"
	}

	return response.Success(c, http.StatusOK, result, message)
}
