// Package handler contains the echo handlers of the management HTTP API.
package handler

import (
	"log/slog"
	"net/http"

	"pulse/internal/delivery/http/response"
	"pulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SurveyHandler exposes the survey generation operation.
type SurveyHandler struct {
	logger        *slog.Logger
	generationSvc usecase.GenerationUsecase
}

// SurveyHandlerParams holds dependencies for the SurveyHandler.
type SurveyHandlerParams struct {
	fx.In

	Logger        *slog.Logger
	GenerationSvc usecase.GenerationUsecase
}

// NewSurveyHandler creates a new SurveyHandler instance.
func NewSurveyHandler(params SurveyHandlerParams) *SurveyHandler {
	return &SurveyHandler{
		logger:        params.Logger,
		generationSvc: params.GenerationSvc,
	}
}

// Generate triggers one survey generation run for the current period.
// POST /api/surveys/generate
func (h *SurveyHandler) Generate(c echo.Context) error {
	result, err := h.generationSvc.GenerateSurveys(c.Request().Context())
	if err != nil {
		// AppError values are mapped by the HTTP error handler.
		return err
	}

	return response.Success(c, http.StatusCreated, result, "Survey generation completed")
}
