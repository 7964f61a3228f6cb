// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pulse/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SurveyHandler   *handler.SurveyHandler
	DispatchHandler *handler.DispatchHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	surveyHandler   *handler.SurveyHandler
	dispatchHandler *handler.DispatchHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		surveyHandler:   params.SurveyHandler,
		dispatchHandler: params.DispatchHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.ServiceInfo)
	e.GET("/health", handler.HealthCheck)

	apiGroup := e.Group("/api")
	{
		apiGroup.POST("/surveys/generate", r.surveyHandler.Generate)
		apiGroup.POST("/notifications/dispatch", r.dispatchHandler.Dispatch)
	}
}
