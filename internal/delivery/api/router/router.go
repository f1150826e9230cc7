// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"countdown/internal/delivery/api/middleware"
	"countdown/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TimerHandler      *handler.TimerHandler
	StorefrontHandler *handler.StorefrontHandler
	HealthHandler     *handler.HealthHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	timerHandler      *handler.TimerHandler
	storefrontHandler *handler.StorefrontHandler
	healthHandler     *handler.HealthHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		timerHandler:      params.TimerHandler,
		storefrontHandler: params.StorefrontHandler,
		healthHandler:     params.HealthHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// Health check endpoint
	api.GET("/health", r.healthHandler.HealthCheck)

	// Storefront routes, polled by widgets without a session
	publicGroup := api.Group("/public/timers")
	{
		publicGroup.GET("/active", r.storefrontHandler.ActiveTimers)
		publicGroup.GET("/countdowns", r.storefrontHandler.Countdowns)
	}

	// Admin routes that require a session token
	timersGroup := api.Group("/timers")
	timersGroup.Use(r.sessionMiddleware.Authenticate)
	{
		timersGroup.GET("", r.timerHandler.ListTimers)
		timersGroup.POST("", r.timerHandler.CreateTimer)
		timersGroup.POST("/preview", r.timerHandler.PreviewTimer)
		timersGroup.GET("/:id", r.timerHandler.GetTimer)
		timersGroup.PUT("/:id", r.timerHandler.UpdateTimer)
		timersGroup.DELETE("/:id", r.timerHandler.DeleteTimer)
		timersGroup.POST("/:id/activate", r.timerHandler.ActivateTimer)
		timersGroup.GET("/:id/countdown", r.timerHandler.TimerCountdown)
	}
}
