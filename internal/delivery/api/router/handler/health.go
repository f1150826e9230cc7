package handler

import (
	"net/http"
	"time"

	"countdown/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

const healthServiceName = "Countdown Timer App"

// HealthHandler reports liveness
type HealthHandler struct {
	now func() time.Time
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

// HealthCheck handles the health endpoint
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": h.now().UTC().Format(time.RFC3339Nano),
		"service":   healthServiceName,
	})
}
