package handler

import (
	"log/slog"
	"net/http"
	"time"

	"countdown/internal/delivery/api/middleware"
	"countdown/internal/delivery/api/response"
	"countdown/internal/delivery/api/validator"
	domainerrors "countdown/internal/domain/errors"
	"countdown/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TimerHandlerParams holds dependencies for TimerHandler, injected by Fx.
type TimerHandlerParams struct {
	fx.In

	TimerUC     usecase.TimerUsecase
	CountdownUC usecase.CountdownUsecase
	Logger      *slog.Logger
}

// TimerHandler serves the merchant admin timer endpoints
type TimerHandler struct {
	timerUC     usecase.TimerUsecase
	countdownUC usecase.CountdownUsecase
	logger      *slog.Logger
}

// NewTimerHandler is the constructor for TimerHandler
func NewTimerHandler(params TimerHandlerParams) *TimerHandler {
	return &TimerHandler{
		timerUC:     params.TimerUC,
		countdownUC: params.CountdownUC,
		logger:      params.Logger,
	}
}

// ActivateTimerRequest represents the request body for toggling a timer
type ActivateTimerRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// PreviewTimerRequest represents the request body for evaluating an unsaved timer
type PreviewTimerRequest struct {
	Timer usecase.TimerInput `json:"timer"`
	// Instant to evaluate at; now when omitted
	At *time.Time `json:"at"`
}

// ListTimers handles listing the shop's timers
func (h *TimerHandler) ListTimers(c echo.Context) error {
	shop, ok := middleware.GetShop(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrSessionMissing.ErrorCode(), "Shop not found in session")
	}

	timers, err := h.timerUC.ListTimers(c.Request().Context(), shop)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, timers)
}

// GetTimer handles retrieving a single timer
func (h *TimerHandler) GetTimer(c echo.Context) error {
	shop, ok := middleware.GetShop(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrSessionMissing.ErrorCode(), "Shop not found in session")
	}

	timerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid timer ID")
	}

	timer, err := h.timerUC.GetTimer(c.Request().Context(), shop, timerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, timer)
}

// CreateTimer handles timer creation
func (h *TimerHandler) CreateTimer(c echo.Context) error {
	shop, ok := middleware.GetShop(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrSessionMissing.ErrorCode(), "Shop not found in session")
	}

	var req usecase.TimerInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid timer input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	timer, err := h.timerUC.CreateTimer(c.Request().Context(), shop, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, timer)
}

// UpdateTimer handles timer updates
func (h *TimerHandler) UpdateTimer(c echo.Context) error {
	shop, ok := middleware.GetShop(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrSessionMissing.ErrorCode(), "Shop not found in session")
	}

	timerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid timer ID")
	}

	var req usecase.TimerInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid timer input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	timer, err := h.timerUC.UpdateTimer(c.Request().Context(), shop, timerID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, timer)
}

// DeleteTimer handles timer deletion
func (h *TimerHandler) DeleteTimer(c echo.Context) error {
	shop, ok := middleware.GetShop(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrSessionMissing.ErrorCode(), "Shop not found in session")
	}

	timerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid timer ID")
	}

	if err := h.timerUC.DeleteTimer(c.Request().Context(), shop, timerID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ActivateTimer handles switching a timer on or off
func (h *TimerHandler) ActivateTimer(c echo.Context) error {
	shop, ok := middleware.GetShop(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrSessionMissing.ErrorCode(), "Shop not found in session")
	}

	timerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid timer ID")
	}

	var req ActivateTimerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activation input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	timer, err := h.timerUC.SetTimerActive(c.Request().Context(), shop, timerID, *req.Active)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, timer)
}

// PreviewTimer handles evaluating an unsaved timer for the admin live preview
func (h *TimerHandler) PreviewTimer(c echo.Context) error {
	var req PreviewTimerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preview input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	preview, err := h.countdownUC.Preview(c.Request().Context(), &req.Timer, req.At)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preview)
}

// TimerCountdown handles evaluating a saved timer now
func (h *TimerHandler) TimerCountdown(c echo.Context) error {
	shop, ok := middleware.GetShop(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrSessionMissing.ErrorCode(), "Shop not found in session")
	}

	timerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid timer ID")
	}

	tc, err := h.countdownUC.TimerCountdown(c.Request().Context(), shop, timerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tc)
}

func validationFailed(c echo.Context, err error) error {
	return response.BadRequestWithDetails(c,
		domainerrors.ErrValidationFailed.ErrorCode(),
		domainerrors.ErrValidationFailed.Message(),
		validator.Details(err),
	)
}
