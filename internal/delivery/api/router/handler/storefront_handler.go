package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"countdown/internal/delivery/api/response"
	domainerrors "countdown/internal/domain/errors"
	"countdown/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StorefrontHandlerParams holds dependencies for StorefrontHandler, injected by Fx.
type StorefrontHandlerParams struct {
	fx.In

	CountdownUC usecase.CountdownUsecase
	Logger      *slog.Logger
}

// StorefrontHandler serves the unauthenticated endpoints polled by storefront widgets
type StorefrontHandler struct {
	countdownUC usecase.CountdownUsecase
	logger      *slog.Logger
}

// NewStorefrontHandler is the constructor for StorefrontHandler
func NewStorefrontHandler(params StorefrontHandlerParams) *StorefrontHandler {
	return &StorefrontHandler{
		countdownUC: params.CountdownUC,
		logger:      params.Logger,
	}
}

// ActiveTimers handles listing the shop's running timers
func (h *StorefrontHandler) ActiveTimers(c echo.Context) error {
	shop, product, ok := storefrontQuery(c)
	if !ok {
		return response.BadRequest(c, domainerrors.ErrShopRequired.ErrorCode(), domainerrors.ErrShopRequired.Message())
	}

	timers, err := h.countdownUC.ActiveTimers(c.Request().Context(), shop, product)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, timers)
}

// Countdowns handles listing the shop's running timers already evaluated
func (h *StorefrontHandler) Countdowns(c echo.Context) error {
	shop, product, ok := storefrontQuery(c)
	if !ok {
		return response.BadRequest(c, domainerrors.ErrShopRequired.ErrorCode(), domainerrors.ErrShopRequired.Message())
	}

	countdowns, err := h.countdownUC.StorefrontCountdowns(c.Request().Context(), shop, product)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, countdowns)
}

func storefrontQuery(c echo.Context) (shop, product string, ok bool) {
	shop = strings.ToLower(strings.TrimSpace(c.QueryParam("shop")))
	product = strings.TrimSpace(c.QueryParam("product"))

	return shop, product, shop != ""
}
