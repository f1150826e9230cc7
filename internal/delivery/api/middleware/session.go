package middleware

import (
	"log/slog"
	"strings"

	"countdown/internal/delivery/api/response"
	deliverycontext "countdown/internal/delivery/context"
	domainerrors "countdown/internal/domain/errors"
	"countdown/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	Verifier service.SessionVerifier
	Logger   *slog.Logger
}

// SessionMiddleware authenticates embedded admin requests by their session token.
type SessionMiddleware struct {
	verifier service.SessionVerifier
	logger   *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		verifier: params.Verifier,
		logger:   params.Logger,
	}
}

// Authenticate validates the Bearer session token and stores the shop on the context.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrSessionMissing.ErrorCode(), domainerrors.ErrSessionMissing.Message())
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, domainerrors.ErrSessionInvalid.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		session, err := m.verifier.Verify(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Session token rejected",
				slog.Any("error", err),
			)

			return response.Unauthorized(c, domainerrors.ErrSessionInvalid.ErrorCode(), domainerrors.ErrSessionInvalid.Message())
		}

		// Set shop info on the context for handlers and the service layer
		deliverycontext.SetShop(c, session.Shop)
		ctx := deliverycontext.WithShop(c.Request().Context(), session.Shop)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("shop", session.Shop)))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// GetShop is a helper function to safely retrieve the shop from the context.
func GetShop(c echo.Context) (string, bool) {
	return deliverycontext.GetShop(c)
}
