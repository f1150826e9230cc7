package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"countdown/config"
	deliverycontext "countdown/internal/delivery/context"
	"countdown/internal/errors"

	"github.com/labstack/echo/v4"
)

const (
	healthPath       = "/api/health"
	publicPathPrefix = "/api/public/"
)

// LoggerMiddleware logs one line per request. Successful requests are only
// logged in debug mode; failures are always logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		if c.Request().URL.Path != healthPath {
			m.logRequest(c, start, err)
		}

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	status := c.Response().Status
	if err != nil && !c.Response().Committed {
		// The error handler has not written the response yet
		status = statusOf(err)
	}

	level := requestLevel(req.URL.Path, status)
	if level < slog.LevelWarn && !m.debug {
		return
	}

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	// Admin requests carry the session shop, storefront polls name it in the query
	if shop, ok := deliverycontext.GetShop(c); ok {
		fields = append(fields, slog.String("shop", shop))
	}
	if req.URL.RawQuery != "" {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	m.logger.LogAttrs(req.Context(), level, "HTTP Request", fields...)
}

// requestLevel picks the level of a request line. Storefront widgets poll the
// public routes continuously, so their successes are debug noise.
func requestLevel(path string, status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	case strings.HasPrefix(path, publicPathPrefix):
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

func statusOf(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}

	return http.StatusInternalServerError
}
