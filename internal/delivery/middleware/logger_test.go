package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"countdown/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLevel(t *testing.T) {
	assert.Equal(t, slog.LevelError, requestLevel("/api/timers", 500))
	assert.Equal(t, slog.LevelWarn, requestLevel("/api/public/timers/active", 400))
	assert.Equal(t, slog.LevelDebug, requestLevel("/api/public/timers/active", 200))
	assert.Equal(t, slog.LevelInfo, requestLevel("/api/timers", 201))
}

func serve(t *testing.T, debug bool, path string, h echo.HandlerFunc) []map[string]any {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET(path, h)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path+"?shop=demo.myshopify.com", nil))

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}

	return lines
}

func TestLoggerMiddleware(t *testing.T) {
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	fail := func(echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway, "upstream") }

	t.Run("success hidden outside debug", func(t *testing.T) {
		assert.Empty(t, serve(t, false, "/api/timers", ok))
	})

	t.Run("failure always logged", func(t *testing.T) {
		lines := serve(t, false, "/api/timers", fail)
		require.Len(t, lines, 1)
		assert.Equal(t, "ERROR", lines[0]["level"])
		assert.Equal(t, float64(http.StatusBadGateway), lines[0]["status"])
	})

	t.Run("public poll at debug", func(t *testing.T) {
		lines := serve(t, true, "/api/public/timers/active", ok)
		require.Len(t, lines, 1)
		assert.Equal(t, "DEBUG", lines[0]["level"])
		assert.Equal(t, "shop=demo.myshopify.com", lines[0]["query"])
	})

	t.Run("health skipped", func(t *testing.T) {
		assert.Empty(t, serve(t, true, "/api/health", ok))
	})
}
