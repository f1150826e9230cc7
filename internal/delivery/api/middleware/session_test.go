package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "countdown/internal/domain/errors"
	"countdown/internal/domain/service"
	mockSvc "countdown/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionMiddleware(t *testing.T) (*SessionMiddleware, *mockSvc.MockSessionVerifier) {
	verifier := mockSvc.NewMockSessionVerifier(t)

	return NewSessionMiddleware(SessionMiddlewareParams{
		Verifier: verifier,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), verifier
}

func runAuthenticate(m *SessionMiddleware, authHeader string) (*httptest.ResponseRecorder, string, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/timers", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var (
		shop   string
		called bool
	)
	_ = m.Authenticate(func(c echo.Context) error {
		called = true
		shop, _ = GetShop(c)
		return c.NoContent(http.StatusOK)
	})(c)

	return rec, shop, called
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestSessionMiddleware_ValidToken(t *testing.T) {
	m, verifier := newTestSessionMiddleware(t)
	verifier.EXPECT().Verify("good-token").Return(&service.ShopSession{Shop: "demo.myshopify.com"}, nil)

	rec, shop, called := runAuthenticate(m, "Bearer good-token")

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "demo.myshopify.com", shop)
}

func TestSessionMiddleware_MissingHeader(t *testing.T) {
	m, _ := newTestSessionMiddleware(t)

	rec, _, called := runAuthenticate(m, "")

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "SESSION_MISSING", errorCode(t, rec))
}

func TestSessionMiddleware_NotBearer(t *testing.T) {
	m, _ := newTestSessionMiddleware(t)

	rec, _, called := runAuthenticate(m, "Basic abc")

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "SESSION_INVALID", errorCode(t, rec))
}

func TestSessionMiddleware_RejectedToken(t *testing.T) {
	m, verifier := newTestSessionMiddleware(t)
	verifier.EXPECT().Verify("expired").Return(nil, errors.Wrap(domainerrors.ErrSessionInvalid, "token is expired"))

	rec, _, called := runAuthenticate(m, "Bearer expired")

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "SESSION_INVALID", errorCode(t, rec))
}
