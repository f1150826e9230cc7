package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"countdown/config"
	apimiddleware "countdown/internal/delivery/api/middleware"
	"countdown/internal/delivery/api/router"
	"countdown/internal/delivery/api/router/handler"
	deliverycontext "countdown/internal/delivery/context"
	"countdown/internal/domain/entity"
	domainerrors "countdown/internal/domain/errors"
	"countdown/internal/domain/service"
	mockService "countdown/internal/mocks/service"
	mockUC "countdown/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo        *echo.Echo
	verifier    *mockService.MockSessionVerifier
	timerUC     *mockUC.MockTimerUsecase
	countdownUC *mockUC.MockCountdownUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	verifier := mockService.NewMockSessionVerifier(t)
	timerUC := mockUC.NewMockTimerUsecase(t)
	countdownUC := mockUC.NewMockCountdownUsecase(t)

	e := newEcho(ServerParams{
		Cfg:             cfg,
		Logger:          logger,
		ErrorMiddleware: apimiddleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			TimerHandler: handler.NewTimerHandler(handler.TimerHandlerParams{
				TimerUC:     timerUC,
				CountdownUC: countdownUC,
				Logger:      logger,
			}),
			StorefrontHandler: handler.NewStorefrontHandler(handler.StorefrontHandlerParams{
				CountdownUC: countdownUC,
				Logger:      logger,
			}),
			HealthHandler: handler.NewHealthHandler(),
			SessionMiddleware: apimiddleware.NewSessionMiddleware(apimiddleware.SessionMiddlewareParams{
				Verifier: verifier,
				Logger:   logger,
			}),
		},
	})

	return &testServer{echo: e, verifier: verifier, timerUC: timerUC, countdownUC: countdownUC}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
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

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_AdminRoutesRequireSession(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/timers", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "SESSION_MISSING", errorCode(t, rec))
}

func TestServer_AdminRouteWithSession(t *testing.T) {
	s := newTestServer(t)

	s.verifier.EXPECT().Verify("good-token").Return(&service.ShopSession{Shop: "demo.myshopify.com"}, nil)
	s.timerUC.EXPECT().ListTimers(mock.Anything, "demo.myshopify.com").Return([]*entity.Timer{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/timers", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
	rec := s.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(mustData(t, rec)))
}

func TestServer_RejectedSession(t *testing.T) {
	s := newTestServer(t)

	s.verifier.EXPECT().Verify("expired").Return(nil, domainerrors.ErrSessionInvalid)

	req := httptest.NewRequest(http.MethodDelete, "/api/timers/0190a4d2-7b5e-7c3a-9f1e-2b3c4d5e6f70", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer expired")
	rec := s.do(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "SESSION_INVALID", errorCode(t, rec))
}

func TestServer_PublicRoutes(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/public/timers/active", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "SHOP_REQUIRED", errorCode(t, rec))

	s.countdownUC.EXPECT().ActiveTimers(mock.Anything, "demo.myshopify.com", "").Return([]*entity.Timer{}, nil)
	rec = s.do(httptest.NewRequest(http.MethodGet, "/api/public/timers/active?shop=demo.myshopify.com", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_CORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/public/timers/active", nil)
	req.Header.Set(echo.HeaderOrigin, "https://demo.myshopify.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	rec := s.do(req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestServer_UnknownRoute(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ROUTE_NOT_FOUND", errorCode(t, rec))
}

func mustData(t *testing.T, rec *httptest.ResponseRecorder) json.RawMessage {
	t.Helper()

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Data
}
