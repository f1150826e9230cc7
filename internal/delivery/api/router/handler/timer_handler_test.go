package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"countdown/internal/delivery/api/validator"
	deliverycontext "countdown/internal/delivery/context"
	"countdown/internal/domain/countdown"
	"countdown/internal/domain/entity"
	domainerrors "countdown/internal/domain/errors"
	mockUC "countdown/internal/mocks/usecase"
	"countdown/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testShop = "demo.myshopify.com"

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func newTestTimerHandler(t *testing.T) (*TimerHandler, *mockUC.MockTimerUsecase, *mockUC.MockCountdownUsecase) {
	timerUC := mockUC.NewMockTimerUsecase(t)
	countdownUC := mockUC.NewMockCountdownUsecase(t)

	h := NewTimerHandler(TimerHandlerParams{
		TimerUC:     timerUC,
		CountdownUC: countdownUC,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, timerUC, countdownUC
}

// newContext builds an echo context for an authenticated admin request.
func newContext(method, target, body string, shop string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if shop != "" {
		deliverycontext.SetShop(c, shop)
	}

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestTimerHandler_ListTimers(t *testing.T) {
	h, timerUC, _ := newTestTimerHandler(t)
	c, rec := newContext(http.MethodGet, "/api/timers", "", testShop)

	timers := []*entity.Timer{{ID: uuid.New(), ShopID: testShop, Title: "Sale"}}
	timerUC.EXPECT().ListTimers(mock.Anything, testShop).Return(timers, nil)

	require.NoError(t, h.ListTimers(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []entity.Timer
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Sale", got[0].Title)
}

func TestTimerHandler_ListTimers_NoShop(t *testing.T) {
	h, _, _ := newTestTimerHandler(t)
	c, rec := newContext(http.MethodGet, "/api/timers", "", "")

	require.NoError(t, h.ListTimers(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTimerHandler_CreateTimer(t *testing.T) {
	h, timerUC, _ := newTestTimerHandler(t)
	body := `{"title":"Flash sale","endTime":"2024-06-01T14:00:00Z","productIds":["p1"],"loop":true}`
	c, rec := newContext(http.MethodPost, "/api/timers", body, testShop)

	created := &entity.Timer{ID: uuid.New(), ShopID: testShop, Title: "Flash sale"}
	timerUC.EXPECT().
		CreateTimer(mock.Anything, testShop, mock.MatchedBy(func(input *usecase.TimerInput) bool {
			return input.Title == "Flash sale" &&
				input.EndTime != nil && input.EndTime.Equal(time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)) &&
				input.Loop != nil && *input.Loop &&
				input.Active == nil
		})).
		Return(created, nil)

	require.NoError(t, h.CreateTimer(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), created.ID.String())
}

func TestTimerHandler_CreateTimer_InvalidStyleColour(t *testing.T) {
	h, _, _ := newTestTimerHandler(t)
	body := `{"title":"Sale","duration":30,"style":{"backgroundColor":"black"}}`
	c, rec := newContext(http.MethodPost, "/api/timers", body, testShop)

	require.NoError(t, h.CreateTimer(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, map[string]any{"style.backgroundColor": "must be a hex color like #ff0000"}, env.Error.Details)
}

func TestTimerHandler_CreateTimer_FieldErrors(t *testing.T) {
	h, timerUC, _ := newTestTimerHandler(t)
	c, rec := newContext(http.MethodPost, "/api/timers", `{"title":""}`, testShop)

	fields := domainerrors.FieldErrors{}
	fields.Add("title", "Title is required")
	timerUC.EXPECT().CreateTimer(mock.Anything, testShop, mock.Anything).Return(nil, fields)

	require.NoError(t, h.CreateTimer(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, map[string]any{"title": "Title is required"}, env.Error.Details)
}

func TestTimerHandler_CreateTimer_MalformedBody(t *testing.T) {
	h, _, _ := newTestTimerHandler(t)
	c, rec := newContext(http.MethodPost, "/api/timers", `{"title":`, testShop)

	require.NoError(t, h.CreateTimer(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decode(t, rec).Error.Code)
}

func TestTimerHandler_GetTimer(t *testing.T) {
	h, timerUC, _ := newTestTimerHandler(t)
	id := uuid.New()

	t.Run("not found", func(t *testing.T) {
		c, rec := newContext(http.MethodGet, "/api/timers/"+id.String(), "", testShop)
		c.SetParamNames("id")
		c.SetParamValues(id.String())
		timerUC.EXPECT().GetTimer(mock.Anything, testShop, id).Return(nil, errors.Wrap(domainerrors.ErrTimerNotFound, "timer lookup")).Once()

		require.NoError(t, h.GetTimer(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Timer not found", decode(t, rec).Error.Message)
	})

	t.Run("invalid id", func(t *testing.T) {
		c, rec := newContext(http.MethodGet, "/api/timers/nope", "", testShop)
		c.SetParamNames("id")
		c.SetParamValues("nope")

		require.NoError(t, h.GetTimer(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decode(t, rec).Error.Code)
	})
}

func TestTimerHandler_UpdateTimer(t *testing.T) {
	h, timerUC, _ := newTestTimerHandler(t)
	id := uuid.New()
	c, rec := newContext(http.MethodPut, "/api/timers/"+id.String(), `{"title":"Renamed","duration":45}`, testShop)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	timerUC.EXPECT().
		UpdateTimer(mock.Anything, testShop, id, mock.MatchedBy(func(input *usecase.TimerInput) bool {
			return input.Title == "Renamed" && input.Duration != nil && *input.Duration == 45
		})).
		Return(&entity.Timer{ID: id, Title: "Renamed"}, nil)

	require.NoError(t, h.UpdateTimer(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTimerHandler_UpdateTimer_NullDuration(t *testing.T) {
	h, timerUC, _ := newTestTimerHandler(t)
	id := uuid.New()
	c, rec := newContext(http.MethodPut, "/api/timers/"+id.String(), `{"title":"Renamed","duration":null}`, testShop)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	timerUC.EXPECT().
		UpdateTimer(mock.Anything, testShop, id, mock.MatchedBy(func(input *usecase.TimerInput) bool {
			return input.Duration == nil && input.IsNull(usecase.FieldDuration) && !input.IsNull(usecase.FieldAfterMessage)
		})).
		Return(&entity.Timer{ID: id, Title: "Renamed"}, nil)

	require.NoError(t, h.UpdateTimer(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTimerHandler_DeleteTimer(t *testing.T) {
	h, timerUC, _ := newTestTimerHandler(t)
	id := uuid.New()
	c, rec := newContext(http.MethodDelete, "/api/timers/"+id.String(), "", testShop)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	timerUC.EXPECT().DeleteTimer(mock.Anything, testShop, id).Return(nil)

	require.NoError(t, h.DeleteTimer(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestTimerHandler_ActivateTimer(t *testing.T) {
	h, timerUC, _ := newTestTimerHandler(t)
	id := uuid.New()

	t.Run("deactivate", func(t *testing.T) {
		c, rec := newContext(http.MethodPost, "/api/timers/"+id.String()+"/activate", `{"active":false}`, testShop)
		c.SetParamNames("id")
		c.SetParamValues(id.String())
		timerUC.EXPECT().SetTimerActive(mock.Anything, testShop, id, false).Return(&entity.Timer{ID: id}, nil).Once()

		require.NoError(t, h.ActivateTimer(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing flag", func(t *testing.T) {
		c, rec := newContext(http.MethodPost, "/api/timers/"+id.String()+"/activate", `{}`, testShop)
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		require.NoError(t, h.ActivateTimer(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
	})
}

func TestTimerHandler_PreviewTimer(t *testing.T) {
	h, _, countdownUC := newTestTimerHandler(t)
	body := `{"timer":{"title":"Draft","duration":10},"at":"2024-06-01T12:00:00Z"}`
	c, rec := newContext(http.MethodPost, "/api/timers/preview", body, testShop)

	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	remaining := int64(10 * time.Minute / time.Millisecond)
	snap := countdown.Snapshot{Phase: countdown.PhaseActive, RemainingMs: &remaining}
	countdownUC.EXPECT().
		Preview(mock.Anything, mock.MatchedBy(func(input *usecase.TimerInput) bool {
			return input.Title == "Draft"
		}), mock.MatchedBy(func(got *time.Time) bool {
			return got != nil && got.Equal(at)
		})).
		Return(&usecase.TimerCountdown{
			Timer: &entity.Timer{Title: "Draft"},
			Frame: countdown.Frame{At: at, Snapshot: snap, View: countdown.View{Phase: countdown.PhaseActive}},
		}, nil)

	require.NoError(t, h.PreviewTimer(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Snapshot struct {
			Phase       string `json:"phase"`
			RemainingMs int64  `json:"remainingMs"`
		} `json:"snapshot"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	assert.Equal(t, "active", got.Snapshot.Phase)
	assert.Equal(t, remaining, got.Snapshot.RemainingMs)
}

func TestTimerHandler_TimerCountdown(t *testing.T) {
	h, _, countdownUC := newTestTimerHandler(t)
	id := uuid.New()
	c, rec := newContext(http.MethodGet, "/api/timers/"+id.String()+"/countdown", "", testShop)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	countdownUC.EXPECT().
		TimerCountdown(mock.Anything, testShop, id).
		Return(&usecase.TimerCountdown{Timer: &entity.Timer{ID: id}}, nil)

	require.NoError(t, h.TimerCountdown(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTimerHandler_UnexpectedErrorIsReturned(t *testing.T) {
	h, timerUC, _ := newTestTimerHandler(t)
	c, _ := newContext(http.MethodGet, "/api/timers", "", testShop)

	timerUC.EXPECT().ListTimers(mock.Anything, testShop).Return(nil, context.DeadlineExceeded)

	err := h.ListTimers(c)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
