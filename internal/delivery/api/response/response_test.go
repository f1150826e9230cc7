package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "countdown/internal/delivery/context"
	domainerrors "countdown/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccess_Envelope(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"title": "Sale"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"title":"Sale"},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestError_DetailsOnlyForClientErrors(t *testing.T) {
	tests := []struct {
		status      int
		wantDetails bool
	}{
		{status: http.StatusBadRequest, wantDetails: true},
		{status: http.StatusNotFound, wantDetails: true},
		{status: http.StatusUnauthorized},
		{status: http.StatusForbidden},
		{status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "CODE", "message", "secret"))

			errBody := decodeError(t, rec)["error"].(map[string]any)
			_, hasDetails := errBody["details"]
			assert.Equal(t, tt.wantDetails, hasDetails)
		})
	}
}

func TestHandleAppError(t *testing.T) {
	t.Run("app error is rendered", func(t *testing.T) {
		c, rec := newContext()

		err := HandleAppError(c, errors.Wrap(domainerrors.ErrTimerNotFound, "lookup"))

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "TIMER_NOT_FOUND", decodeError(t, rec)["error"].(map[string]any)["code"])
	})

	t.Run("other errors are returned", func(t *testing.T) {
		c, rec := newContext()
		cause := errors.New("boom")

		err := HandleAppError(c, cause)

		assert.ErrorIs(t, err, cause)
		assert.Empty(t, rec.Body.String())
	})
}

func TestAppErrorDetails(t *testing.T) {
	fields := domainerrors.FieldErrors{}
	fields.Add("endTime", "End time must be after start time")

	assert.Equal(t, map[string]string{"endTime": "End time must be after start time"}, AppErrorDetails(fields))
	assert.Equal(t, "timer 42", AppErrorDetails(domainerrors.ErrTimerNotFound.WithDetails("timer 42")))
	assert.Nil(t, AppErrorDetails(domainerrors.ErrTimerNotFound))
}
