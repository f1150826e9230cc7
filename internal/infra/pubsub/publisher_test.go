package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"countdown/config"
	"countdown/internal/domain/constants"
	"countdown/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.TimerEvent {
	return &service.TimerEvent{
		RequestID:  "req-1",
		Type:       service.TimerEventCreated,
		TimerID:    "0190c6d6-8d4e-7000-8000-000000000001",
		ShopID:     "demo.myshopify.com",
		OccurredAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PushesEnvelope(t *testing.T) {
	var (
		got       PubSubPushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := sampleEvent()

	require.NoError(t, publisher.PublishTimerEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, got.Subscription)
	assert.NotEmpty(t, got.Message.MessageID)
	assert.Equal(t, "timer.created", got.Message.Attributes["type"])
	assert.Equal(t, event.ShopID, got.Message.Attributes["shop_id"])

	data, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)

	var decoded service.TimerEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishTimerEvent(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	event := sampleEvent()
	event.RequestID = ""

	attrs := eventAttributes(event)

	assert.NotContains(t, attrs, "request_id")
	assert.Equal(t, event.TimerID, attrs["timer_id"])
}

func TestNewEventPublisher(t *testing.T) {
	t.Run("not configured uses noop", func(t *testing.T) {
		publisher, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{},
			Logger: discardLogger(),
		})

		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishTimerEvent(context.Background(), sampleEvent()))
		assert.NoError(t, publisher.Close())
	})

	t.Run("local requires endpoint", func(t *testing.T) {
		_, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
			Logger: discardLogger(),
		})

		assert.Error(t, err)
	})

	t.Run("local with endpoint", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		publisher, err := NewEventPublisher(PublisherParams{
			Lc:  lc,
			Ctx: context.Background(),
			Config: &config.Config{PubSub: &config.PubSubConfig{
				Provider:      constants.PubSubProviderLocal,
				LocalEndpoint: "http://localhost:8081/events",
			}},
			Logger: discardLogger(),
		})

		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, publisher)
		lc.RequireStart().RequireStop()
	})

	t.Run("google requires project and topic", func(t *testing.T) {
		_, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}},
			Logger: discardLogger(),
		})

		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}},
			Logger: discardLogger(),
		})

		assert.ErrorContains(t, err, "unknown pubsub provider")
	})
}
