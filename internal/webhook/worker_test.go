package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/rollcall/internal/config"
	"github.com/shenikar/rollcall/internal/models"
	"github.com/shenikar/rollcall/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newTestWorker(client *redis.Client, url string) *WebhookWorker {
	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     "secret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	return NewWebhookWorker(client, logger.Discard(), cfg)
}

func TestPublishAndDeliver(t *testing.T) {
	client := newTestRedis(t)

	var received atomic.Value
	var signature atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received.Store(body)
		signature.Store(r.Header.Get("X-Webhook-Signature"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	ctx := context.Background()
	event := WebhookEvent{
		Type:      EventAlertTriggered,
		EventID:   uuid.New(),
		AreaID:    "area-1",
		Push:      &models.PushResult{Sent: 2, Failed: 1},
		Timestamp: time.Now().UTC(),
	}
	require.NoError(t, NewRedisWebhookPublisher(client).Publish(ctx, event))

	worker := newTestWorker(client, srv.URL)
	require.NoError(t, worker.processNext(ctx))

	body, ok := received.Load().([]byte)
	require.True(t, ok)
	var got WebhookEvent
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, event.EventID, got.EventID)
	assert.Equal(t, 2, got.Push.Sent)
	assert.Equal(t, generateHMACSHA256(string(body), "secret"), signature.Load())
}

func TestProcessNext_EmptyQueue(t *testing.T) {
	client := newTestRedis(t)
	worker := newTestWorker(client, "http://unused")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, worker.processNext(ctx))
}

func TestProcessWebhookEvent_RetriesOnFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	worker := newTestWorker(newTestRedis(t), srv.URL)
	ok := worker.processWebhookEvent(context.Background(), WebhookEvent{Type: EventResponseSubmitted}, `{}`)

	assert.True(t, ok)
	assert.Equal(t, int32(3), calls.Load())
}

func TestProcessWebhookEvent_GivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	worker := newTestWorker(newTestRedis(t), srv.URL)
	ok := worker.processWebhookEvent(context.Background(), WebhookEvent{}, `{}`)

	assert.False(t, ok)
	assert.Equal(t, int32(3), calls.Load())
}

func TestProcessWebhookEvent_NoURL(t *testing.T) {
	worker := newTestWorker(newTestRedis(t), "")
	assert.False(t, worker.processWebhookEvent(context.Background(), WebhookEvent{}, `{}`))
}
