package webhook

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/rollcall/internal/models"
)

const (
	webhookQueueKey = "webhook_events"

	EventAlertTriggered    = "alert.triggered"
	EventResponseSubmitted = "response.submitted"
)

// WebhookEvent - структура для данных вебхука
type WebhookEvent struct {
	Type      string             `json:"type"`
	EventID   uuid.UUID          `json:"event_id"`
	AreaID    string             `json:"area_id,omitempty"`
	UserID    *uuid.UUID         `json:"user_id,omitempty"`
	Status    string             `json:"status,omitempty"`
	Push      *models.PushResult `json:"push,omitempty"` // итог рассылки для alert.triggered
	Timestamp time.Time          `json:"timestamp"`
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH + BRPOP в воркере дают FIFO-очередь
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
