package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/rollcall/internal/models"
	"github.com/shenikar/rollcall/internal/service"
)

type AlertEventRepository struct {
	db          DB
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewAlertEventRepository(db DB, redisClient *redis.Client, cacheTTL time.Duration) service.AlertEventRepository {
	return &AlertEventRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create сохраняет новое событие тревоги
func (r *AlertEventRepository) Create(ctx context.Context, event *models.AlertEvent) error {
	query := `
		INSERT INTO alert_events (area_id, triggered_at, triggered_by)
		VALUES ($1, $2, $3) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		event.AreaID,
		event.TriggeredAt,
		event.TriggeredBy,
	).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("failed to create alert event: %w", err)
	}
	return nil
}

// GetByID возвращает событие по его UUID
func (r *AlertEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AlertEvent, error) {
	query := `
		SELECT id, area_id, triggered_at, triggered_by
		FROM alert_events
		WHERE id = $1;
	`
	event, err := scanAlertEvent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert event with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get alert event by id: %w", err)
	}
	return event, nil
}

// List возвращает события с пагинацией, новые первыми. Пустой areaID - все зоны.
func (r *AlertEventRepository) List(ctx context.Context, areaID string, page, pageSize int) ([]*models.AlertEvent, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT id, area_id, triggered_at, triggered_by
		FROM alert_events
		WHERE ($1 = '' OR area_id = $1)
		ORDER BY triggered_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, areaID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list alert events: %w", err)
	}
	defer rows.Close()

	events := make([]*models.AlertEvent, 0)
	for rows.Next() {
		event, err := scanAlertEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert event row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return events, nil
}

// GetEventFromCache пытается получить событие из Redis; при промахе возвращает nil, nil
func (r *AlertEventRepository) GetEventFromCache(ctx context.Context, id uuid.UUID) (*models.AlertEvent, error) {
	val, err := r.redisClient.Get(ctx, eventCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get alert event from cache: %w", err)
	}

	event := &models.AlertEvent{}
	if err := json.Unmarshal(val, event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal alert event from cache: %w", err)
	}
	return event, nil
}

// SetEventCache сохраняет событие в Redis
func (r *AlertEventRepository) SetEventCache(ctx context.Context, event *models.AlertEvent) error {
	val, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, eventCacheKey(event.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set alert event in cache: %w", err)
	}
	return nil
}

func eventCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("alert_event:%s", id.String())
}

func scanAlertEvent(row pgx.Row) (*models.AlertEvent, error) {
	event := &models.AlertEvent{}
	if err := row.Scan(&event.ID, &event.AreaID, &event.TriggeredAt, &event.TriggeredBy); err != nil {
		return nil, err
	}
	return event, nil
}
