package service

//go:generate mockgen -source=alert.go -destination=mocks/mock_alert.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/rollcall/internal/apperr"
	"github.com/shenikar/rollcall/internal/models"
	"github.com/shenikar/rollcall/internal/webhook"
	"github.com/sirupsen/logrus"
)

// AlertEventRepository определяет контракт для работы с бд и кэшем событий тревоги
type AlertEventRepository interface {
	Create(ctx context.Context, event *models.AlertEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AlertEvent, error)
	List(ctx context.Context, areaID string, page, pageSize int) ([]*models.AlertEvent, error)
	GetEventFromCache(ctx context.Context, id uuid.UUID) (*models.AlertEvent, error)
	SetEventCache(ctx context.Context, event *models.AlertEvent) error
}

// AlertObserver учитывает созданные события тревоги
type AlertObserver interface {
	ObserveAlertTriggered()
}

// AlertService определяет контракт для бизнес-логики тревог
type AlertService interface {
	TriggerAlert(ctx context.Context, areaID string, triggeredBy *uuid.UUID) (*models.TriggerResult, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*models.AlertEvent, error)
	ListEvents(ctx context.Context, areaID string, page, pageSize int) ([]*models.AlertEvent, error)
}

type alertService struct {
	repo      AlertEventRepository
	push      PushService
	publisher webhook.WebhookPublisher
	observer  AlertObserver
	logger    *logrus.Logger
	now       func() time.Time
}

func NewAlertService(repo AlertEventRepository, push PushService, publisher webhook.WebhookPublisher, observer AlertObserver, logger *logrus.Logger) AlertService {
	return &alertService{
		repo:      repo,
		push:      push,
		publisher: publisher,
		observer:  observer,
		logger:    logger,
		now:       time.Now,
	}
}

// TriggerAlert создает событие для зоны и рассылает push. Зона без участников допустима.
func (s *alertService) TriggerAlert(ctx context.Context, areaID string, triggeredBy *uuid.UUID) (*models.TriggerResult, error) {
	areaID = strings.TrimSpace(areaID)
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "TriggerAlert",
		"area_id": areaID,
	})
	if areaID == "" {
		log.Warn("Alert trigger without area")
		return nil, apperr.BadRequest("areaId is required")
	}
	log.Info("Triggering alert")

	event := &models.AlertEvent{
		AreaID:      areaID,
		TriggeredAt: s.now().UTC(),
		TriggeredBy: triggeredBy,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		log.WithError(err).Error("Failed to create alert event in repository")
		return nil, apperr.Internal(fmt.Errorf("service: could not create alert event: %w", err))
	}
	log = log.WithField("event_id", event.ID)
	if s.observer != nil {
		s.observer.ObserveAlertTriggered()
	}

	if err := s.repo.SetEventCache(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to cache alert event")
	}

	result, err := s.push.SendPushToArea(ctx, areaID, event.ID)
	if err != nil {
		log.WithError(err).Error("Failed to send push for alert event")
		return nil, err
	}

	if err := s.publisher.Publish(ctx, webhook.WebhookEvent{
		Type:      webhook.EventAlertTriggered,
		EventID:   event.ID,
		AreaID:    areaID,
		UserID:    triggeredBy,
		Push:      &result,
		Timestamp: event.TriggeredAt,
	}); err != nil {
		log.WithError(err).Warn("Failed to publish alert webhook")
	}

	log.WithFields(logrus.Fields{"sent": result.Sent, "failed": result.Failed}).Info("Alert triggered successfully")
	return &models.TriggerResult{Event: event, Push: result}, nil
}

// GetEvent получает событие по ID
func (s *alertService) GetEvent(ctx context.Context, id uuid.UUID) (*models.AlertEvent, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "GetEvent",
		"event_id": id,
	})
	return findEvent(ctx, s.repo, log, id)
}

// ListEvents возвращает события с пагинацией
func (s *alertService) ListEvents(ctx context.Context, areaID string, page, pageSize int) ([]*models.AlertEvent, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "alert",
		"method":    "ListEvents",
		"area_id":   areaID,
		"page":      page,
		"page_size": pageSize,
	})

	events, err := s.repo.List(ctx, strings.TrimSpace(areaID), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list alert events from repository")
		return nil, apperr.Internal(fmt.Errorf("service: could not list alert events: %w", err))
	}

	log.WithField("count", len(events)).Info("Alert events listed successfully")
	return events, nil
}

// findEvent читает событие сначала из кэша, затем из бд, заполняя кэш.
// Ошибки кэша только логируются.
func findEvent(ctx context.Context, repo AlertEventRepository, log *logrus.Entry, id uuid.UUID) (*models.AlertEvent, error) {
	cached, err := repo.GetEventFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read alert event from cache")
	}
	if cached != nil {
		return cached, nil
	}

	event, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Alert event not found")
			return nil, apperr.NotFound("Event not found")
		}
		log.WithError(err).Error("Failed to get alert event in repository")
		return nil, apperr.Internal(fmt.Errorf("service: could not get alert event: %w", err))
	}

	if err := repo.SetEventCache(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to cache alert event")
	}
	return event, nil
}
