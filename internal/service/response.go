package service

//go:generate mockgen -source=response.go -destination=mocks/mock_response.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/rollcall/internal/apperr"
	"github.com/shenikar/rollcall/internal/models"
	"github.com/shenikar/rollcall/internal/webhook"
	"github.com/sirupsen/logrus"
)

// ResponseRepository определяет контракт для работы с бд ответов
type ResponseRepository interface {
	Upsert(ctx context.Context, response *models.Response) error
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*models.Response, error)
}

// ResponseService определяет контракт приема ответов OK/HELP
type ResponseService interface {
	SubmitResponse(ctx context.Context, userID, eventID uuid.UUID, status models.ResponseStatus) (*models.Response, error)
}

type responseService struct {
	responses ResponseRepository
	events    AlertEventRepository
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
	now       func() time.Time
}

func NewResponseService(responses ResponseRepository, events AlertEventRepository, publisher webhook.WebhookPublisher, logger *logrus.Logger) ResponseService {
	return &responseService{
		responses: responses,
		events:    events,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// SubmitResponse записывает ответ пользователя. Повторный ответ на то же событие
// перезаписывает статус и время; побеждает последняя запись.
func (s *responseService) SubmitResponse(ctx context.Context, userID, eventID uuid.UUID, status models.ResponseStatus) (*models.Response, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "response",
		"method":   "SubmitResponse",
		"user_id":  userID,
		"event_id": eventID,
		"status":   status,
	})
	if !status.Valid() {
		log.Warn("Invalid response status")
		return nil, apperr.BadRequest("status must be OK or HELP")
	}
	log.Info("Submitting response")

	event, err := findEvent(ctx, s.events, log, eventID)
	if err != nil {
		return nil, err
	}

	response := &models.Response{
		UserID:      userID,
		EventID:     event.ID,
		Status:      status,
		RespondedAt: s.now().UTC(),
	}
	if err := s.responses.Upsert(ctx, response); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.WithError(err).Warn("Response references a missing event or user")
			return nil, apperr.NotFound("Event not found")
		}
		log.WithError(err).Error("Failed to upsert response in repository")
		return nil, apperr.Internal(fmt.Errorf("service: could not save response: %w", err))
	}

	if err := s.publisher.Publish(ctx, webhook.WebhookEvent{
		Type:      webhook.EventResponseSubmitted,
		EventID:   event.ID,
		AreaID:    event.AreaID,
		UserID:    &userID,
		Status:    string(status),
		Timestamp: response.RespondedAt,
	}); err != nil {
		log.WithError(err).Warn("Failed to publish response webhook")
	}

	log.WithField("response_id", response.ID).Info("Response saved successfully")
	return response, nil
}
