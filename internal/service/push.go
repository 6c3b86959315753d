package service

//go:generate mockgen -source=push.go -destination=mocks/mock_push.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/rollcall/internal/apperr"
	"github.com/shenikar/rollcall/internal/models"
	"github.com/shenikar/rollcall/internal/push"
	"github.com/sirupsen/logrus"
)

const (
	alertPushType  = "ALERT_EVENT"
	alertPushTitle = "Emergency roll call"
	alertPushBody  = "Are you OK? Tap to respond OK or HELP."
)

// PushObserver получает итог каждой рассылки (метрики)
type PushObserver interface {
	ObservePush(result models.PushResult)
}

// PushService рассылает уведомление о тревоге всем устройствам зоны
type PushService interface {
	SendPushToArea(ctx context.Context, areaID string, eventID uuid.UUID) (models.PushResult, error)
}

type pushService struct {
	users    UserRepository
	provider push.Provider
	observer PushObserver
	logger   *logrus.Logger
}

// NewPushService создает сервис рассылки; observer может быть nil
func NewPushService(users UserRepository, provider push.Provider, observer PushObserver, logger *logrus.Logger) PushService {
	return &pushService{
		users:    users,
		provider: provider,
		observer: observer,
		logger:   logger,
	}
}

// SendPushToArea отправляет один мультикаст на все токены зоны. Ошибка провайдера
// засчитывает всю пачку как неудачную, повторных попыток нет.
func (s *pushService) SendPushToArea(ctx context.Context, areaID string, eventID uuid.UUID) (models.PushResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "push",
		"method":   "SendPushToArea",
		"area_id":  areaID,
		"event_id": eventID,
	})

	tokens, err := s.users.ListDeviceTokensByArea(ctx, areaID)
	if err != nil {
		log.WithError(err).Error("Failed to collect device tokens")
		return models.PushResult{}, apperr.Internal(fmt.Errorf("service: could not collect device tokens: %w", err))
	}

	var result models.PushResult
	if len(tokens) == 0 {
		log.Info("No devices registered in area, skipping push")
		s.observe(result)
		return result, nil
	}

	batch, err := s.provider.SendMulticast(ctx, &push.Message{
		Tokens: tokens,
		Title:  alertPushTitle,
		Body:   alertPushBody,
		Data: map[string]string{
			"type":    alertPushType,
			"eventId": eventID.String(),
			"areaId":  areaID,
		},
	})
	if err != nil {
		log.WithError(err).WithField("tokens", len(tokens)).Error("Push provider call failed")
		result = models.PushResult{Sent: 0, Failed: len(tokens)}
	} else {
		result = models.PushResult{Sent: batch.SuccessCount, Failed: batch.FailureCount}
	}

	s.observe(result)
	log.WithFields(logrus.Fields{"sent": result.Sent, "failed": result.Failed}).Info("Push delivery completed")
	return result, nil
}

func (s *pushService) observe(result models.PushResult) {
	if s.observer != nil {
		s.observer.ObservePush(result)
	}
}
