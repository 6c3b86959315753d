package service

//go:generate mockgen -source=dashboard.go -destination=mocks/mock_dashboard.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/rollcall/internal/apperr"
	"github.com/shenikar/rollcall/internal/models"
	"github.com/sirupsen/logrus"
)

// DashboardService определяет контракт сводки по событию
type DashboardService interface {
	GetEventStatus(ctx context.Context, eventID uuid.UUID) (*models.EventStatus, error)
}

type dashboardService struct {
	events    AlertEventRepository
	users     UserRepository
	responses ResponseRepository
	logger    *logrus.Logger
}

func NewDashboardService(events AlertEventRepository, users UserRepository, responses ResponseRepository, logger *logrus.Logger) DashboardService {
	return &dashboardService{
		events:    events,
		users:     users,
		responses: responses,
		logger:    logger,
	}
}

// GetEventStatus сопоставляет текущих участников зоны события с их ответами.
// Ответившие, но покинувшие зону пользователи в сводку не попадают.
func (s *dashboardService) GetEventStatus(ctx context.Context, eventID uuid.UUID) (*models.EventStatus, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "dashboard",
		"method":   "GetEventStatus",
		"event_id": eventID,
	})
	log.Info("Building event status")

	event, err := findEvent(ctx, s.events, log, eventID)
	if err != nil {
		return nil, err
	}

	members, err := s.users.ListByArea(ctx, event.AreaID)
	if err != nil {
		log.WithError(err).Error("Failed to list area members")
		return nil, apperr.Internal(fmt.Errorf("service: could not list area members: %w", err))
	}

	responses, err := s.responses.ListByEvent(ctx, event.ID)
	if err != nil {
		log.WithError(err).Error("Failed to list responses")
		return nil, apperr.Internal(fmt.Errorf("service: could not list responses: %w", err))
	}

	byUser := make(map[uuid.UUID]*models.Response, len(responses))
	for _, r := range responses {
		byUser[r.UserID] = r
	}

	status := &models.EventStatus{
		Event: event,
		Users: make([]*models.MemberStatus, 0, len(members)),
	}
	for _, member := range members {
		entry := &models.MemberStatus{
			UserID:         member.ID,
			Name:           member.Name,
			Email:          member.Email,
			ResponseStatus: models.ResponseStatusPending,
		}

		if r, ok := byUser[member.ID]; ok {
			respondedAt := r.RespondedAt
			entry.ResponseStatus = r.Status
			entry.RespondedAt = &respondedAt
		}

		switch entry.ResponseStatus {
		case models.ResponseStatusOK:
			status.Counts.OK++
		case models.ResponseStatusHelp:
			status.Counts.Help++
		default:
			entry.ResponseStatus = models.ResponseStatusPending
			entry.RespondedAt = nil
			status.Counts.Pending++
		}
		status.Users = append(status.Users, entry)
	}

	log.WithFields(logrus.Fields{
		"ok":      status.Counts.OK,
		"help":    status.Counts.Help,
		"pending": status.Counts.Pending,
	}).Info("Event status built")
	return status, nil
}
