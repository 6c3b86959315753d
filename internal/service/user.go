package service

//go:generate mockgen -source=user.go -destination=mocks/mock_user.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/rollcall/internal/apperr"
	"github.com/shenikar/rollcall/internal/models"
	"github.com/sirupsen/logrus"
)

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateDevice(ctx context.Context, user *models.User) error
	ListByArea(ctx context.Context, areaID string) ([]*models.User, error)
	ListDeviceTokensByArea(ctx context.Context, areaID string) ([]string, error)
}

// UserService определяет контракт регистрации устройств
type UserService interface {
	RegisterDevice(ctx context.Context, userID uuid.UUID, areaID, deviceToken, name string) (*models.PublicUser, error)
}

type userService struct {
	repo   UserRepository
	logger *logrus.Logger
}

func NewUserService(repo UserRepository, logger *logrus.Logger) UserService {
	return &userService{
		repo:   repo,
		logger: logger,
	}
}

// RegisterDevice перезаписывает зону и токен устройства пользователя.
// Пустое имя оставляет текущее.
func (s *userService) RegisterDevice(ctx context.Context, userID uuid.UUID, areaID, deviceToken, name string) (*models.PublicUser, error) {
	areaID = strings.TrimSpace(areaID)
	deviceToken = strings.TrimSpace(deviceToken)
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "RegisterDevice",
		"user_id": userID,
		"area_id": areaID,
	})
	if areaID == "" {
		log.Warn("Device registration without area")
		return nil, apperr.BadRequest("areaId is required")
	}
	log.Info("Registering device")

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Attempted to register device for a non-existent user")
			return nil, apperr.NotFound("User not found")
		}
		log.WithError(err).Error("Failed to get user in repository")
		return nil, apperr.Internal(fmt.Errorf("service: could not get user: %w", err))
	}

	user.AreaID = areaID
	user.DeviceToken = deviceToken
	if name = strings.TrimSpace(name); name != "" {
		user.Name = name
	}

	if err := s.repo.UpdateDevice(ctx, user); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		log.WithError(err).Error("Failed to update user device in repository")
		return nil, apperr.Internal(fmt.Errorf("service: could not update device: %w", err))
	}

	log.Info("Device registered successfully")
	return user.Public(), nil
}
