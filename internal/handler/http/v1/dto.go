package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/rollcall/internal/models"
)

// RegisterRequest DTO для регистрации пользователя
// @Description DTO для регистрации пользователя
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name" validate:"required,min=1,max=255"`
	AreaID   string `json:"areaId,omitempty" validate:"omitempty,max=255"`
}

// LoginRequest DTO для входа
// @Description DTO для входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest DTO для обновления access-токена
// @Description DTO для обновления access-токена
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// RegisterDeviceRequest DTO для регистрации устройства
// @Description DTO для регистрации устройства
type RegisterDeviceRequest struct {
	AreaID      string `json:"areaId" validate:"required,max=255"`
	DeviceToken string `json:"deviceToken" validate:"required"`
	Name        string `json:"name,omitempty" validate:"omitempty,max=255"`
}

// TriggerAlertRequest DTO для запуска тревоги.
// Пустая зона отклоняется сервисом.
// @Description DTO для запуска тревоги
type TriggerAlertRequest struct {
	AreaID string `json:"areaId"`
}

// SubmitResponseRequest DTO для ответа на тревогу
// @Description DTO для ответа на тревогу
type SubmitResponseRequest struct {
	EventID string `json:"eventId" validate:"required,uuid"`
	Status  string `json:"status" validate:"required,oneof=OK HELP"`
}

// AuthResponse DTO для ответа с профилем и токенами
// @Description DTO для ответа с профилем и токенами
type AuthResponse struct {
	Success      bool               `json:"success"`
	User         *models.PublicUser `json:"user"`
	AccessToken  string             `json:"accessToken"`
	RefreshToken string             `json:"refreshToken"`
}

// AlertEventResponse DTO события тревоги
// @Description DTO события тревоги
type AlertEventResponse struct {
	ID          uuid.UUID  `json:"id"`
	AreaID      string     `json:"areaId"`
	TriggeredAt time.Time  `json:"triggeredAt"`
	TriggeredBy *uuid.UUID `json:"triggeredBy,omitempty"`
}

// TriggerAlertResponse DTO для ответа на запуск тревоги
// @Description DTO для ответа на запуск тревоги
type TriggerAlertResponse struct {
	Success bool               `json:"success"`
	Event   AlertEventResponse `json:"event"`
	Push    models.PushResult  `json:"push"`
}

// ResponseDTO DTO ответа пользователя
// @Description DTO ответа пользователя
type ResponseDTO struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	EventID     uuid.UUID `json:"eventId"`
	Status      string    `json:"status"`
	RespondedAt time.Time `json:"respondedAt"`
}

// MemberStatusResponse DTO состояния участника зоны
// @Description DTO состояния участника зоны
type MemberStatusResponse struct {
	UserID         uuid.UUID  `json:"userId"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	ResponseStatus string     `json:"responseStatus"`
	RespondedAt    *time.Time `json:"respondedAt,omitempty"`
}

// EventStatusResponse DTO сводки по событию
// @Description DTO сводки по событию
type EventStatusResponse struct {
	Success bool                    `json:"success"`
	Event   AlertEventResponse      `json:"event"`
	Counts  models.StatusCounts     `json:"counts"`
	Users   []*MemberStatusResponse `json:"users"`
}
