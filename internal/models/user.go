package models

import (
	"time"

	"github.com/google/uuid"
)

// User - зарегистрированный пользователь и его устройство
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	AreaID       string    `json:"areaId,omitempty"`
	DeviceToken  string    `json:"deviceToken,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PublicUser - профиль пользователя без учетных данных
type PublicUser struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	AreaID      string    `json:"areaId,omitempty"`
	DeviceToken string    `json:"deviceToken,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Public возвращает публичный профиль пользователя
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		AreaID:      u.AreaID,
		DeviceToken: u.DeviceToken,
		CreatedAt:   u.CreatedAt,
	}
}
