package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken хранит хэш текущего refresh-токена пользователя
type RefreshToken struct {
	UserID    uuid.UUID
	TokenHash string
	UpdatedAt time.Time
}
