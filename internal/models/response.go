package models

import (
	"time"

	"github.com/google/uuid"
)

type ResponseStatus string

const (
	ResponseStatusOK      ResponseStatus = "OK"
	ResponseStatusHelp    ResponseStatus = "HELP"
	ResponseStatusPending ResponseStatus = "PENDING"
)

// Valid сообщает, может ли пользователь отправить такой статус
func (s ResponseStatus) Valid() bool {
	return s == ResponseStatusOK || s == ResponseStatusHelp
}

// Response - ответ пользователя на событие тревоги, один на пару (user, event)
type Response struct {
	ID          uuid.UUID      `json:"id"`
	UserID      uuid.UUID      `json:"userId"`
	EventID     uuid.UUID      `json:"eventId"`
	Status      ResponseStatus `json:"status"`
	RespondedAt time.Time      `json:"respondedAt"`
}
