package models

import (
	"time"

	"github.com/google/uuid"
)

// StatusCounts - агрегированные счетчики по событию
type StatusCounts struct {
	OK      int `json:"ok"`
	Help    int `json:"help"`
	Pending int `json:"pending"`
}

// MemberStatus - состояние отдельного участника зоны
type MemberStatus struct {
	UserID         uuid.UUID      `json:"userId"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	ResponseStatus ResponseStatus `json:"responseStatus"`
	RespondedAt    *time.Time     `json:"respondedAt,omitempty"`
}

// EventStatus - сводка по событию для дашборда
type EventStatus struct {
	Event  *AlertEvent     `json:"event"`
	Counts StatusCounts    `json:"counts"`
	Users  []*MemberStatus `json:"users"`
}
