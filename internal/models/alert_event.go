package models

import (
	"time"

	"github.com/google/uuid"
)

// AlertEvent - одна рассылка тревоги по зоне. После создания не изменяется.
type AlertEvent struct {
	ID          uuid.UUID  `json:"id"`
	AreaID      string     `json:"areaId"`
	TriggeredAt time.Time  `json:"triggeredAt"`
	TriggeredBy *uuid.UUID `json:"triggeredBy,omitempty"`
}

// PushResult - итог мультикаст-рассылки
type PushResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// TriggerResult - созданное событие и итог рассылки
type TriggerResult struct {
	Event *AlertEvent
	Push  PushResult
}
