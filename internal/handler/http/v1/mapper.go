package v1

import "github.com/shenikar/rollcall/internal/models"

// RegisterRequestToInput преобразует DTO регистрации во входные данные сервиса
func RegisterRequestToInput(dto RegisterRequest) models.RegisterInput {
	return models.RegisterInput{
		Email:    dto.Email,
		Password: dto.Password,
		Name:     dto.Name,
		AreaID:   dto.AreaID,
	}
}

// ModelToAlertEventResponse преобразует доменную модель события в DTO
func ModelToAlertEventResponse(model *models.AlertEvent) AlertEventResponse {
	return AlertEventResponse{
		ID:          model.ID,
		AreaID:      model.AreaID,
		TriggeredAt: model.TriggeredAt,
		TriggeredBy: model.TriggeredBy,
	}
}

// ModelsToAlertEventResponses преобразует слайс событий в слайс DTO
func ModelsToAlertEventResponses(events []*models.AlertEvent) []AlertEventResponse {
	responses := make([]AlertEventResponse, len(events))
	for i, event := range events {
		responses[i] = ModelToAlertEventResponse(event)
	}
	return responses
}

func ModelToResponseDTO(model *models.Response) ResponseDTO {
	return ResponseDTO{
		ID:          model.ID,
		UserID:      model.UserID,
		EventID:     model.EventID,
		Status:      string(model.Status),
		RespondedAt: model.RespondedAt,
	}
}

// ModelToEventStatusResponse преобразует сводку дашборда в DTO
func ModelToEventStatusResponse(model *models.EventStatus) EventStatusResponse {
	users := make([]*MemberStatusResponse, len(model.Users))
	for i, u := range model.Users {
		users[i] = &MemberStatusResponse{
			UserID:         u.UserID,
			Name:           u.Name,
			Email:          u.Email,
			ResponseStatus: string(u.ResponseStatus),
			RespondedAt:    u.RespondedAt,
		}
	}
	return EventStatusResponse{
		Success: true,
		Event:   ModelToAlertEventResponse(model.Event),
		Counts:  model.Counts,
		Users:   users,
	}
}
