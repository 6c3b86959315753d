package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/rollcall/internal/models"
	"github.com/shenikar/rollcall/internal/service"
)

type ResponseRepository struct {
	db DB
}

func NewResponseRepository(db DB) service.ResponseRepository {
	return &ResponseRepository{db: db}
}

// Upsert вставляет ответ или перезаписывает статус и время существующего ответа
// на ту же пару (user_id, event_id). id существующей строки сохраняется.
func (r *ResponseRepository) Upsert(ctx context.Context, response *models.Response) error {
	query := `
		INSERT INTO responses (user_id, event_id, status, responded_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, event_id) DO UPDATE SET
			status = EXCLUDED.status,
			responded_at = EXCLUDED.responded_at
		RETURNING id, responded_at;
	`
	err := r.db.QueryRow(ctx, query,
		response.UserID,
		response.EventID,
		string(response.Status),
		response.RespondedAt,
	).Scan(&response.ID, &response.RespondedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("event %s or user %s: %w", response.EventID, response.UserID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to upsert response: %w", err)
	}
	return nil
}

// ListByEvent возвращает все ответы на событие
func (r *ResponseRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*models.Response, error) {
	query := `
		SELECT id, user_id, event_id, status, responded_at
		FROM responses
		WHERE event_id = $1;
	`
	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	defer rows.Close()

	responses := make([]*models.Response, 0)
	for rows.Next() {
		response := &models.Response{}
		var status string
		if err := rows.Scan(
			&response.ID,
			&response.UserID,
			&response.EventID,
			&status,
			&response.RespondedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan response row: %w", err)
		}
		response.Status = models.ResponseStatus(status)
		responses = append(responses, response)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListByEvent: %w", err)
	}
	return responses, nil
}
