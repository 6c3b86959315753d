package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shenikar/rollcall/internal/models"
	"github.com/shenikar/rollcall/internal/service"
)

type RefreshTokenRepository struct {
	db DB
}

func NewRefreshTokenRepository(db DB) service.RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

// Upsert сохраняет хэш refresh-токена; у пользователя всегда не больше одной записи
func (r *RefreshTokenRepository) Upsert(ctx context.Context, userID uuid.UUID, tokenHash string) error {
	query := `
		INSERT INTO refresh_tokens (user_id, token_hash, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			token_hash = EXCLUDED.token_hash,
			updated_at = NOW();
	`
	if _, err := r.db.Exec(ctx, query, userID, tokenHash); err != nil {
		return fmt.Errorf("failed to upsert refresh token: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.RefreshToken, error) {
	query := `
		SELECT user_id, token_hash, updated_at
		FROM refresh_tokens
		WHERE user_id = $1;
	`
	record := &models.RefreshToken{}
	err := r.db.QueryRow(ctx, query, userID).Scan(&record.UserID, &record.TokenHash, &record.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("refresh token for user %s: %w", userID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return record, nil
}

// Delete удаляет сохраненный хэш; отсутствие записи ошибкой не считается
func (r *RefreshTokenRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM refresh_tokens WHERE user_id = $1;`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}
