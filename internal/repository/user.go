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

const userColumns = `
	id,
	email,
	name,
	COALESCE(area_id, ''),
	COALESCE(device_token, ''),
	password_hash,
	created_at,
	updated_at`

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) service.UserRepository {
	return &UserRepository{db: db}
}

// Create создает пользователя; при занятом email возвращает models.ErrAlreadyExists
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, name, area_id, password_hash)
		VALUES ($1, $2, NULLIF($3, ''), $4)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		user.Email,
		user.Name,
		user.AreaID,
		user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user with email %s: %w", user.Email, models.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE id = $1;`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE email = $1;`
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user with email %s: %w", email, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// UpdateDevice перезаписывает зону, токен устройства и имя пользователя
func (r *UserRepository) UpdateDevice(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET
			name = $1,
			area_id = NULLIF($2, ''),
			device_token = NULLIF($3, ''),
			updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		user.Name,
		user.AreaID,
		user.DeviceToken,
		user.ID,
	).Scan(&user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("user with id %s not found for update: %w", user.ID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to update user device: %w", err)
	}
	return nil
}

// ListByArea возвращает всех пользователей, текущая зона которых совпадает с areaID
func (r *UserRepository) ListByArea(ctx context.Context, areaID string) ([]*models.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE area_id = $1 ORDER BY name, created_at;`
	rows, err := r.db.Query(ctx, query, areaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users by area: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListByArea: %w", err)
	}
	return users, nil
}

// ListDeviceTokensByArea возвращает непустые токены устройств участников зоны
func (r *UserRepository) ListDeviceTokensByArea(ctx context.Context, areaID string) ([]string, error) {
	query := `
		SELECT device_token
		FROM users
		WHERE area_id = $1 AND device_token IS NOT NULL AND device_token <> '';
	`
	rows, err := r.db.Query(ctx, query, areaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list device tokens: %w", err)
	}
	defer rows.Close()

	tokens := make([]string, 0)
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, fmt.Errorf("failed to scan device token: %w", err)
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListDeviceTokensByArea: %w", err)
	}
	return tokens, nil
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.AreaID,
		&user.DeviceToken,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}
