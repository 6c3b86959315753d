package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shenikar/rollcall/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) pgxmock.PgxPoolIface {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestUserRepository_Create(t *testing.T) {
	mock := newMockDB(t)
	repo := NewUserRepository(mock)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("a@example.com", "A", "area-1", "hash").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id, now, now))

	user := &models.User{Email: "a@example.com", Name: "A", AreaID: "area-1", PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, id, user.ID)
	assert.Equal(t, now, user.CreatedAt)
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	mock := newMockDB(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("a@example.com", "A", "", "hash").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err := repo.Create(context.Background(), &models.User{Email: "a@example.com", Name: "A", PasswordHash: "hash"})
	assert.True(t, errors.Is(err, models.ErrAlreadyExists))
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	mock := newMockDB(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("FROM users WHERE email").
		WithArgs("ghost@example.com").
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUserRepository_ListByArea(t *testing.T) {
	mock := newMockDB(t)
	repo := NewUserRepository(mock)
	now := time.Now()
	columns := []string{"id", "email", "name", "area_id", "device_token", "password_hash", "created_at", "updated_at"}

	mock.ExpectQuery("FROM users WHERE area_id").
		WithArgs("area-1").
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(uuid.New(), "a@example.com", "A", "area-1", "tok-a", "h", now, now).
			AddRow(uuid.New(), "b@example.com", "B", "area-1", "", "h", now, now))

	users, err := repo.ListByArea(context.Background(), "area-1")
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "tok-a", users[0].DeviceToken)
	assert.Equal(t, "", users[1].DeviceToken)
}

func TestUserRepository_ListDeviceTokensByArea(t *testing.T) {
	mock := newMockDB(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("SELECT device_token").
		WithArgs("area-1").
		WillReturnRows(pgxmock.NewRows([]string{"device_token"}).AddRow("t1").AddRow("t2"))

	tokens, err := repo.ListDeviceTokensByArea(context.Background(), "area-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2"}, tokens)
}

func TestUserRepository_UpdateDevice_NotFound(t *testing.T) {
	mock := newMockDB(t)
	repo := NewUserRepository(mock)
	id := uuid.New()

	mock.ExpectQuery("UPDATE users SET").
		WithArgs("A", "area-1", "tok", id).
		WillReturnError(pgx.ErrNoRows)

	err := repo.UpdateDevice(context.Background(), &models.User{ID: id, Name: "A", AreaID: "area-1", DeviceToken: "tok"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}
