package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shenikar/rollcall/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseRepository_Upsert(t *testing.T) {
	mock := newMockDB(t)
	repo := NewResponseRepository(mock)
	r := &models.Response{
		UserID:      uuid.New(),
		EventID:     uuid.New(),
		Status:      models.ResponseStatusHelp,
		RespondedAt: time.Now().UTC(),
	}
	rowID := uuid.New()

	mock.ExpectQuery(`ON CONFLICT \(user_id, event_id\) DO UPDATE`).
		WithArgs(r.UserID, r.EventID, "HELP", r.RespondedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id", "responded_at"}).AddRow(rowID, r.RespondedAt))

	require.NoError(t, repo.Upsert(context.Background(), r))
	assert.Equal(t, rowID, r.ID)
}

func TestResponseRepository_Upsert_MissingEvent(t *testing.T) {
	mock := newMockDB(t)
	repo := NewResponseRepository(mock)

	mock.ExpectQuery("INSERT INTO responses").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), "OK", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

	err := repo.Upsert(context.Background(), &models.Response{Status: models.ResponseStatusOK})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestResponseRepository_ListByEvent(t *testing.T) {
	mock := newMockDB(t)
	repo := NewResponseRepository(mock)
	eventID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("FROM responses").
		WithArgs(eventID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "event_id", "status", "responded_at"}).
			AddRow(uuid.New(), uuid.New(), eventID, "OK", now).
			AddRow(uuid.New(), uuid.New(), eventID, "HELP", now))

	responses, err := repo.ListByEvent(context.Background(), eventID)
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, models.ResponseStatusOK, responses[0].Status)
	assert.Equal(t, models.ResponseStatusHelp, responses[1].Status)
}
