package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/rollcall/internal/apperr"
	"github.com/shenikar/rollcall/internal/models"
	"github.com/shenikar/rollcall/internal/service/mocks"
	webhook_mocks "github.com/shenikar/rollcall/internal/webhook/mocks"
	"github.com/shenikar/rollcall/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestResponseService(t *testing.T) (*responseService, *mocks.MockResponseRepository, *mocks.MockAlertEventRepository, *webhook_mocks.MockWebhookPublisher) {
	ctrl := gomock.NewController(t)
	responses := mocks.NewMockResponseRepository(ctrl)
	events := mocks.NewMockAlertEventRepository(ctrl)
	publisher := webhook_mocks.NewMockWebhookPublisher(ctrl)

	svc := NewResponseService(responses, events, publisher, logger.Discard())
	return svc.(*responseService), responses, events, publisher
}

func TestSubmitResponse_EventNotFound(t *testing.T) {
	svc, responses, events, _ := newTestResponseService(t)
	ctx := context.Background()
	eventID := uuid.New()

	events.EXPECT().GetEventFromCache(ctx, eventID).Return(nil, nil)
	events.EXPECT().GetByID(ctx, eventID).Return(nil, models.ErrNotFound)
	responses.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

	res, err := svc.SubmitResponse(ctx, uuid.New(), eventID, models.ResponseStatusOK)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Equal(t, 404, apperr.From(err).Status())
}

func TestSubmitResponse_InvalidStatus(t *testing.T) {
	svc, responses, events, _ := newTestResponseService(t)

	events.EXPECT().GetEventFromCache(gomock.Any(), gomock.Any()).Times(0)
	responses.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.SubmitResponse(context.Background(), uuid.New(), uuid.New(), models.ResponseStatusPending)
	assert.True(t, apperr.Is(err, apperr.KindBadRequest))
}

// Повторный ответ обновляет существующую строку: id сохраняется, статус и время новые.
func TestSubmitResponse_SecondSubmissionUpdatesInPlace(t *testing.T) {
	svc, responses, events, publisher := newTestResponseService(t)
	ctx := context.Background()
	userID := uuid.New()
	event := &models.AlertEvent{ID: uuid.New(), AreaID: "area-1"}
	rowID := uuid.New()

	// имитация таблицы с ограничением уникальности (user_id, event_id)
	table := map[[2]uuid.UUID]*models.Response{}
	upsert := func(_ context.Context, r *models.Response) error {
		key := [2]uuid.UUID{r.UserID, r.EventID}
		if existing, ok := table[key]; ok {
			existing.Status = r.Status
			existing.RespondedAt = r.RespondedAt
			r.ID = existing.ID
			return nil
		}
		r.ID = rowID
		stored := *r
		table[key] = &stored
		return nil
	}

	events.EXPECT().GetEventFromCache(ctx, event.ID).Return(event, nil).Times(2)
	responses.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(upsert).Times(2)
	publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(2)

	first := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return first }
	r1, err := svc.SubmitResponse(ctx, userID, event.ID, models.ResponseStatusHelp)
	require.NoError(t, err)

	second := first.Add(time.Minute)
	svc.now = func() time.Time { return second }
	r2, err := svc.SubmitResponse(ctx, userID, event.ID, models.ResponseStatusOK)
	require.NoError(t, err)

	assert.Equal(t, r1.ID, r2.ID)
	require.Len(t, table, 1)
	stored := table[[2]uuid.UUID{userID, event.ID}]
	assert.Equal(t, models.ResponseStatusOK, stored.Status)
	assert.Equal(t, second, stored.RespondedAt)
}

func TestSubmitResponse_UpsertError(t *testing.T) {
	svc, responses, events, _ := newTestResponseService(t)
	ctx := context.Background()
	event := &models.AlertEvent{ID: uuid.New(), AreaID: "area-1"}

	events.EXPECT().GetEventFromCache(ctx, event.ID).Return(event, nil)
	responses.EXPECT().Upsert(ctx, gomock.Any()).Return(errors.New("db down"))

	_, err := svc.SubmitResponse(ctx, uuid.New(), event.ID, models.ResponseStatusOK)
	assert.True(t, apperr.Is(err, apperr.KindInternal))
}
