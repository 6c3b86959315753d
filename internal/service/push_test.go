package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/rollcall/internal/apperr"
	"github.com/shenikar/rollcall/internal/models"
	"github.com/shenikar/rollcall/internal/push"
	pushmocks "github.com/shenikar/rollcall/internal/push/mocks"
	"github.com/shenikar/rollcall/internal/service/mocks"
	"github.com/shenikar/rollcall/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPushService(t *testing.T) (PushService, *mocks.MockUserRepository, *pushmocks.MockProvider, *mocks.MockPushObserver) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	provider := pushmocks.NewMockProvider(ctrl)
	observer := mocks.NewMockPushObserver(ctrl)
	return NewPushService(users, provider, observer, logger.Discard()), users, provider, observer
}

func TestSendPushToArea_NoDevices(t *testing.T) {
	svc, users, provider, observer := newTestPushService(t)
	ctx := context.Background()

	users.EXPECT().ListDeviceTokensByArea(ctx, "area-1").Return([]string{}, nil)
	provider.EXPECT().SendMulticast(gomock.Any(), gomock.Any()).Times(0)
	observer.EXPECT().ObservePush(models.PushResult{})

	res, err := svc.SendPushToArea(ctx, "area-1", uuid.New())
	require.NoError(t, err)
	assert.Equal(t, models.PushResult{Sent: 0, Failed: 0}, res)
}

func TestSendPushToArea_ProviderTally(t *testing.T) {
	svc, users, provider, observer := newTestPushService(t)
	ctx := context.Background()
	eventID := uuid.New()
	tokens := []string{"t1", "t2", "t3"}

	users.EXPECT().ListDeviceTokensByArea(ctx, "area-1").Return(tokens, nil)
	provider.EXPECT().
		SendMulticast(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *push.Message) (*push.BatchResult, error) {
			assert.Equal(t, tokens, msg.Tokens)
			assert.Equal(t, "ALERT_EVENT", msg.Data["type"])
			assert.Equal(t, eventID.String(), msg.Data["eventId"])
			assert.Equal(t, "area-1", msg.Data["areaId"])
			assert.NotEmpty(t, msg.Title)
			assert.NotEmpty(t, msg.Body)
			return &push.BatchResult{SuccessCount: 2, FailureCount: 1}, nil
		})
	observer.EXPECT().ObservePush(models.PushResult{Sent: 2, Failed: 1})

	res, err := svc.SendPushToArea(ctx, "area-1", eventID)
	require.NoError(t, err)
	assert.Equal(t, models.PushResult{Sent: 2, Failed: 1}, res)
}

func TestSendPushToArea_ProviderError(t *testing.T) {
	svc, users, provider, observer := newTestPushService(t)
	ctx := context.Background()

	users.EXPECT().ListDeviceTokensByArea(ctx, "area-1").Return([]string{"t1", "t2", "t3", "t4"}, nil)
	provider.EXPECT().SendMulticast(ctx, gomock.Any()).Return(nil, errors.New("fcm unavailable"))
	observer.EXPECT().ObservePush(models.PushResult{Sent: 0, Failed: 4})

	res, err := svc.SendPushToArea(ctx, "area-1", uuid.New())
	require.NoError(t, err)
	assert.Equal(t, models.PushResult{Sent: 0, Failed: 4}, res)
}

func TestSendPushToArea_TokenLookupError(t *testing.T) {
	svc, users, provider, _ := newTestPushService(t)
	ctx := context.Background()

	users.EXPECT().ListDeviceTokensByArea(ctx, "area-1").Return(nil, errors.New("db down"))
	provider.EXPECT().SendMulticast(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.SendPushToArea(ctx, "area-1", uuid.New())
	assert.True(t, apperr.Is(err, apperr.KindInternal))
}

func TestSendPushToArea_NilObserver(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	svc := NewPushService(users, pushmocks.NewMockProvider(ctrl), nil, logger.Discard())

	users.EXPECT().ListDeviceTokensByArea(gomock.Any(), "empty").Return(nil, nil)

	res, err := svc.SendPushToArea(context.Background(), "empty", uuid.New())
	require.NoError(t, err)
	assert.Zero(t, res)
}
