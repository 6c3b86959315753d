package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/rollcall/internal/apperr"
	"github.com/shenikar/rollcall/internal/models"
	"github.com/shenikar/rollcall/internal/service/mocks"
	"github.com/shenikar/rollcall/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserService(t *testing.T) (UserService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	return NewUserService(repo, logger.Discard()), repo
}

func TestRegisterDevice_Success(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Name: "Old Name", AreaID: "area-0"}

	repo.EXPECT().GetByID(ctx, user.ID).Return(user, nil)
	repo.EXPECT().
		UpdateDevice(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			assert.Equal(t, "area-1", u.AreaID)
			assert.Equal(t, "device-token", u.DeviceToken)
			assert.Equal(t, "Old Name", u.Name)
			return nil
		})

	profile, err := svc.RegisterDevice(ctx, user.ID, "area-1", "device-token", "")
	require.NoError(t, err)
	assert.Equal(t, "area-1", profile.AreaID)
	assert.Equal(t, "Old Name", profile.Name)
}

func TestRegisterDevice_OverridesName(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Name: "Old Name"}

	repo.EXPECT().GetByID(ctx, user.ID).Return(user, nil)
	repo.EXPECT().UpdateDevice(ctx, gomock.Any()).Return(nil)

	profile, err := svc.RegisterDevice(ctx, user.ID, "area-1", "tok", "New Name")
	require.NoError(t, err)
	assert.Equal(t, "New Name", profile.Name)
}

func TestRegisterDevice_UserNotFound(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()
	id := uuid.New()

	repo.EXPECT().GetByID(ctx, id).Return(nil, models.ErrNotFound)
	repo.EXPECT().UpdateDevice(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.RegisterDevice(ctx, id, "area-1", "tok", "")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestRegisterDevice_RepositoryError(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()
	user := &models.User{ID: uuid.New()}

	repo.EXPECT().GetByID(ctx, user.ID).Return(user, nil)
	repo.EXPECT().UpdateDevice(ctx, gomock.Any()).Return(errors.New("db down"))

	_, err := svc.RegisterDevice(ctx, user.ID, "area-1", "tok", "")
	assert.True(t, apperr.Is(err, apperr.KindInternal))
}

func TestRegisterDevice_TrimsInput(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Name: "Name"}

	repo.EXPECT().GetByID(ctx, user.ID).Return(user, nil)
	repo.EXPECT().
		UpdateDevice(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			assert.Equal(t, "area-1", u.AreaID)
			assert.Equal(t, "device-token", u.DeviceToken)
			return nil
		})

	profile, err := svc.RegisterDevice(ctx, user.ID, " area-1 ", "\tdevice-token ", "")
	require.NoError(t, err)
	assert.Equal(t, "area-1", profile.AreaID)
}

func TestRegisterDevice_BlankArea(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().UpdateDevice(gomock.Any(), gomock.Any()).Times(0)

	profile, err := svc.RegisterDevice(context.Background(), uuid.New(), "   ", "device-token", "")
	require.Error(t, err)
	assert.Nil(t, profile)
	assert.True(t, apperr.Is(err, apperr.KindBadRequest))
}
