package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/rollcall/internal/apperr"
	"github.com/shenikar/rollcall/internal/models"
	"github.com/shenikar/rollcall/internal/service/mocks"
	"github.com/shenikar/rollcall/internal/token"
	"github.com/shenikar/rollcall/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// newTestAuthService - вспомогательная функция для создания сервиса с моками и настоящим менеджером токенов.
func newTestAuthService(t *testing.T) (*authService, *mocks.MockUserRepository, *mocks.MockRefreshTokenRepository, *token.Manager) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	tokens := mocks.NewMockRefreshTokenRepository(ctrl)
	manager := token.NewManager("access-secret", "refresh-secret", 15*time.Minute, time.Hour)

	svc := NewAuthService(users, tokens, manager, bcrypt.MinCost, logger.Discard())
	return svc.(*authService), users, tokens, manager
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegister_Success(t *testing.T) {
	svc, users, tokens, manager := newTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	users.EXPECT().GetByEmail(ctx, "new@example.com").Return(nil, models.ErrNotFound)
	users.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			assert.Equal(t, "new@example.com", u.Email)
			assert.Equal(t, "area-1", u.AreaID)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))
			u.ID = userID
			return nil
		})

	var storedHash string
	tokens.EXPECT().
		Upsert(ctx, userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string) error {
			storedHash = hash
			return nil
		})

	res, err := svc.Register(ctx, models.RegisterInput{
		Email:    "  New@Example.com ",
		Password: "secret123",
		Name:     "New User",
		AreaID:   "area-1",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, res.User.ID)
	assert.Equal(t, token.HashToken(res.Tokens.RefreshToken), storedHash)

	claims, err := manager.VerifyAccess(res.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, users, tokens, _ := newTestAuthService(t)
	ctx := context.Background()

	users.EXPECT().GetByEmail(ctx, "taken@example.com").Return(&models.User{ID: uuid.New()}, nil)
	users.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	tokens.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	res, err := svc.Register(ctx, models.RegisterInput{Email: "taken@example.com", Password: "x", Name: "n"})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.Equal(t, 400, apperr.From(err).Status())
}

func TestRegister_DuplicateOnInsert(t *testing.T) {
	svc, users, tokens, _ := newTestAuthService(t)
	ctx := context.Background()

	users.EXPECT().GetByEmail(ctx, "race@example.com").Return(nil, models.ErrNotFound)
	users.EXPECT().Create(ctx, gomock.Any()).Return(models.ErrAlreadyExists)
	tokens.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Register(ctx, models.RegisterInput{Email: "race@example.com", Password: "x", Name: "n"})
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestRegister_PasswordTooLongInBytes(t *testing.T) {
	svc, users, tokens, _ := newTestAuthService(t)
	ctx := context.Background()

	users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Times(0)
	users.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	tokens.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// 40 символов, но 80 байт
	password := strings.Repeat("é", 40)
	res, err := svc.Register(ctx, models.RegisterInput{Email: "long@example.com", Password: password, Name: "n"})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, apperr.Is(err, apperr.KindBadRequest))
	assert.Equal(t, 400, apperr.From(err).Status())
}

func TestRegister_PasswordAtByteLimit(t *testing.T) {
	svc, users, tokens, _ := newTestAuthService(t)
	ctx := context.Background()

	users.EXPECT().GetByEmail(ctx, "edge@example.com").Return(nil, models.ErrNotFound)
	users.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			u.ID = uuid.New()
			return nil
		})
	tokens.EXPECT().Upsert(ctx, gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Register(ctx, models.RegisterInput{Email: "edge@example.com", Password: strings.Repeat("é", 36), Name: "n"})
	require.NoError(t, err)
	assert.NotNil(t, res.Tokens)
}

func TestLogin_Success(t *testing.T) {
	svc, users, tokens, _ := newTestAuthService(t)
	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Email: "a@example.com", PasswordHash: hashPassword(t, "pw")}

	users.EXPECT().GetByEmail(ctx, "a@example.com").Return(user, nil)
	tokens.EXPECT().Upsert(ctx, user.ID, gomock.Any()).Return(nil)

	res, err := svc.Login(ctx, "a@example.com", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Tokens.AccessToken)
	assert.NotEmpty(t, res.Tokens.RefreshToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, users, tokens, _ := newTestAuthService(t)
	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Email: "a@example.com", PasswordHash: hashPassword(t, "pw")}

	users.EXPECT().GetByEmail(ctx, "a@example.com").Return(user, nil)
	tokens.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Login(ctx, "a@example.com", "wrong")
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, users, _, _ := newTestAuthService(t)
	ctx := context.Background()

	users.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, models.ErrNotFound)

	_, err := svc.Login(ctx, "ghost@example.com", "pw")
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
}

func TestRefresh_Success(t *testing.T) {
	svc, _, tokens, manager := newTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()
	pair, err := manager.IssuePair(userID, "a@example.com")
	require.NoError(t, err)

	tokens.EXPECT().GetByUserID(ctx, userID).Return(&models.RefreshToken{
		UserID:    userID,
		TokenHash: token.HashToken(pair.RefreshToken),
	}, nil)

	access, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)

	claims, err := manager.VerifyAccess(access)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestRefresh_AfterLogout(t *testing.T) {
	svc, _, tokens, manager := newTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()
	pair, err := manager.IssuePair(userID, "a@example.com")
	require.NoError(t, err)

	tokens.EXPECT().Delete(ctx, userID).Return(nil)
	tokens.EXPECT().GetByUserID(ctx, userID).Return(nil, models.ErrNotFound)

	require.NoError(t, svc.Logout(ctx, userID))

	_, err = svc.Refresh(ctx, pair.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, 401, apperr.From(err).Status())
}

func TestRefresh_HashMismatch(t *testing.T) {
	svc, _, tokens, manager := newTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()
	old, err := manager.IssuePair(userID, "a@example.com")
	require.NoError(t, err)
	current, err := manager.IssuePair(userID, "a@example.com")
	require.NoError(t, err)

	tokens.EXPECT().GetByUserID(ctx, userID).Return(&models.RefreshToken{
		UserID:    userID,
		TokenHash: token.HashToken(current.RefreshToken),
	}, nil)

	_, err = svc.Refresh(ctx, old.RefreshToken)
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
}

func TestRefresh_InvalidToken(t *testing.T) {
	svc, _, tokens, manager := newTestAuthService(t)
	ctx := context.Background()
	pair, err := manager.IssuePair(uuid.New(), "a@example.com")
	require.NoError(t, err)

	tokens.EXPECT().GetByUserID(gomock.Any(), gomock.Any()).Times(0)

	// access-токен подписан другим секретом
	_, err = svc.Refresh(ctx, pair.AccessToken)
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
}

func TestLogout_RepositoryError(t *testing.T) {
	svc, _, tokens, _ := newTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	tokens.EXPECT().Delete(ctx, userID).Return(errors.New("db down"))

	err := svc.Logout(ctx, userID)
	assert.True(t, apperr.Is(err, apperr.KindInternal))
}

func TestGetMe(t *testing.T) {
	svc, users, _, _ := newTestAuthService(t)
	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Email: "a@example.com", Name: "A", PasswordHash: "hash"}

	users.EXPECT().GetByID(ctx, user.ID).Return(user, nil)
	profile, err := svc.GetMe(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", profile.Name)

	missing := uuid.New()
	users.EXPECT().GetByID(ctx, missing).Return(nil, models.ErrNotFound)
	_, err = svc.GetMe(ctx, missing)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}
