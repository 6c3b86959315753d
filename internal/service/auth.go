package service

//go:generate mockgen -source=auth.go -destination=mocks/mock_auth.go -package=mocks

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/rollcall/internal/apperr"
	"github.com/shenikar/rollcall/internal/models"
	"github.com/shenikar/rollcall/internal/token"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// RefreshTokenRepository хранит хэш текущего refresh-токена, одна запись на пользователя
type RefreshTokenRepository interface {
	Upsert(ctx context.Context, userID uuid.UUID, tokenHash string) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.RefreshToken, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// TokenIssuer подписывает и проверяет токены
type TokenIssuer interface {
	IssuePair(userID uuid.UUID, email string) (*models.TokenPair, error)
	IssueAccess(userID uuid.UUID, email string) (string, error)
	VerifyRefresh(tokenString string) (*token.Claims, error)
}

// AuthService определяет контракт аутентификации
type AuthService interface {
	Register(ctx context.Context, input models.RegisterInput) (*models.AuthResult, error)
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	GetMe(ctx context.Context, userID uuid.UUID) (*models.PublicUser, error)
}

type authService struct {
	users      UserRepository
	tokens     RefreshTokenRepository
	issuer     TokenIssuer
	bcryptCost int
	logger     *logrus.Logger
}

func NewAuthService(users UserRepository, tokens RefreshTokenRepository, issuer TokenIssuer, bcryptCost int, logger *logrus.Logger) AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &authService{
		users:      users,
		tokens:     tokens,
		issuer:     issuer,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// maxPasswordBytes - предел bcrypt; считается в байтах, а не в символах
const maxPasswordBytes = 72

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register создает пользователя и выдает пару токенов
func (s *authService) Register(ctx context.Context, input models.RegisterInput) (*models.AuthResult, error) {
	email := normalizeEmail(input.Email)
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Register",
		"email":   email,
	})
	log.Info("Attempting to register a new user")

	if len([]byte(input.Password)) > maxPasswordBytes {
		log.Warn("Password exceeds bcrypt length limit")
		return nil, apperr.BadRequest("password must be at most 72 bytes")
	}

	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		log.Warn("Email already registered")
		return nil, apperr.Conflict("Email already registered")
	case !errors.Is(err, models.ErrNotFound):
		log.WithError(err).Error("Failed to look up user by email")
		return nil, apperr.Internal(fmt.Errorf("service: could not check email: %w", err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, apperr.Internal(fmt.Errorf("service: could not hash password: %w", err))
	}

	user := &models.User{
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		AreaID:       strings.TrimSpace(input.AreaID),
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			log.Warn("Email registered concurrently")
			return nil, apperr.Conflict("Email already registered")
		}
		log.WithError(err).Error("Failed to create user in repository")
		return nil, apperr.Internal(fmt.Errorf("service: could not create user: %w", err))
	}

	pair, err := s.issueAndStore(ctx, user)
	if err != nil {
		log.WithError(err).Error("Failed to issue tokens")
		return nil, err
	}

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return &models.AuthResult{User: user.Public(), Tokens: pair}, nil
}

// Login проверяет пароль и выдает новую пару токенов
func (s *authService) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	email = normalizeEmail(email)
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
		"email":   email,
	})
	log.Info("Login attempt")

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Login for unknown email")
			return nil, apperr.Unauthorized("Invalid credentials")
		}
		log.WithError(err).Error("Failed to get user by email")
		return nil, apperr.Internal(fmt.Errorf("service: could not get user: %w", err))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Password mismatch")
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	pair, err := s.issueAndStore(ctx, user)
	if err != nil {
		log.WithError(err).Error("Failed to issue tokens")
		return nil, err
	}

	log.WithField("user_id", user.ID).Info("User logged in")
	return &models.AuthResult{User: user.Public(), Tokens: pair}, nil
}

// Refresh выдает новый access-токен. Refresh-токен не ротируется.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Refresh",
	})

	claims, err := s.issuer.VerifyRefresh(refreshToken)
	if err != nil {
		log.WithError(err).Warn("Refresh token verification failed")
		return "", apperr.Unauthorized("Invalid or expired refresh token")
	}
	log = log.WithField("user_id", claims.UserID)

	stored, err := s.tokens.GetByUserID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Refresh token revoked")
			return "", apperr.Unauthorized("Refresh token revoked")
		}
		log.WithError(err).Error("Failed to get stored refresh token")
		return "", apperr.Internal(fmt.Errorf("service: could not get refresh token: %w", err))
	}

	if subtle.ConstantTimeCompare([]byte(stored.TokenHash), []byte(token.HashToken(refreshToken))) != 1 {
		log.Warn("Refresh token does not match stored hash")
		return "", apperr.Unauthorized("Invalid refresh token")
	}

	access, err := s.issuer.IssueAccess(claims.UserID, claims.Email)
	if err != nil {
		log.WithError(err).Error("Failed to issue access token")
		return "", apperr.Internal(err)
	}

	log.Info("Access token refreshed")
	return access, nil
}

// Logout удаляет сохраненный хэш refresh-токена; повторный вызов не ошибка
func (s *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Logout",
		"user_id": userID,
	})

	if err := s.tokens.Delete(ctx, userID); err != nil {
		log.WithError(err).Error("Failed to delete refresh token")
		return apperr.Internal(fmt.Errorf("service: could not logout: %w", err))
	}

	log.Info("User logged out")
	return nil
}

func (s *authService) GetMe(ctx context.Context, userID uuid.UUID) (*models.PublicUser, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to get user profile")
		return nil, apperr.Internal(fmt.Errorf("service: could not get user: %w", err))
	}
	return user.Public(), nil
}

func (s *authService) issueAndStore(ctx context.Context, user *models.User) (*models.TokenPair, error) {
	pair, err := s.issuer.IssuePair(user.ID, user.Email)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("service: could not issue tokens: %w", err))
	}
	if err := s.tokens.Upsert(ctx, user.ID, token.HashToken(pair.RefreshToken)); err != nil {
		return nil, apperr.Internal(fmt.Errorf("service: could not store refresh token: %w", err))
	}
	return pair, nil
}
