package v1

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/rollcall/internal/apperr"
	"github.com/shenikar/rollcall/internal/token"
	"github.com/sirupsen/logrus"
)

const (
	authUserKey     = "auth_user"
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-Id"
)

// AccessTokenVerifier проверяет access-токен
type AccessTokenVerifier interface {
	VerifyAccess(tokenString string) (*token.Claims, error)
}

// AuthUser - аутентифицированный пользователь запроса
type AuthUser struct {
	UserID uuid.UUID
	Email  string
}

// AuthMiddleware - middleware для аутентификации по Bearer access-токену
func AuthMiddleware(tokens AccessTokenVerifier, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		entry := log.WithField("middleware", "auth")

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			entry.Debug("Bearer token missing from request")
			respondError(c, entry, apperr.Unauthorized("Authorization token required"))
			return
		}

		claims, err := tokens.VerifyAccess(strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")))
		if err != nil {
			entry.WithError(err).Warn("Invalid access token")
			respondError(c, entry, apperr.Unauthorized("Invalid or expired token"))
			return
		}

		c.Set(authUserKey, AuthUser{UserID: claims.UserID, Email: claims.Email})
		c.Next()
	}
}

// RequestID присваивает запросу идентификатор из X-Request-Id или генерирует новый
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Header(requestIDHeader, rid)
		c.Next()
	}
}

// currentUser возвращает пользователя, сохраненного AuthMiddleware
func currentUser(c *gin.Context) (AuthUser, bool) {
	v, ok := c.Get(authUserKey)
	if !ok {
		return AuthUser{}, false
	}
	u, ok := v.(AuthUser)
	return u, ok
}

// requestLogger возвращает логгер с методом хэндлера и идентификатором запроса
func (h *Handler) requestLogger(c *gin.Context, method string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"method":     method,
		"request_id": c.GetString(requestIDKey),
	})
}
