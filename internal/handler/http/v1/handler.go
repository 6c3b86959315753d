package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/rollcall/internal/apperr"
	"github.com/shenikar/rollcall/internal/service"
	"github.com/sirupsen/logrus"
)

// Services - сервисы, которые обслуживает HTTP API
type Services struct {
	Auth      service.AuthService
	User      service.UserService
	Alert     service.AlertService
	Response  service.ResponseService
	Dashboard service.DashboardService
}

type Handler struct {
	authService      service.AuthService
	userService      service.UserService
	alertService     service.AlertService
	responseService  service.ResponseService
	dashboardService service.DashboardService
	tokens           AccessTokenVerifier
	logger           *logrus.Logger
	validate         *validator.Validate
}

func NewHandler(services Services, tokens AccessTokenVerifier, logger *logrus.Logger) *Handler {
	return &Handler{
		authService:      services.Auth,
		userService:      services.User,
		alertService:     services.Alert,
		responseService:  services.Response,
		dashboardService: services.Dashboard,
		tokens:           tokens,
		logger:           logger,
		validate:         validator.New(),
	}
}

// bindAndValidate разбирает JSON-тело и проверяет его теги validate.
// При ошибке ответ уже отправлен и возвращается false.
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		respondError(c, log, apperr.BadRequest("invalid request body"))
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		respondError(c, log, validationError(err))
		return false
	}
	return true
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]any "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	respondOK(c, http.StatusOK, gin.H{"status": "ok"})
}
