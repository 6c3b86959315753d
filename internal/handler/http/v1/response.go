package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/rollcall/internal/apperr"
	"github.com/sirupsen/logrus"
)

// ErrorBody - тело ошибки в конверте ответа
type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope - конверт неуспешного ответа
type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// respondOK отправляет {success: true, ...payload}
func respondOK(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// respondError отправляет конверт ошибки; статус HTTP совпадает с error.status
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	appErr := apperr.From(err)
	status := appErr.Status()
	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{
		Success: false,
		Error: ErrorBody{
			Message: appErr.Message,
			Status:  status,
			Details: appErr.Details,
		},
	})
}

// FieldError - описание ошибки валидации одного поля
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.BadRequest(err.Error())
	}
	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return apperr.BadRequest("Validation failed").WithDetails(details)
}

// NotFound отвечает 404 на несопоставленные маршруты
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorEnvelope{
		Success: false,
		Error: ErrorBody{
			Message: "Route not found",
			Status:  http.StatusNotFound,
		},
	})
}
