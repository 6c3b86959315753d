package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	requireAuth := AuthMiddleware(h.tokens, h.logger)

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/refresh", h.refresh)
		auth.POST("/logout", requireAuth, h.logout)
		auth.GET("/me", requireAuth, h.me)
	}

	api.POST("/users/device", requireAuth, h.registerDevice)

	alerts := api.Group("/alerts", requireAuth)
	{
		alerts.POST("/trigger", h.triggerAlert)
		alerts.GET("", h.listEvents)
		alerts.GET("/:eventId", h.getEvent)
	}

	api.POST("/responses", requireAuth, h.submitResponse)

	api.GET("/dashboard/events/:eventId", requireAuth, h.getEventStatus)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
