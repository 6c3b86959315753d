package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/rollcall/internal/apperr"
	"github.com/shenikar/rollcall/internal/models"
)

// @Summary Trigger an alert
// @Description Create an alert event for the area and push it to every member device.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body TriggerAlertRequest true "Alert trigger request"
// @Success 201 {object} TriggerAlertResponse
// @Failure 400 {object} ErrorEnvelope "areaId is required"
// @Failure 401 {object} ErrorEnvelope "Unauthorized"
// @Failure 500 {object} ErrorEnvelope "Internal server error"
// @Router /alerts/trigger [post]
func (h *Handler) triggerAlert(c *gin.Context) {
	var input TriggerAlertRequest
	log := h.requestLogger(c, "triggerAlert")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	var triggeredBy *uuid.UUID
	if user, ok := currentUser(c); ok {
		triggeredBy = &user.UserID
	}

	result, err := h.alertService.TriggerAlert(c.Request.Context(), input.AreaID, triggeredBy)
	if err != nil {
		respondError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, TriggerAlertResponse{
		Success: true,
		Event:   ModelToAlertEventResponse(result.Event),
		Push:    result.Push,
	})
}

// @Summary List alert events
// @Description Paginated list of alert events, newest first.
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Param areaId query string false "Filter by area"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]any "events"
// @Failure 401 {object} ErrorEnvelope "Unauthorized"
// @Failure 500 {object} ErrorEnvelope "Internal server error"
// @Router /alerts [get]
func (h *Handler) listEvents(c *gin.Context) {
	log := h.requestLogger(c, "listEvents")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	events, err := h.alertService.ListEvents(c.Request.Context(), c.Query("areaId"), page, pageSize)
	if err != nil {
		respondError(c, log, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"events": ModelsToAlertEventResponses(events)})
}

// @Summary Get alert event by ID
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Alert event ID"
// @Success 200 {object} map[string]any "event"
// @Failure 400 {object} ErrorEnvelope "Invalid event ID"
// @Failure 401 {object} ErrorEnvelope "Unauthorized"
// @Failure 404 {object} ErrorEnvelope "Alert event not found"
// @Router /alerts/{eventId} [get]
func (h *Handler) getEvent(c *gin.Context) {
	log := h.requestLogger(c, "getEvent")

	id, ok := parseEventID(c)
	if !ok {
		respondError(c, log, apperr.BadRequest("invalid event ID"))
		return
	}

	event, err := h.alertService.GetEvent(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"event": ModelToAlertEventResponse(event)})
}

// @Summary Submit a response
// @Description Record or overwrite the current user's OK/HELP answer to an alert event.
// @Tags Responses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body SubmitResponseRequest true "Response request"
// @Success 200 {object} map[string]any "response"
// @Failure 400 {object} ErrorEnvelope "Validation error"
// @Failure 401 {object} ErrorEnvelope "Unauthorized"
// @Failure 404 {object} ErrorEnvelope "Alert event not found"
// @Router /responses [post]
func (h *Handler) submitResponse(c *gin.Context) {
	var input SubmitResponseRequest
	log := h.requestLogger(c, "submitResponse")

	user, ok := currentUser(c)
	if !ok {
		respondError(c, log, apperr.Unauthorized("Authorization token required"))
		return
	}

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	eventID, err := uuid.Parse(input.EventID)
	if err != nil {
		respondError(c, log, apperr.BadRequest("invalid event ID"))
		return
	}

	response, err := h.responseService.SubmitResponse(c.Request.Context(), user.UserID, eventID, models.ResponseStatus(input.Status))
	if err != nil {
		respondError(c, log, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"response": ModelToResponseDTO(response)})
}

// @Summary Event dashboard
// @Description Per-member OK/HELP/PENDING status and counts for an alert event.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Alert event ID"
// @Success 200 {object} EventStatusResponse
// @Failure 400 {object} ErrorEnvelope "Invalid event ID"
// @Failure 401 {object} ErrorEnvelope "Unauthorized"
// @Failure 404 {object} ErrorEnvelope "Alert event not found"
// @Router /dashboard/events/{eventId} [get]
func (h *Handler) getEventStatus(c *gin.Context) {
	log := h.requestLogger(c, "getEventStatus")

	id, ok := parseEventID(c)
	if !ok {
		respondError(c, log, apperr.BadRequest("invalid event ID"))
		return
	}

	status, err := h.dashboardService.GetEventStatus(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToEventStatusResponse(status))
}

func parseEventID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
