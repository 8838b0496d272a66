package handlers

import (
	"net/http"

	"club-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EventHandler handles HTTP requests for events
type EventHandler struct {
	eventService service.EventServiceInterface
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService service.EventServiceInterface) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// CreateEvent creates a new event
// @Summary Create a new event
// @Tags events
// @Accept json
// @Produce json
// @Param event body service.CreateEventRequest true "Event data"
// @Success 201 {object} APIResponse{data=service.EventResponse} "Event created"
// @Failure 400 {object} APIResponse "Invalid request body"
// @Security BearerAuth
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	event, err := h.eventService.Create(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, "event created", event)
}

// GetEvent retrieves an event by ID
// @Summary Get event by ID
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} APIResponse{data=service.EventResponse} "Event retrieved"
// @Failure 400 {object} APIResponse "Invalid event ID"
// @Failure 404 {object} APIResponse "Event not found"
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "event retrieved", event)
}

// ListEvents retrieves events with pagination
// @Summary List events
// @Tags events
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} APIResponse{data=service.EventListResponse} "Events retrieved"
// @Router /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	page, pageSize := paginationParams(c)

	events, err := h.eventService.GetAll(page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "events retrieved", events)
}

// UpdateEvent applies a partial update to an event
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param event body service.UpdateEventRequest true "Fields to update"
// @Success 200 {object} APIResponse{data=service.EventResponse} "Event updated"
// @Failure 400 {object} APIResponse "Invalid request body"
// @Failure 404 {object} APIResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id} [patch]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	event, err := h.eventService.Update(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "event updated", event)
}

// DeleteEvent removes an event
// @Summary Delete an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} APIResponse "Event deleted"
// @Failure 404 {object} APIResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.eventService.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "event deleted", nil)
}
