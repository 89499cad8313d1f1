package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oclock/event_backend/internal/apperrors"
	"github.com/oclock/event_backend/internal/core/domain"
	"github.com/oclock/event_backend/internal/dto"
	"github.com/oclock/event_backend/internal/middleware"

	portssvc "github.com/oclock/event_backend/internal/core/ports/services"
)

// EventHandler handles event lookups and the manager mutation workflow.
type EventHandler struct {
	eventService portssvc.EventSvcFacade
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(es portssvc.EventSvcFacade) *EventHandler {
	return &EventHandler{eventService: es}
}

// registerEventRoutes sets up the event routes inside the authenticated group.
// Lookups accept any authenticated principal, mutations require the manager
// role, and the unconditional delete is reserved for admins.
func registerEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade) {
	h := NewEventHandler(eventService)

	events := rg.Group("/events", middleware.RequireRoles())
	{
		events.GET("", h.ListEvents)
		events.GET("/event/:id", h.GetEvent)
		events.GET("/category/:category", h.ListEventsByCategory)
		events.GET("/location/:locationID", h.ListEventsByLocation)
		events.GET("/manager/:managerID", h.ListEventsByManager)
		events.GET("/date-range", h.ListEventsByDateRange)

		manager := events.Group("", middleware.RequireRoles(domain.RoleManager))
		{
			manager.POST("", h.CreateEvent)
			manager.PATCH("/event/:id", h.UpdateEvent)
			manager.PUT("/event/:id/sponsors", h.UpdateSponsors)
			manager.POST("/event/:id/sponsors", h.AddSponsors)
			manager.DELETE("/event/:id/sponsors", h.RemoveSponsors)
			manager.PUT("/event/:id/location", h.UpdateLocation)
			manager.DELETE("/event/:id", h.DeleteEvent)
		}

		admin := events.Group("", middleware.RequireRoles(domain.RoleAdmin))
		{
			admin.DELETE("/event-admin/:id", h.DeleteEventAsAdmin)
		}
	}
}

func parseEventID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{ErrorCode: apperrors.CodeBadRequest, Message: "invalid identifier: " + c.Param(param)})
		return 0, false
	}
	return id, true
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event owned by the calling manager, reconciling the nested location and sponsors.
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	principal, _ := middleware.GetPrincipalFromContext(c)
	resp, err := h.eventService.CreateEvent(c.Request.Context(), req, principal.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetEvent godoc
// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /events/event/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := parseEventID(c, "id")
	if !ok {
		return
	}
	resp, err := h.eventService.GetEventByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListEvents godoc
// @Summary List all events
// @Tags events
// @Produce json
// @Success 200 {array} dto.EventResponse
// @Security BearerAuth
// @Router /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	resp, err := h.eventService.GetAllEvents(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListEventsByCategory godoc
// @Summary List events in a category
// @Description The category is matched by its display name, case-insensitively.
// @Tags events
// @Produce json
// @Param category path string true "Category display name"
// @Success 200 {array} dto.EventResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /events/category/{category} [get]
func (h *EventHandler) ListEventsByCategory(c *gin.Context) {
	resp, err := h.eventService.GetEventsByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListEventsByLocation godoc
// @Summary List events at a location
// @Tags events
// @Produce json
// @Param locationID path int true "Location ID"
// @Success 200 {array} dto.EventResponse
// @Security BearerAuth
// @Router /events/location/{locationID} [get]
func (h *EventHandler) ListEventsByLocation(c *gin.Context) {
	id, ok := parseEventID(c, "locationID")
	if !ok {
		return
	}
	resp, err := h.eventService.GetEventsByLocation(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListEventsByManager godoc
// @Summary List events run by a manager
// @Tags events
// @Produce json
// @Param managerID path string true "Manager user ID"
// @Success 200 {array} dto.EventResponse
// @Security BearerAuth
// @Router /events/manager/{managerID} [get]
func (h *EventHandler) ListEventsByManager(c *gin.Context) {
	resp, err := h.eventService.GetEventsByManager(c.Request.Context(), c.Param("managerID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListEventsByDateRange godoc
// @Summary List events starting within a date range
// @Tags events
// @Produce json
// @Param startDate query string true "Range start (RFC 3339)"
// @Param endDate query string true "Range end (RFC 3339)"
// @Success 200 {array} dto.EventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /events/date-range [get]
func (h *EventHandler) ListEventsByDateRange(c *gin.Context) {
	start, okStart := parseDateParam(c, "startDate")
	if !okStart {
		return
	}
	end, okEnd := parseDateParam(c, "endDate")
	if !okEnd {
		return
	}
	resp, err := h.eventService.GetEventsByDateRange(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// parseDateParam reads an optional RFC 3339 query parameter. A present but
// unparseable value is a client error; an absent one is passed through as nil
// so the service can decide whether the bound is required.
func parseDateParam(c *gin.Context, name string) (*time.Time, bool) {
	raw, exists := c.GetQuery(name)
	if !exists || raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{ErrorCode: apperrors.CodeInvalidDateFormat, Message: "invalid date format for " + name + ", expected RFC 3339"})
		return nil, false
	}
	return &t, true
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Applies the provided fields to the event. Omitted fields keep their value.
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param event body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /events/event/{id} [patch]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, ok := parseEventID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	resp, err := h.eventService.UpdateEventByID(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateSponsors godoc
// @Summary Refresh sponsors already associated with an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param sponsors body []dto.SponsorDto true "Sponsors to refresh"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /events/event/{id}/sponsors [put]
func (h *EventHandler) UpdateSponsors(c *gin.Context) {
	id, ok := parseEventID(c, "id")
	if !ok {
		return
	}
	var sponsors []dto.SponsorDto
	if err := c.ShouldBindJSON(&sponsors); err != nil {
		respondBindingError(c, err)
		return
	}
	resp, err := h.eventService.UpdateSponsors(c.Request.Context(), id, sponsors)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AddSponsors godoc
// @Summary Add sponsors to an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param sponsors body []dto.SponsorDto true "Sponsors to add"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /events/event/{id}/sponsors [post]
func (h *EventHandler) AddSponsors(c *gin.Context) {
	id, ok := parseEventID(c, "id")
	if !ok {
		return
	}
	var sponsors []dto.SponsorDto
	if err := c.ShouldBindJSON(&sponsors); err != nil {
		respondBindingError(c, err)
		return
	}
	resp, err := h.eventService.AddSponsorsToEvent(c.Request.Context(), id, sponsors)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RemoveSponsors godoc
// @Summary Remove sponsors from an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param sponsorIds body dto.RemoveSponsorsRequest true "Sponsor IDs to remove"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /events/event/{id}/sponsors [delete]
func (h *EventHandler) RemoveSponsors(c *gin.Context) {
	id, ok := parseEventID(c, "id")
	if !ok {
		return
	}
	var req dto.RemoveSponsorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	resp, err := h.eventService.RemoveSponsorsFromEvent(c.Request.Context(), id, req.SponsorIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateLocation godoc
// @Summary Update the location of an event
// @Description With a location ID, merges the non-empty fields into the stored location. Without one, creates a new location and points the event at it.
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param location body dto.EventLocationDto true "Location details"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /events/event/{id}/location [put]
func (h *EventHandler) UpdateLocation(c *gin.Context) {
	id, ok := parseEventID(c, "id")
	if !ok {
		return
	}
	var location dto.EventLocationDto
	if err := c.ShouldBindJSON(&location); err != nil {
		respondBindingError(c, err)
		return
	}
	resp, err := h.eventService.UpdateEventLocation(c.Request.Context(), id, location)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteEvent godoc
// @Summary Delete an owned event
// @Description Deletes the event if the calling manager owns it.
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 204
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /events/event/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := parseEventID(c, "id")
	if !ok {
		return
	}
	principal, _ := middleware.GetPrincipalFromContext(c)
	if err := h.eventService.DeleteManagerEventByID(c.Request.Context(), id, principal.Email); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteEventAsAdmin godoc
// @Summary Delete any event
// @Description Deletes the event regardless of ownership.
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /events/event-admin/{id} [delete]
func (h *EventHandler) DeleteEventAsAdmin(c *gin.Context) {
	id, ok := parseEventID(c, "id")
	if !ok {
		return
	}
	if err := h.eventService.DeleteEventByID(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
