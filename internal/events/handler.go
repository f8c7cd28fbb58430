package events

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"skiracer-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches event routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/racers/:racer_id/events", h.create)
	rg.GET("/racers/:racer_id/events", h.listForRacer)
	rg.GET("/events/:event_id", h.get)
	rg.PUT("/events/:event_id", h.update)
	rg.DELETE("/events/:event_id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	racerID := c.Param("racer_id")

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	event, err := h.Svc.CreateEvent(c.Request.Context(), racerID, req)
	if err != nil {
		h.writeError(c, err, "failed to create event")
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(event))
}

func (h *Handler) listForRacer(c *gin.Context) {
	racerID := c.Param("racer_id")

	eventsList, err := h.Svc.ListEvents(c.Request.Context(), racerID)
	if err != nil {
		h.writeError(c, err, "failed to list events")
		return
	}

	resp := make([]EventResponse, 0, len(eventsList))
	for _, event := range eventsList {
		resp = append(resp, toResponse(event))
	}
	respond.OK(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	eventID := c.Param("event_id")

	event, err := h.Svc.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		h.writeError(c, err, "failed to fetch event")
		return
	}

	respond.OK(c, toResponse(event))
}

func (h *Handler) update(c *gin.Context) {
	eventID := c.Param("event_id")

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	event, err := h.Svc.UpdateEvent(c.Request.Context(), eventID, req)
	if err != nil {
		h.writeError(c, err, "failed to update event")
		return
	}

	respond.OK(c, toResponse(event))
}

func (h *Handler) delete(c *gin.Context) {
	eventID := c.Param("event_id")

	if err := h.Svc.DeleteEvent(c.Request.Context(), eventID); err != nil {
		h.writeError(c, err, "failed to delete event")
		return
	}

	respond.OK(c, gin.H{"message": fmt.Sprintf("Event %s deleted successfully", eventID)})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
