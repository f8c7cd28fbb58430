package racers

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

// RegisterRoutes attaches racer routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/racers", h.create)
	rg.GET("/racers", h.list)
	rg.GET("/racers/:racer_id", h.get)
	rg.PUT("/racers/:racer_id", h.update)
	rg.DELETE("/racers/:racer_id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	racer, err := h.Svc.CreateRacer(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "failed to create racer")
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(racer))
}

func (h *Handler) list(c *gin.Context) {
	racersList, err := h.Svc.ListRacers(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "failed to list racers")
		return
	}

	resp := make([]RacerResponse, 0, len(racersList))
	for _, racer := range racersList {
		resp = append(resp, toResponse(racer))
	}
	respond.OK(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	racerID := c.Param("racer_id")

	racer, err := h.Svc.GetRacer(c.Request.Context(), racerID)
	if err != nil {
		h.writeError(c, err, "failed to fetch racer")
		return
	}

	respond.OK(c, toResponse(racer))
}

func (h *Handler) update(c *gin.Context) {
	racerID := c.Param("racer_id")

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	racer, err := h.Svc.UpdateRacer(c.Request.Context(), racerID, req)
	if err != nil {
		h.writeError(c, err, "failed to update racer")
		return
	}

	respond.OK(c, toResponse(racer))
}

func (h *Handler) delete(c *gin.Context) {
	racerID := c.Param("racer_id")

	if err := h.Svc.DeleteRacer(c.Request.Context(), racerID); err != nil {
		h.writeError(c, err, "failed to delete racer")
		return
	}

	respond.OK(c, gin.H{"message": fmt.Sprintf("Racer %s deleted successfully", racerID)})
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
