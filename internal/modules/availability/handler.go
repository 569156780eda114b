package availability

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"mentorhub/internal/domain"
	"mentorhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the read side: anyone browsing a mentor
// sees their calendar.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/mentors/:id/availability", h.ListOpen)
}

// RegisterProtectedRoutes exposes the mutations, mentor-only.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/mentors/:id/availability", h.CreatePeriod)
	rg.DELETE("/mentors/:id/availability/:periodID", h.DeletePeriod)
}

// ListOpen never errors to the caller: read failures are logged and the
// client gets an empty calendar.
func (h *Handler) ListOpen(c *gin.Context) {
	mentorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Success(c, http.StatusOK, []domain.AvailabilityPeriod{})
		return
	}

	periods, err := h.service.ListOpen(c.Request.Context(), mentorID)
	if err != nil {
		log.Printf("availability: list for mentor %d failed: %v", mentorID, err)
		response.Success(c, http.StatusOK, []domain.AvailabilityPeriod{})
		return
	}
	if periods == nil {
		periods = []domain.AvailabilityPeriod{}
	}

	response.Success(c, http.StatusOK, periods)
}

func (h *Handler) CreatePeriod(c *gin.Context) {
	mentorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid mentor ID")
		return
	}

	var req CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.CreatePeriod(c.Request.Context(), mentorID, c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) DeletePeriod(c *gin.Context) {
	mentorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid mentor ID")
		return
	}
	periodID, err := strconv.ParseInt(c.Param("periodID"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid period ID")
		return
	}

	if err := h.service.DeletePeriod(c.Request.Context(), mentorID, c.GetInt64("user_id"), periodID); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid availability period")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this mentor profile")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Availability period not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update availability")
	}
}
