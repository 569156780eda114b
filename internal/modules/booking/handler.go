package booking

import (
	"errors"
	"net/http"

	"mentorhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		var missing *MissingFieldError
		switch {
		case errors.As(err, &missing):
			response.Error(c, http.StatusBadRequest, "MISSING_FIELD", missing.Error())
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking date or time")
		case errors.Is(err, ErrSlotNotFound):
			response.Error(c, http.StatusNotFound, "SLOT_NOT_FOUND", "Availability period not found")
		case errors.Is(err, ErrSlotTaken):
			response.Error(c, http.StatusConflict, "SLOT_ALREADY_BOOKED", "This slot has already been booked")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.SuccessWithWarnings(c, http.StatusCreated, gin.H{
		"message": "Session booked",
		"session": result.Session,
		"meeting": result.Meeting,
	}, result.Warnings)
}
