package review

import (
	"errors"
	"net/http"
	"strconv"

	"mentorhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/mentors/:id/reviews", h.ListByMentor)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/reviews", h.Create)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be between 1 and 5")
		case errors.Is(err, ErrSessionNotFound):
			response.Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "Session not found")
		case errors.Is(err, ErrNotYourSession):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only review your own sessions")
		case errors.Is(err, ErrSessionNotCompleted):
			response.Error(c, http.StatusConflict, "SESSION_NOT_COMPLETED", "Only completed sessions can be reviewed")
		case errors.Is(err, ErrAlreadyReviewed):
			response.Error(c, http.StatusConflict, "ALREADY_REVIEWED", "This session already has a review")
		default:
			response.Error(c, http.StatusInternalServerError, "REVIEW_FAILED", "Failed to create review")
		}
		return
	}

	response.SuccessWithWarnings(c, http.StatusCreated, result.Review, result.Warnings)
}

func (h *Handler) ListByMentor(c *gin.Context) {
	mentorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Mentor id must be numeric")
		return
	}

	var q ListReviewsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	reviews, err := h.service.ListByMentor(c.Request.Context(), mentorID, q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list reviews")
		return
	}

	response.Success(c, http.StatusOK, reviews)
}
