package achievement

import (
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

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/achievements", h.List)
}

func (h *Handler) List(c *gin.Context) {
	achievements, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list achievements")
		return
	}

	response.Success(c, http.StatusOK, achievements)
}
