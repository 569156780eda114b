package session

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/sessions")
	{
		g.GET("", h.List)
		g.POST("", h.Create)
		g.GET("/:id", h.Get)
		g.GET("/:id/calendar.ics", h.Calendar)
		g.PATCH("/:id/start", h.Start)
		g.PATCH("/:id/complete", h.Complete)
		g.PATCH("/:id/cancel", h.Cancel)
	}
}

func (h *Handler) List(c *gin.Context) {
	mentorID, _ := strconv.ParseInt(c.Query("mentorId"), 10, 64)
	menteeID, _ := strconv.ParseInt(c.Query("menteeId"), 10, 64)

	sessions, err := h.service.List(c.Request.Context(), mentorID, menteeID)
	if err != nil {
		if errors.Is(err, ErrFilterRequired) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Provide exactly one of mentorId or menteeId")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list sessions")
		return
	}

	response.Success(c, http.StatusOK, sessions)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	session, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid session time range")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create session")
		return
	}

	response.Success(c, http.StatusCreated, session)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid session ID")
		return
	}

	session, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, session)
}

func (h *Handler) Calendar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid session ID")
		return
	}

	body, err := h.service.CalendarFile(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="session.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}

func (h *Handler) Start(c *gin.Context) {
	h.lifecycle(c, func(id int64) (any, error) {
		return h.service.Start(c.Request.Context(), id)
	})
}

func (h *Handler) Complete(c *gin.Context) {
	h.lifecycle(c, func(id int64) (any, error) {
		return h.service.Complete(c.Request.Context(), id)
	})
}

func (h *Handler) Cancel(c *gin.Context) {
	var req CancelSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	h.lifecycle(c, func(id int64) (any, error) {
		return h.service.Cancel(c.Request.Context(), id, c.GetInt64("user_id"), req.Reason)
	})
}

func (h *Handler) lifecycle(c *gin.Context, fn func(id int64) (any, error)) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid session ID")
		return
	}

	session, err := fn(id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, session)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Session not found")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Session cannot change to that status")
	case errors.Is(err, ErrReasonRequired):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cancellation reason is required")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Session operation failed")
	}
}
