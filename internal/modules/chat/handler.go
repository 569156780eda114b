package chat

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

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	chatGroup := protected.Group("/chat")
	{
		chatGroup.POST("/conversations", h.CreateConversation)
		chatGroup.GET("/conversations", h.ListConversations)
		chatGroup.GET("/conversations/:id/messages", h.ListMessages)
		chatGroup.POST("/conversations/:id/messages", h.SendMessage)
		chatGroup.POST("/conversations/:id/read", h.MarkRead)
	}
}

func (h *Handler) CreateConversation(c *gin.Context) {
	var req CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	conv, first, err := h.service.GetOrCreateConversation(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSelfConversation):
			response.Error(c, http.StatusBadRequest, "SELF_CONVERSATION", "Cannot start a conversation with yourself")
		case errors.Is(err, ErrPeerNotFound):
			response.Error(c, http.StatusNotFound, "PEER_NOT_FOUND", "Peer user not found")
		default:
			response.Error(c, http.StatusInternalServerError, "CHAT_FAILED", "Failed to open conversation")
		}
		return
	}

	out := gin.H{"conversation": conv}
	if first != nil {
		out["initial_message"] = first
	}
	response.Success(c, http.StatusCreated, out)
}

func (h *Handler) ListConversations(c *gin.Context) {
	convs, err := h.service.ListConversations(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list conversations")
		return
	}

	response.Success(c, http.StatusOK, convs)
}

func (h *Handler) ListMessages(c *gin.Context) {
	convID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Conversation id must be numeric")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	messages, err := h.service.ListMessages(c.Request.Context(), c.GetInt64("user_id"), convID, limit)
	if err != nil {
		h.writeConversationError(c, err)
		return
	}

	response.Success(c, http.StatusOK, messages)
}

func (h *Handler) SendMessage(c *gin.Context) {
	convID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Conversation id must be numeric")
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	msg, warnings, err := h.service.SendMessage(c.Request.Context(), c.GetInt64("user_id"), convID, req.Content)
	if err != nil {
		if errors.Is(err, ErrEmptyMessage) {
			response.Error(c, http.StatusBadRequest, "EMPTY_MESSAGE", "Message content is empty")
			return
		}
		h.writeConversationError(c, err)
		return
	}

	response.SuccessWithWarnings(c, http.StatusCreated, msg, warnings)
}

func (h *Handler) MarkRead(c *gin.Context) {
	convID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Conversation id must be numeric")
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), c.GetInt64("user_id"), convID); err != nil {
		h.writeConversationError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Conversation marked as read"})
}

func (h *Handler) writeConversationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "CONVERSATION_NOT_FOUND", "Conversation not found")
	case errors.Is(err, ErrNotParticipant):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not part of this conversation")
	default:
		response.Error(c, http.StatusInternalServerError, "CHAT_FAILED", "Chat operation failed")
	}
}
