package chat

import "mentorhub/internal/domain"

type CreateConversationRequest struct {
	PeerID    int64  `json:"peer_id" binding:"required"`
	SessionID *int64 `json:"session_id"`
	Message   string `json:"message"`
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// WSEvent is the frame pushed to connected websocket clients.
type WSEvent struct {
	Type    string          `json:"type"`
	Message *domain.Message `json:"message,omitempty"`
}
