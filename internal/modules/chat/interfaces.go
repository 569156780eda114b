package chat

import (
	"context"

	"mentorhub/internal/domain"
)

type ChatRepository interface {
	CreateConversation(ctx context.Context, c *domain.Conversation) error
	GetConversation(ctx context.Context, id int64) (*domain.Conversation, error)
	GetConversationByParticipants(ctx context.Context, a, b int64) (*domain.Conversation, error)
	ListConversations(ctx context.Context, userID int64) ([]domain.Conversation, error)
	CreateMessage(ctx context.Context, msg *domain.Message) error
	ListMessages(ctx context.Context, conversationID int64, limit int) ([]domain.Message, error)
	MarkRead(ctx context.Context, conversationID, readerID int64) error
	CountUnread(ctx context.Context, conversationID, readerID int64) (int64, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type MentorDirectory interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.MentorProfile, error)
}

type Notifier interface {
	NotifyNewMessage(ctx context.Context, userID, conversationID int64, senderName string) error
}
