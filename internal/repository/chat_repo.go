package repository

import (
	"context"
	"time"

	"mentorhub/internal/domain"

	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

type conversationModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	ParticipantA int64     `gorm:"column:participant_a;uniqueIndex:idx_participants"`
	ParticipantB int64     `gorm:"column:participant_b;uniqueIndex:idx_participants"`
	SessionID    *int64    `gorm:"column:session_id"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (conversationModel) TableName() string { return "conversations" }

type messageModel struct {
	ID             int64      `gorm:"column:id;primaryKey"`
	ConversationID int64      `gorm:"column:conversation_id;index"`
	SenderID       int64      `gorm:"column:sender_id"`
	Content        string     `gorm:"column:content"`
	ReadAt         *time.Time `gorm:"column:read_at"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
}

func (messageModel) TableName() string { return "messages" }

func toDomainConversation(m conversationModel) *domain.Conversation {
	return &domain.Conversation{
		ID:           m.ID,
		ParticipantA: m.ParticipantA,
		ParticipantB: m.ParticipantB,
		SessionID:    m.SessionID,
		CreatedAt:    m.CreatedAt,
	}
}

func toDomainMessage(m messageModel) domain.Message {
	return domain.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Content:        m.Content,
		ReadAt:         m.ReadAt,
		CreatedAt:      m.CreatedAt,
	}
}

func (r *ChatRepository) CreateConversation(ctx context.Context, c *domain.Conversation) error {
	m := conversationModel{
		ParticipantA: c.ParticipantA,
		ParticipantB: c.ParticipantB,
		SessionID:    c.SessionID,
	}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainConversation(m)
	return nil
}

func (r *ChatRepository) GetConversation(ctx context.Context, id int64) (*domain.Conversation, error) {
	var m conversationModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainConversation(m), nil
}

// GetConversationByParticipants expects a normalized pair (a < b).
func (r *ChatRepository) GetConversationByParticipants(ctx context.Context, a, b int64) (*domain.Conversation, error) {
	var m conversationModel
	tx := r.db.WithContext(ctx).
		Where("participant_a = ? AND participant_b = ?", a, b).
		First(&m)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainConversation(m), nil
}

func (r *ChatRepository) ListConversations(ctx context.Context, userID int64) ([]domain.Conversation, error) {
	var rows []conversationModel
	tx := r.db.WithContext(ctx).
		Where("participant_a = ? OR participant_b = ?", userID, userID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Conversation, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainConversation(m))
	}
	return out, nil
}

func (r *ChatRepository) CreateMessage(ctx context.Context, msg *domain.Message) error {
	m := messageModel{
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		Content:        msg.Content,
	}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*msg = toDomainMessage(m)
	return nil
}

func (r *ChatRepository) ListMessages(ctx context.Context, conversationID int64, limit int) ([]domain.Message, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var rows []messageModel
	tx := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	// reverse to chronological order
	out := make([]domain.Message, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		out = append(out, toDomainMessage(rows[i]))
	}
	return out, nil
}

func (r *ChatRepository) MarkRead(ctx context.Context, conversationID, readerID int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&messageModel{}).
		Where("conversation_id = ? AND sender_id <> ? AND read_at IS NULL", conversationID, readerID).
		Update("read_at", now).Error
}

func (r *ChatRepository) CountUnread(ctx context.Context, conversationID, readerID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&messageModel{}).
		Where("conversation_id = ? AND sender_id <> ? AND read_at IS NULL", conversationID, readerID).
		Count(&cnt)
	return cnt, tx.Error
}
