package chat

import (
	"context"
	"errors"
	"strings"

	"mentorhub/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	repo    ChatRepository
	users   UserReader
	mentors MentorDirectory
	hub     *Hub
	notify  Notifier
}

func NewService(repo ChatRepository, users UserReader, mentors MentorDirectory, hub *Hub, notify Notifier) *Service {
	return &Service{
		repo:    repo,
		users:   users,
		mentors: mentors,
		hub:     hub,
		notify:  notify,
	}
}

// normalizePair orders the participants so one pair of users always
// maps to the same conversation row.
func normalizePair(a, b int64) (int64, int64) {
	if a < b {
		return a, b
	}
	return b, a
}

func peerOf(conv *domain.Conversation, userID int64) int64 {
	if conv.ParticipantA == userID {
		return conv.ParticipantB
	}
	return conv.ParticipantA
}

func isParticipant(conv *domain.Conversation, userID int64) bool {
	return conv.ParticipantA == userID || conv.ParticipantB == userID
}

// GetOrCreateConversation returns the existing conversation with the
// peer or creates one. An optional first message is sent in the same
// call.
func (s *Service) GetOrCreateConversation(ctx context.Context, userID int64, req CreateConversationRequest) (*domain.Conversation, *domain.Message, error) {
	if req.PeerID == userID {
		return nil, nil, ErrSelfConversation
	}
	if _, err := s.users.GetByID(ctx, req.PeerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrPeerNotFound
		}
		return nil, nil, err
	}

	a, b := normalizePair(userID, req.PeerID)
	conv, err := s.repo.GetConversationByParticipants(ctx, a, b)
	if err != nil {
		return nil, nil, err
	}
	if conv == nil {
		conv = &domain.Conversation{ParticipantA: a, ParticipantB: b, SessionID: req.SessionID}
		if err := s.repo.CreateConversation(ctx, conv); err != nil {
			return nil, nil, err
		}
	}

	var first *domain.Message
	if strings.TrimSpace(req.Message) != "" {
		msg, _, err := s.SendMessage(ctx, userID, conv.ID, req.Message)
		if err != nil {
			return nil, nil, err
		}
		first = msg
	}

	return conv, first, nil
}

// ListConversations decorates each conversation with the peer's
// profile snapshot, the latest message and the unread count.
func (s *Service) ListConversations(ctx context.Context, userID int64) ([]domain.Conversation, error) {
	convs, err := s.repo.ListConversations(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range convs {
		conv := &convs[i]
		conv.Peer = s.snapshotFor(ctx, peerOf(conv, userID))

		if last, err := s.repo.ListMessages(ctx, conv.ID, 1); err == nil && len(last) > 0 {
			m := last[len(last)-1]
			conv.LastMessage = &m
		}
		if cnt, err := s.repo.CountUnread(ctx, conv.ID, userID); err == nil {
			conv.UnreadCount = cnt
		}
	}
	return convs, nil
}

// snapshotFor is best-effort: a missing user still renders as an
// anonymous peer in the conversation list.
func (s *Service) snapshotFor(ctx context.Context, userID int64) *domain.ProfileSnapshot {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil
	}

	snap := &domain.ProfileSnapshot{Name: user.Name, Role: string(user.Role)}
	if user.Role == domain.RoleMentor {
		if profile, err := s.mentors.GetByUserID(ctx, userID); err == nil {
			snap.Company = profile.Company
			snap.ImageURL = profile.ImageURL
		}
	}
	return snap
}

func (s *Service) conversationFor(ctx context.Context, userID, conversationID int64) (*domain.Conversation, error) {
	conv, err := s.repo.GetConversation(ctx, conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !isParticipant(conv, userID) {
		return nil, ErrNotParticipant
	}
	return conv, nil
}

// SendMessage stores the message, pushes it to both live connections
// and leaves an in-app notification for an offline peer. Push and
// notification failures are reported as warnings.
func (s *Service) SendMessage(ctx context.Context, userID, conversationID int64, content string) (*domain.Message, []string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil, ErrEmptyMessage
	}

	conv, err := s.conversationFor(ctx, userID, conversationID)
	if err != nil {
		return nil, nil, err
	}

	msg := &domain.Message{
		ConversationID: conv.ID,
		SenderID:       userID,
		Content:        content,
	}
	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return nil, nil, err
	}

	var warnings []string
	peerID := peerOf(conv, userID)

	event := WSEvent{Type: "message", Message: msg}
	s.hub.SendToUser(userID, event)
	if !s.hub.SendToUser(peerID, event) {
		senderName := ""
		if sender, err := s.users.GetByID(ctx, userID); err == nil {
			senderName = sender.Name
		}
		if err := s.notify.NotifyNewMessage(ctx, peerID, conv.ID, senderName); err != nil {
			warnings = append(warnings, "in-app notification failed")
		}
	}

	return msg, warnings, nil
}

func (s *Service) ListMessages(ctx context.Context, userID, conversationID int64, limit int) ([]domain.Message, error) {
	if _, err := s.conversationFor(ctx, userID, conversationID); err != nil {
		return nil, err
	}
	return s.repo.ListMessages(ctx, conversationID, limit)
}

func (s *Service) MarkRead(ctx context.Context, userID, conversationID int64) error {
	if _, err := s.conversationFor(ctx, userID, conversationID); err != nil {
		return err
	}
	return s.repo.MarkRead(ctx, conversationID, userID)
}
