package notification

import (
	"context"
	"fmt"
	"time"

	"mentorhub/internal/domain"
)

// Service writes in-app notifications. The Notify* methods implement
// the notifier ports of the booking, session, review and chat modules.
type Service struct {
	repo NotificationRepository
}

func NewService(repo NotificationRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) NotifyBookingCreated(ctx context.Context, mentorUserID, sessionID int64, start time.Time) error {
	return s.repo.Create(ctx, &domain.Notification{
		UserID:  mentorUserID,
		Type:    domain.NotifBookingCreated,
		Title:   "New session booked",
		Message: fmt.Sprintf("A mentee booked a session with you on %s", start.Format("Jan 2, 2006 at 15:04")),
		Data:    map[string]any{"session_id": sessionID},
	})
}

func (s *Service) NotifySessionCancelled(ctx context.Context, userID, sessionID int64, reason string) error {
	return s.repo.Create(ctx, &domain.Notification{
		UserID:  userID,
		Type:    domain.NotifSessionCancelled,
		Title:   "Session cancelled",
		Message: fmt.Sprintf("Your session was cancelled: %s", reason),
		Data:    map[string]any{"session_id": sessionID},
	})
}

func (s *Service) NotifyReviewReceived(ctx context.Context, mentorUserID, reviewID int64, rating int) error {
	return s.repo.Create(ctx, &domain.Notification{
		UserID:  mentorUserID,
		Type:    domain.NotifReviewReceived,
		Title:   "New review",
		Message: fmt.Sprintf("You received a %d-star review", rating),
		Data:    map[string]any{"review_id": reviewID},
	})
}

func (s *Service) NotifyNewMessage(ctx context.Context, userID, conversationID int64, senderName string) error {
	return s.repo.Create(ctx, &domain.Notification{
		UserID:  userID,
		Type:    domain.NotifNewMessage,
		Title:   "New message",
		Message: fmt.Sprintf("%s sent you a message", senderName),
		Data:    map[string]any{"conversation_id": conversationID},
	})
}

func (s *Service) List(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	return s.repo.ListByUser(ctx, userID, limit)
}

func (s *Service) CountUnread(ctx context.Context, userID int64) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *Service) MarkAsRead(ctx context.Context, id, userID int64) error {
	return s.repo.MarkAsRead(ctx, id, userID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}
