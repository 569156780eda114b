package session

import (
	"context"

	"mentorhub/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, s *domain.MentoringSession) error
	GetByID(ctx context.Context, id int64) (*domain.MentoringSession, error)
	ListByMentor(ctx context.Context, mentorID int64) ([]domain.MentoringSession, error)
	ListByMentee(ctx context.Context, menteeID int64) ([]domain.MentoringSession, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SessionStatus, reason string) error
}

// Notifier tells the counterpart about lifecycle changes, best-effort.
type Notifier interface {
	NotifySessionCancelled(ctx context.Context, userID, sessionID int64, reason string) error
}

// AchievementAwarder records mentee milestones on completion.
type AchievementAwarder interface {
	SessionCompleted(ctx context.Context, menteeID int64) error
}
