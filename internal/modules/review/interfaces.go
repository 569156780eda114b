package review

import (
	"context"

	"mentorhub/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	ListByMentor(ctx context.Context, mentorID int64, limit, offset int) ([]domain.Review, error)
	Aggregate(ctx context.Context, mentorID int64) (float64, int64, error)
}

type SessionReader interface {
	GetByID(ctx context.Context, id int64) (*domain.MentoringSession, error)
}

type MentorDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.MentorProfile, error)
	UpdateRating(ctx context.Context, mentorID int64, rating float64, count int64) error
}

type Notifier interface {
	NotifyReviewReceived(ctx context.Context, mentorUserID, reviewID int64, rating int) error
}

type AchievementAwarder interface {
	FirstReview(ctx context.Context, menteeID int64) error
}
