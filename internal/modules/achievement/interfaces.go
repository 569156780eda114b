package achievement

import (
	"context"

	"mentorhub/internal/domain"
)

type AchievementRepository interface {
	Award(ctx context.Context, menteeID int64, code, title string) error
	ListByMentee(ctx context.Context, menteeID int64) ([]domain.Achievement, error)
}

type SessionCounter interface {
	CountCompletedForMentee(ctx context.Context, menteeID int64) (int64, error)
}
