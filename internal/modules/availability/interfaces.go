package availability

import (
	"context"
	"time"

	"mentorhub/internal/domain"
)

type PeriodRepository interface {
	Create(ctx context.Context, p *domain.AvailabilityPeriod) error
	ListOpenForMentor(ctx context.Context, mentorID int64, now time.Time) ([]domain.AvailabilityPeriod, error)
	Delete(ctx context.Context, id, mentorID int64) error
}

type MentorDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.MentorProfile, error)
}
