package mentor

import (
	"context"

	"mentorhub/internal/domain"
	"mentorhub/internal/repository"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.MentorProfile, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.MentorProfile, error)
	List(ctx context.Context, f repository.MentorFilter) ([]domain.MentorProfile, error)
	Update(ctx context.Context, p *domain.MentorProfile) error
}
