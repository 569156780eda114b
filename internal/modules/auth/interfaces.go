package auth

import (
	"context"

	"mentorhub/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type MentorRepository interface {
	Create(ctx context.Context, p *domain.MentorProfile) error
}

type TokenGenerator interface {
	GenerateToken(userID int64, role string) (string, error)
}
