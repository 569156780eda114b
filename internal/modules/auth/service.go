package auth

import (
	"context"
	"errors"
	"strings"

	"mentorhub/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	users   UserRepository
	mentors MentorRepository
	jwt     TokenGenerator
}

type RegisterResult struct {
	User   *domain.User          `json:"user"`
	Mentor *domain.MentorProfile `json:"mentor,omitempty"`
	Token  string                `json:"token"`
}

type LoginResult struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

func NewService(users UserRepository, mentors MentorRepository, jwt TokenGenerator) *Service {
	return &Service{users: users, mentors: mentors, jwt: jwt}
}

// Register creates the account and, for mentors, seeds the public
// profile that the directory lists.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	role := domain.UserRole(strings.ToLower(strings.TrimSpace(req.Role)))
	if role != domain.RoleMentee && role != domain.RoleMentor {
		return nil, ErrInvalidRole
	}
	if len(req.Password) < 8 {
		return nil, ErrWeakPassword
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	result := &RegisterResult{User: user}

	if role == domain.RoleMentor {
		profile := &domain.MentorProfile{
			UserID:  user.ID,
			Name:    user.Name,
			Title:   req.Title,
			Company: req.Company,
			Email:   user.Email,
		}
		if err := s.mentors.Create(ctx, profile); err != nil {
			return nil, err
		}
		result.Mentor = profile
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}
	result.Token = token

	user.PasswordHash = ""
	return result, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, Token: token}, nil
}

func (s *Service) Me(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}
