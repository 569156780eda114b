package mentor

import (
	"context"
	"errors"

	"mentorhub/internal/domain"
	"mentorhub/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	profiles ProfileRepository
}

func NewService(profiles ProfileRepository) *Service {
	return &Service{profiles: profiles}
}

func (s *Service) List(ctx context.Context, q ListMentorsQuery) ([]domain.MentorProfile, error) {
	return s.profiles.List(ctx, repository.MentorFilter{
		Expertise: q.Expertise,
		Company:   q.Company,
	})
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.MentorProfile, error) {
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return profile, nil
}

// UpdateOwnProfile applies the patch to the profile owned by
// actorUserID. Mentors can only edit themselves.
func (s *Service) UpdateOwnProfile(ctx context.Context, actorUserID int64, req UpdateProfileRequest) (*domain.MentorProfile, error) {
	profile, err := s.profiles.GetByUserID(ctx, actorUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Title != nil {
		profile.Title = *req.Title
	}
	if req.Company != nil {
		profile.Company = *req.Company
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Expertise != nil {
		profile.Expertise = req.Expertise
	}
	if req.ImageURL != nil {
		profile.ImageURL = *req.ImageURL
	}

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
