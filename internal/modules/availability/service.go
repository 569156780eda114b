package availability

import (
	"context"
	"errors"
	"time"

	"mentorhub/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	periods PeriodRepository
	mentors MentorDirectory

	now func() time.Time
}

func NewService(periods PeriodRepository, mentors MentorDirectory) *Service {
	return &Service{
		periods: periods,
		mentors: mentors,
		now:     time.Now,
	}
}

// ListOpen returns a mentor's bookable future periods. Errors bubble up
// to the handler, which turns them into an empty list: a broken
// calendar read never blocks the page.
func (s *Service) ListOpen(ctx context.Context, mentorID int64) ([]domain.AvailabilityPeriod, error) {
	return s.periods.ListOpenForMentor(ctx, mentorID, s.now())
}

// CreatePeriod declares a new open window. Only the mentor who owns the
// profile may do so.
func (s *Service) CreatePeriod(ctx context.Context, mentorID, actorUserID int64, req CreatePeriodRequest) (*domain.AvailabilityPeriod, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrValidation
	}
	if req.StartTime.Before(s.now()) {
		return nil, ErrValidation
	}

	if err := s.checkOwnership(ctx, mentorID, actorUserID); err != nil {
		return nil, err
	}

	p := &domain.AvailabilityPeriod{
		MentorID:  mentorID,
		StartTime: req.StartTime.UTC(),
		EndTime:   req.EndTime.UTC(),
		Status:    domain.PeriodAvailable,
	}
	if err := s.periods.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeletePeriod removes an unbooked window.
func (s *Service) DeletePeriod(ctx context.Context, mentorID, actorUserID, periodID int64) error {
	if err := s.checkOwnership(ctx, mentorID, actorUserID); err != nil {
		return err
	}

	if err := s.periods.Delete(ctx, periodID, mentorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) checkOwnership(ctx context.Context, mentorID, actorUserID int64) error {
	mentor, err := s.mentors.GetByID(ctx, mentorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if mentor.UserID != actorUserID {
		return ErrForbidden
	}
	return nil
}
