package review

import (
	"context"
	"errors"

	"mentorhub/internal/domain"
	"mentorhub/internal/pkg/validator"
	"mentorhub/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	reviews  ReviewRepository
	sessions SessionReader
	mentors  MentorDirectory
	notify   Notifier
	awards   AchievementAwarder
}

func NewService(reviews ReviewRepository, sessions SessionReader, mentors MentorDirectory, notify Notifier, awards AchievementAwarder) *Service {
	return &Service{
		reviews:  reviews,
		sessions: sessions,
		mentors:  mentors,
		notify:   notify,
		awards:   awards,
	}
}

// Create stores a review for a completed session the actor attended.
// Aggregate refresh, notification and achievement are best-effort:
// their failures come back as warnings, never as an error.
func (s *Service) Create(ctx context.Context, menteeID int64, req CreateReviewRequest) (*ReviewResult, error) {
	session, err := s.sessions.GetByID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if session.MenteeID != menteeID {
		return nil, ErrNotYourSession
	}
	if session.Status != domain.SessionCompleted {
		return nil, ErrSessionNotCompleted
	}

	rv := &domain.Review{
		MentorID:  session.MentorID,
		MenteeID:  menteeID,
		SessionID: session.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if fields := validator.Validate(rv); fields != nil {
		return nil, ErrValidation
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}

	result := &ReviewResult{Review: rv}
	result.Warnings = s.runSideEffects(ctx, rv)
	return result, nil
}

func (s *Service) runSideEffects(ctx context.Context, rv *domain.Review) []string {
	var warnings []string

	avg, cnt, err := s.reviews.Aggregate(ctx, rv.MentorID)
	if err != nil {
		warnings = append(warnings, "rating aggregate update failed")
	} else if err := s.mentors.UpdateRating(ctx, rv.MentorID, avg, cnt); err != nil {
		warnings = append(warnings, "rating aggregate update failed")
	}

	mentor, err := s.mentors.GetByID(ctx, rv.MentorID)
	if err != nil {
		warnings = append(warnings, "mentor notification skipped: profile lookup failed")
	} else if err := s.notify.NotifyReviewReceived(ctx, mentor.UserID, rv.ID, rv.Rating); err != nil {
		warnings = append(warnings, "in-app notification failed")
	}

	if err := s.awards.FirstReview(ctx, rv.MenteeID); err != nil {
		warnings = append(warnings, "achievement check failed")
	}

	return warnings
}

func (s *Service) ListByMentor(ctx context.Context, mentorID int64, q ListReviewsQuery) ([]domain.Review, error) {
	return s.reviews.ListByMentor(ctx, mentorID, q.Limit, q.Offset)
}
