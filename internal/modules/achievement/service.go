package achievement

import (
	"context"

	"mentorhub/internal/domain"
)

// titles shown in the mentee's trophy list, keyed by code.
var titles = map[string]string{
	domain.AchFirstBooking:  "First Booking",
	domain.AchFirstSession:  "First Session Completed",
	domain.AchFiveSessions:  "Five Sessions Completed",
	domain.AchFirstReview:   "First Review Written",
	domain.AchRegularMentee: "Regular Mentee",
}

type Service struct {
	achievements AchievementRepository
	sessions     SessionCounter
}

func NewService(achievements AchievementRepository, sessions SessionCounter) *Service {
	return &Service{achievements: achievements, sessions: sessions}
}

func (s *Service) award(ctx context.Context, menteeID int64, code string) error {
	return s.achievements.Award(ctx, menteeID, code, titles[code])
}

// FirstBooking is called by the booking flow. Awarding is idempotent,
// so every booking can call it unconditionally.
func (s *Service) FirstBooking(ctx context.Context, menteeID int64) error {
	return s.award(ctx, menteeID, domain.AchFirstBooking)
}

// SessionCompleted checks the mentee's completed-session count against
// the milestone thresholds and awards whatever is due.
func (s *Service) SessionCompleted(ctx context.Context, menteeID int64) error {
	count, err := s.sessions.CountCompletedForMentee(ctx, menteeID)
	if err != nil {
		return err
	}

	if count >= 1 {
		if err := s.award(ctx, menteeID, domain.AchFirstSession); err != nil {
			return err
		}
	}
	if count >= 5 {
		if err := s.award(ctx, menteeID, domain.AchFiveSessions); err != nil {
			return err
		}
	}
	if count >= 10 {
		if err := s.award(ctx, menteeID, domain.AchRegularMentee); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) FirstReview(ctx context.Context, menteeID int64) error {
	return s.award(ctx, menteeID, domain.AchFirstReview)
}

func (s *Service) List(ctx context.Context, menteeID int64) ([]domain.Achievement, error) {
	return s.achievements.ListByMentee(ctx, menteeID)
}
