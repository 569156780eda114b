package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"mentorhub/internal/domain"
	"mentorhub/internal/pkg/ics"

	"gorm.io/gorm"
)

type Service struct {
	sessions SessionRepository
	notifs   Notifier
	awards   AchievementAwarder
}

func NewService(sessions SessionRepository, notifs Notifier, awards AchievementAwarder) *Service {
	return &Service{
		sessions: sessions,
		notifs:   notifs,
		awards:   awards,
	}
}

// List returns sessions for exactly one side of the marketplace. The
// two filters are mutually exclusive: pass one id, get that party's
// sessions with the counterpart's snapshot attached.
func (s *Service) List(ctx context.Context, mentorID, menteeID int64) ([]domain.MentoringSession, error) {
	switch {
	case mentorID > 0 && menteeID > 0:
		return nil, ErrFilterRequired
	case mentorID > 0:
		return s.sessions.ListByMentor(ctx, mentorID)
	case menteeID > 0:
		return s.sessions.ListByMentee(ctx, menteeID)
	default:
		return nil, ErrFilterRequired
	}
}

func (s *Service) Create(ctx context.Context, req CreateSessionRequest) (*domain.MentoringSession, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrValidation
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "Mentoring session"
	}

	session := &domain.MentoringSession{
		MentorID:    req.MentorID,
		MenteeID:    req.MenteeID,
		Status:      domain.SessionUpcoming,
		StartTime:   req.StartTime.UTC(),
		EndTime:     req.EndTime.UTC(),
		Title:       title,
		Description: req.Description,
		SessionType: req.SessionType,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.MentoringSession, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return session, nil
}

// Start moves an upcoming session to active.
func (s *Service) Start(ctx context.Context, id int64) (*domain.MentoringSession, error) {
	return s.transition(ctx, id, domain.SessionActive, "", func(cur domain.SessionStatus) bool {
		return cur == domain.SessionUpcoming
	})
}

// Complete moves an active session to completed and records the
// mentee's milestones.
func (s *Service) Complete(ctx context.Context, id int64) (*domain.MentoringSession, error) {
	session, err := s.transition(ctx, id, domain.SessionCompleted, "", func(cur domain.SessionStatus) bool {
		return cur == domain.SessionActive
	})
	if err != nil {
		return nil, err
	}

	if s.awards != nil {
		if err := s.awards.SessionCompleted(ctx, session.MenteeID); err != nil {
			log.Printf("session: achievement award for mentee %d failed: %v", session.MenteeID, err)
		}
	}

	return session, nil
}

// Cancel moves any non-terminal session to cancelled. The reason is
// mandatory and stored on the row; the counterpart is notified
// best-effort.
func (s *Service) Cancel(ctx context.Context, id int64, actorUserID int64, reason string) (*domain.MentoringSession, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrReasonRequired
	}

	session, err := s.transition(ctx, id, domain.SessionCancelled, reason, func(cur domain.SessionStatus) bool {
		return cur == domain.SessionUpcoming || cur == domain.SessionActive
	})
	if err != nil {
		return nil, err
	}

	if s.notifs != nil {
		// the mentee always learns about a cancellation; the actor may
		// not be the mentee
		if err := s.notifs.NotifySessionCancelled(ctx, session.MenteeID, session.ID, reason); err != nil {
			log.Printf("session: cancellation notification for session %d failed: %v", session.ID, err)
		}
	}

	return session, nil
}

func (s *Service) transition(ctx context.Context, id int64, next domain.SessionStatus, reason string, allowed func(domain.SessionStatus) bool) (*domain.MentoringSession, error) {
	session, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !allowed(session.Status) {
		return nil, ErrInvalidTransition
	}

	if err := s.sessions.UpdateStatus(ctx, id, next, reason); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// CalendarFile renders the session as an importable ICS event.
func (s *Service) CalendarFile(ctx context.Context, id int64) (string, error) {
	session, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	description := session.Description
	if session.MeetingLink != "" {
		if description != "" {
			description += "\n"
		}
		description += "Room: " + session.MeetingLink
	}

	return ics.Render(ics.Event{
		UID:         fmt.Sprintf("session-%d@mentorhub", session.ID),
		Summary:     session.Title,
		Description: description,
		Location:    session.MeetingLink,
		Start:       session.StartTime,
		End:         session.EndTime,
	}), nil
}
