package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"mentorhub/internal/domain"
	"mentorhub/internal/pkg/email"
	"mentorhub/internal/repository"

	"gorm.io/gorm"
)

// SessionDuration is fixed regardless of the requested session type.
const SessionDuration = 30 * time.Minute

const bookingTimeLayout = "2006-01-02 15:04"

type Service struct {
	slots   SlotReader
	store   BookingStore
	mentors MentorDirectory
	issuer  CredentialIssuer
	mailer  Mailer
	notifs  Notifier
	awards  AchievementAwarder
}

func NewService(
	slots SlotReader,
	store BookingStore,
	mentors MentorDirectory,
	issuer CredentialIssuer,
	mailer Mailer,
	notifs Notifier,
	awards AchievementAwarder,
) *Service {
	return &Service{
		slots:   slots,
		store:   store,
		mentors: mentors,
		issuer:  issuer,
		mailer:  mailer,
		notifs:  notifs,
		awards:  awards,
	}
}

// CreateBooking runs the whole booking workflow: validate, check the
// slot, issue video credentials, then atomically claim the slot, insert
// the session and split the availability period. Side effects after the
// commit (email, in-app notification, achievements) are best-effort and
// reported through the result's Warnings.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	start, err := time.Parse(bookingTimeLayout, req.Date+" "+req.Time)
	if err != nil {
		return nil, ErrValidation
	}
	start = start.UTC()
	end := start.Add(SessionDuration)

	period, err := s.slots.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	if period.IsBooked() {
		return nil, ErrSlotTaken
	}

	creds, err := s.issuer.Credentials(strconv.FormatInt(req.SlotID, 10), req.UserID)
	if err != nil {
		return nil, err
	}

	session := &domain.MentoringSession{
		MentorID:    period.MentorID,
		MenteeID:    req.UserID,
		Status:      domain.SessionUpcoming,
		StartTime:   start,
		EndTime:     end,
		Title:       "Mentoring session",
		SessionType: req.SessionType,
		MeetingLink: creds.Channel,
	}

	replacements := splitPeriod(*period, start, end)

	if err := s.store.CreateBookedSession(ctx, req.SlotID, session, replacements); err != nil {
		if errors.Is(err, repository.ErrSlotUnavailable) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	result := &BookingResult{
		Session: session,
		Meeting: MeetingInfo{
			Channel:   creds.Channel,
			Token:     creds.Token,
			AppID:     creds.AppID,
			StartTime: start,
			EndTime:   end,
		},
	}
	result.Warnings = s.runSideEffects(ctx, period.MentorID, session)

	return result, nil
}

func validateRequest(req CreateBookingRequest) error {
	switch {
	case req.MentorID == 0:
		return &MissingFieldError{Field: "mentor_id"}
	case req.UserID == 0:
		return &MissingFieldError{Field: "user_id"}
	case req.Date == "":
		return &MissingFieldError{Field: "date"}
	case req.Time == "":
		return &MissingFieldError{Field: "time"}
	case req.SessionType == "":
		return &MissingFieldError{Field: "session_type"}
	case req.SlotID == 0:
		return &MissingFieldError{Field: "slot_id"}
	}
	return nil
}

// splitPeriod computes the replacement rows for a booked window inside
// an availability period: an open segment before the window when one
// exists, the booked window itself, and an open segment after it.
// Zero-width edges produce no segment.
func splitPeriod(p domain.AvailabilityPeriod, slotStart, slotEnd time.Time) []domain.AvailabilityPeriod {
	out := make([]domain.AvailabilityPeriod, 0, 3)

	if p.StartTime.Before(slotStart) {
		out = append(out, domain.AvailabilityPeriod{
			MentorID:  p.MentorID,
			StartTime: p.StartTime,
			EndTime:   slotStart,
			Status:    domain.PeriodAvailable,
		})
	}

	out = append(out, domain.AvailabilityPeriod{
		MentorID:  p.MentorID,
		StartTime: slotStart,
		EndTime:   slotEnd,
		Status:    domain.PeriodBooked,
	})

	if slotEnd.Before(p.EndTime) {
		out = append(out, domain.AvailabilityPeriod{
			MentorID:  p.MentorID,
			StartTime: slotEnd,
			EndTime:   p.EndTime,
			Status:    domain.PeriodAvailable,
		})
	}

	return out
}

func (s *Service) runSideEffects(ctx context.Context, mentorID int64, session *domain.MentoringSession) []string {
	var warnings []string

	mentor, err := s.mentors.GetByID(ctx, mentorID)
	if err != nil {
		log.Printf("booking: mentor %d lookup for notification failed: %v", mentorID, err)
		warnings = append(warnings, "mentor notification skipped: profile lookup failed")
		mentor = nil
	}

	if mentor != nil && s.mailer != nil && mentor.Email != "" {
		msg := bookingEmail(mentor, session)
		if err := s.mailer.Send(ctx, msg); err != nil && !errors.Is(err, email.ErrDisabled) {
			log.Printf("booking: notification email to mentor %d failed: %v", mentorID, err)
			warnings = append(warnings, "notification email failed")
		}
	}

	if mentor != nil && s.notifs != nil {
		if err := s.notifs.NotifyBookingCreated(ctx, mentor.UserID, session.ID, session.StartTime); err != nil {
			log.Printf("booking: in-app notification for mentor %d failed: %v", mentorID, err)
			warnings = append(warnings, "in-app notification failed")
		}
	}

	if s.awards != nil {
		if err := s.awards.FirstBooking(ctx, session.MenteeID); err != nil {
			log.Printf("booking: achievement award for mentee %d failed: %v", session.MenteeID, err)
			warnings = append(warnings, "achievement check failed")
		}
	}

	return warnings
}

func bookingEmail(mentor *domain.MentorProfile, session *domain.MentoringSession) email.Message {
	body := fmt.Sprintf(
		"Hi %s,\n\nA new mentoring session was booked with you.\n\nWhen: %s - %s (UTC)\nRoom: %s\n\nSee you there.\n",
		mentor.Name,
		session.StartTime.Format("Mon, 02 Jan 2006 15:04"),
		session.EndTime.Format("15:04"),
		session.MeetingLink,
	)
	return email.Message{
		To:       mentor.Email,
		Subject:  "New session booked",
		TextBody: body,
	}
}
