package booking

import (
	"context"
	"time"

	"mentorhub/internal/domain"
	"mentorhub/internal/modules/video"
	"mentorhub/internal/pkg/email"
)

// SlotReader re-reads the target availability period before booking.
type SlotReader interface {
	GetByID(ctx context.Context, id int64) (*domain.AvailabilityPeriod, error)
}

// BookingStore runs the transactional claim + session insert + slot
// split. Implemented by repository.BookingRepository.
type BookingStore interface {
	CreateBookedSession(ctx context.Context, slotID int64, session *domain.MentoringSession, replacements []domain.AvailabilityPeriod) error
}

// MentorDirectory resolves the mentor being booked, mainly for the
// notification email address.
type MentorDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.MentorProfile, error)
}

// CredentialIssuer mints the video channel and join token.
type CredentialIssuer interface {
	Credentials(meetingID string, uid int64) (*video.Credentials, error)
}

// Mailer sends the best-effort booking email.
type Mailer interface {
	Send(ctx context.Context, m email.Message) error
}

// Notifier writes the in-app notification for the mentor.
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, mentorUserID, sessionID int64, start time.Time) error
}

// AchievementAwarder records mentee milestones.
type AchievementAwarder interface {
	FirstBooking(ctx context.Context, menteeID int64) error
}
