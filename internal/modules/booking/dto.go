package booking

import (
	"time"

	"mentorhub/internal/domain"
)

// CreateBookingRequest is transient: validated, consumed, discarded.
// Fields are deliberately unbound (no binding tags) so presence is
// checked one by one and the response can name the missing field.
type CreateBookingRequest struct {
	MentorID    int64  `json:"mentor_id"`
	UserID      int64  `json:"user_id"`
	Date        string `json:"date"` // 2006-01-02
	Time        string `json:"time"` // 15:04
	SessionType string `json:"session_type"`
	SlotID      int64  `json:"slot_id"`
}

type MeetingInfo struct {
	Channel   string    `json:"channel"`
	Token     string    `json:"token"`
	AppID     string    `json:"app_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// BookingResult is what a confirmed booking returns to the client.
// Warnings collect best-effort side effects that failed (notification
// email and the like) without failing the booking.
type BookingResult struct {
	Session  *domain.MentoringSession `json:"session"`
	Meeting  MeetingInfo              `json:"meeting"`
	Warnings []string                 `json:"-"`
}
