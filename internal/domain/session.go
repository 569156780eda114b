package domain

import "time"

type SessionStatus string

const (
	SessionUpcoming  SessionStatus = "upcoming"
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

// MentoringSession is a confirmed appointment between one mentor and
// one mentee. Created at booking time, mutated by start/complete/cancel,
// never deleted.
type MentoringSession struct {
	ID                 int64         `json:"id"`
	MentorID           int64         `json:"mentor_id" validate:"required"`
	MenteeID           int64         `json:"mentee_id" validate:"required"`
	Status             SessionStatus `json:"status"`
	StartTime          time.Time     `json:"start_time" validate:"required"`
	EndTime            time.Time     `json:"end_time" validate:"required"`
	Title              string        `json:"title"`
	Description        string        `json:"description,omitempty"`
	SessionType        string        `json:"session_type,omitempty"`
	MeetingLink        string        `json:"meeting_link,omitempty"`
	CancelledAt        *time.Time    `json:"cancelled_at,omitempty"`
	CancellationReason string        `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`

	// Filled on listing: the other party's public profile snapshot.
	With *ProfileSnapshot `json:"with,omitempty"`
}

// Terminal reports whether the session can no longer change state.
func (s MentoringSession) Terminal() bool {
	return s.Status == SessionCompleted || s.Status == SessionCancelled
}
