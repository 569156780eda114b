package domain

import "time"

// Review is left by a mentee for a mentor after a completed session.
// One review per session, enforced by a unique constraint on session_id.
type Review struct {
	ID        int64     `json:"id"`
	MentorID  int64     `json:"mentor_id" validate:"required"`
	MenteeID  int64     `json:"mentee_id" validate:"required"`
	SessionID int64     `json:"session_id" validate:"required"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
