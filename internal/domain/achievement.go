package domain

import "time"

// Achievement codes awarded to mentees as they use the platform.
const (
	AchFirstBooking   = "first_booking"
	AchFirstSession   = "first_session"
	AchFiveSessions   = "five_sessions"
	AchFirstReview    = "first_review"
	AchRegularMentee  = "regular_mentee"
)

// Achievement is a milestone record for a mentee. Awarding is
// idempotent: (mentee_id, code) is unique and re-awards are no-ops.
type Achievement struct {
	ID        int64     `json:"id"`
	MenteeID  int64     `json:"mentee_id"`
	Code      string    `json:"code"`
	Title     string    `json:"title"`
	AwardedAt time.Time `json:"awarded_at"`
}
