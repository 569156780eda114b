package session

import "time"

type CreateSessionRequest struct {
	MentorID    int64     `json:"mentor_id" binding:"required"`
	MenteeID    int64     `json:"mentee_id" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SessionType string    `json:"session_type"`
}

type CancelSessionRequest struct {
	Reason string `json:"reason"`
}
