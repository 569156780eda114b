package domain

import (
	"strings"
	"time"
)

// Availability period statuses. The column is deliberately permissive:
// only "booked" blocks a booking, every other value (including unknown
// strings) is treated as open.
const (
	PeriodAvailable = "available"
	PeriodBooked    = "booked"
	PeriodCancelled = "cancelled"
)

// AvailabilityPeriod is a mentor-declared contiguous window open for
// booking. A booking shrinks the row to the booked window and inserts
// open segments around it; periods are never versioned.
type AvailabilityPeriod struct {
	ID        int64     `json:"id"`
	MentorID  int64     `json:"mentor_id" validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// IsBooked reports whether the period's status string means "booked",
// compared case-insensitively after trimming.
func (p AvailabilityPeriod) IsBooked() bool {
	return strings.EqualFold(strings.TrimSpace(p.Status), PeriodBooked)
}
