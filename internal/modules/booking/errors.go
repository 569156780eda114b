package booking

import "errors"

var (
	ErrValidation   = errors.New("invalid booking request")
	ErrSlotNotFound = errors.New("availability period not found")
	ErrSlotTaken    = errors.New("slot already booked")
)

// MissingFieldError names the first absent request field, so the 400
// response can point at it.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}
