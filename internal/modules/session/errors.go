package session

import "errors"

var (
	ErrValidation        = errors.New("invalid session request")
	ErrFilterRequired    = errors.New("exactly one of mentorId or menteeId is required")
	ErrNotFound          = errors.New("session not found")
	ErrInvalidTransition = errors.New("invalid session status transition")
	ErrReasonRequired    = errors.New("cancellation reason is required")
)
