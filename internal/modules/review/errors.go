package review

import "errors"

var (
	ErrValidation          = errors.New("invalid review payload")
	ErrSessionNotFound     = errors.New("session not found")
	ErrNotYourSession      = errors.New("session belongs to another mentee")
	ErrSessionNotCompleted = errors.New("session is not completed yet")
	ErrAlreadyReviewed     = errors.New("session already reviewed")
)
