package availability

import "errors"

var (
	ErrValidation = errors.New("invalid availability period")
	ErrForbidden  = errors.New("not your availability")
	ErrNotFound   = errors.New("availability period not found")
)
