package mentor

import "errors"

var (
	ErrNotFound  = errors.New("mentor profile not found")
	ErrForbidden = errors.New("profile belongs to another user")
)
