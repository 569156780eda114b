package auth

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("role must be mentee or mentor")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)
