package video

import "errors"

var (
	ErrEmptyMeetingID     = errors.New("meeting identifier is empty")
	ErrMissingCredentials = errors.New("video app id and certificate are required")
	ErrEmptyChannel       = errors.New("channel is empty")
)
