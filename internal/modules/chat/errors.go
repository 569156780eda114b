package chat

import "errors"

var (
	ErrSelfConversation = errors.New("cannot start a conversation with yourself")
	ErrPeerNotFound     = errors.New("peer user not found")
	ErrNotFound         = errors.New("conversation not found")
	ErrNotParticipant   = errors.New("user is not part of this conversation")
	ErrEmptyMessage     = errors.New("message content is empty")
)
