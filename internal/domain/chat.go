package domain

import "time"

// Conversation links a mentee and a mentor. Participants are stored
// normalized (A < B) so the pair maps to exactly one row.
type Conversation struct {
	ID           int64     `json:"id"`
	ParticipantA int64     `json:"participant_a"`
	ParticipantB int64     `json:"participant_b"`
	SessionID    *int64    `json:"session_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`

	LastMessage *Message         `json:"last_message,omitempty"`
	Peer        *ProfileSnapshot `json:"peer,omitempty"`
	UnreadCount int64            `json:"unread_count"`
}

type Message struct {
	ID             int64      `json:"id"`
	ConversationID int64      `json:"conversation_id"`
	SenderID       int64      `json:"sender_id"`
	Content        string     `json:"content"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
