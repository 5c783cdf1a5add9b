package domain

import "time"

// Message is a project-scoped message between two accounts. SenderID is the
// ownership reference: only the sender may update or delete the message.
type Message struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"project_id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	FileID     string    `json:"file_id,omitempty"`
	Content    string    `json:"content"`
	SentAt     time.Time `json:"sent_at"`
}

// Notification is the fan-out payload emitted when a message is created.
// Delivery transport is out of scope here; the dispatcher hands these to a
// pluggable notifier.
type Notification struct {
	ProjectID  string
	MessageID  string
	SenderID   string
	ReceiverID string
	SentAt     time.Time
}
