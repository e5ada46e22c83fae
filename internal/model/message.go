package model

import "time"

// MessageType tells text chat apart from attachments and system notices.
type MessageType string

const (
	MessageText   MessageType = "text"
	MessageFile   MessageType = "file"
	MessageCode   MessageType = "code"
	MessageSystem MessageType = "system"
)

// Message is a chat line posted in an interview room.
type Message struct {
	ID          string      `json:"id"`
	InterviewID string      `json:"interview_id"`
	SenderID    string      `json:"sender_id"`
	Message     string      `json:"message"`
	MessageType MessageType `json:"message_type"`
	FileName    string      `json:"file_name,omitempty"`
	FilePath    string      `json:"file_path,omitempty"`
	FileSize    int64       `json:"file_size,omitempty"`
	Timestamp   time.Time   `json:"timestamp"`
	UpdatedAt   *time.Time  `json:"updated_at,omitempty"`

	Sender    *Profile          `json:"sender,omitempty"`
	Interview *InterviewSummary `json:"interview,omitempty"`
}
