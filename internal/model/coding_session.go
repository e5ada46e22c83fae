package model

import (
	"encoding/json"
	"time"
)

// DefaultLanguage is used when a caller saves code without naming a language.
const DefaultLanguage = "javascript"

// CodingSession is the shared editor state of one interview.
type CodingSession struct {
	ID          string          `json:"id"`
	InterviewID string          `json:"interview_id"`
	Language    string          `json:"language"`
	InitialCode string          `json:"initial_code"`
	FinalCode   string          `json:"final_code"`
	SessionData json.RawMessage `json:"session_data"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Interview *InterviewSummary `json:"interview,omitempty"`
}
