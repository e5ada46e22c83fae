package model

// Package model contains domain models/data structures shared by every layer.
// Types carry JSON tags only; persistence details stay in the repositories.

// Role is the part a user plays in an interview.
type Role string

const (
	RoleInterviewer Role = "interviewer"
	RoleCandidate   Role = "candidate"
)

// Profile is the public part of a user row, joined onto interviews and messages.
type Profile struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}
