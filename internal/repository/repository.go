package repository

// Package repository contains data access layer abstractions.
// Implementations can live in subpackages (e.g., postgres) inside this directory.

import "interviewhub/internal/model"

// Participant selects which side of an interview a user lookup filters on.
type Participant string

const (
	AsInterviewer Participant = "interviewer_id"
	AsCandidate   Participant = "candidate_id"
)

// ParticipantFor maps a role to its interview column. Anything that is not
// an interviewer is treated as a candidate.
func ParticipantFor(role model.Role) Participant {
	if role == model.RoleInterviewer {
		return AsInterviewer
	}
	return AsCandidate
}

// Column returns the interviews column name. Only the two constants above
// are ever returned so the value is safe to splice into SQL.
func (p Participant) Column() string {
	if p == AsInterviewer {
		return string(AsInterviewer)
	}
	return string(AsCandidate)
}
