package repository

import (
	"context"
	"encoding/json"
	"time"

	"interviewhub/internal/model"
)

// CodingSessionFields is a partial coding session write. Nil fields are not
// written, so an upsert never clobbers columns the caller did not supply.
type CodingSessionFields struct {
	Language    *string
	InitialCode *string
	FinalCode   *string
	SessionData json.RawMessage
}

// CodingSessionRepository defines data access for the per-interview editor row.
type CodingSessionRepository interface {
	// FindByInterview returns sql.ErrNoRows when the interview has no session yet.
	FindByInterview(ctx context.Context, interviewID string) (*model.CodingSession, error)

	// Upsert inserts or merges the row keyed on interview_id.
	Upsert(ctx context.Context, interviewID string, f CodingSessionFields, updatedAt time.Time) (*model.CodingSession, error)

	// ListForUser returns sessions of interviews the user took part in, newest update first.
	ListForUser(ctx context.Context, p Participant, userID string) ([]model.CodingSession, error)
}
