package repository

import (
	"context"
	"time"

	"interviewhub/internal/model"
)

// InterviewFilter narrows an interview listing. Zero values mean "no filter".
type InterviewFilter struct {
	Status   model.InterviewStatus
	Type     string
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
}

// InterviewRepository defines data access for interviews using SQL queries only.
type InterviewRepository interface {
	// List returns interviews with both participant profiles, newest schedule first.
	List(ctx context.Context, f InterviewFilter) ([]model.Interview, error)

	// FindByID returns one interview with both participant profiles.
	FindByID(ctx context.Context, id string) (*model.Interview, error)

	// Create inserts a new interview row and returns it as stored.
	Create(ctx context.Context, in *model.Interview) (*model.Interview, error)

	// Update applies the non-nil fields of p and stamps updated_at.
	// It returns sql.ErrNoRows when the interview does not exist.
	Update(ctx context.Context, id string, p model.InterviewPatch, updatedAt time.Time) (*model.Interview, error)

	// Delete removes an interview and returns the deleted row,
	// or sql.ErrNoRows when nothing matched.
	Delete(ctx context.Context, id string) (*model.Interview, error)

	// Upcoming returns scheduled interviews starting at or after now, soonest first.
	Upcoming(ctx context.Context, now time.Time, limit int) ([]model.Interview, error)

	// CountUpcoming counts scheduled interviews of a participant starting at or after now.
	CountUpcoming(ctx context.Context, p Participant, userID string, now time.Time) (int, error)

	// CompletedRatings returns the rating of every completed interview of a
	// participant; unrated interviews yield nil entries.
	CompletedRatings(ctx context.Context, p Participant, userID string) ([]*int, error)

	// CountCreatedSince counts interviews of a participant created at or after since.
	CountCreatedSince(ctx context.Context, p Participant, userID string, since time.Time) (int, error)
}
