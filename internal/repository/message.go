package repository

import (
	"context"
	"time"

	"interviewhub/internal/model"
)

// MessageRepository defines data access for interview chat messages.
// Every read returns the sender profile joined.
type MessageRepository interface {
	ListByInterview(ctx context.Context, interviewID string) ([]model.Message, error)
	FindByID(ctx context.Context, id string) (*model.Message, error)
	Create(ctx context.Context, m *model.Message) (*model.Message, error)
	UpdateText(ctx context.Context, id, text string, updatedAt time.Time) (*model.Message, error)
	// Delete removes a message and returns the deleted row (sql.ErrNoRows if absent).
	Delete(ctx context.Context, id string) (*model.Message, error)
	// RecentForUser returns the newest messages of interviews the user takes part in,
	// each with an interview summary joined.
	RecentForUser(ctx context.Context, userID string, limit int) ([]model.Message, error)
}
