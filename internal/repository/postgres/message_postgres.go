package postgres

import (
	"context"
	"database/sql"
	"time"

	"interviewhub/internal/model"
	"interviewhub/internal/repository"
)

// MessagePostgres is a PostgreSQL implementation of repository.MessageRepository.
type MessagePostgres struct {
	db *sql.DB
}

// NewMessagePostgres creates a new MessagePostgres repository.
func NewMessagePostgres(db *sql.DB) *MessagePostgres {
	return &MessagePostgres{db: db}
}

var _ repository.MessageRepository = (*MessagePostgres)(nil)

// messageSelect projects a message aliased m with its sender s.
var messageSelect = `SELECT m.id, m.interview_id, m.sender_id, m.message, m.message_type,
	m.file_name, m.file_path, m.file_size, m.timestamp, m.updated_at,
	` + profileColumns("s")

const senderJoin = `
	LEFT JOIN user_profiles s ON s.id = m.sender_id`

func messageTargets(m *model.Message, sender *nullProfile, n *nullMessage) []any {
	dest := []any{
		&m.ID, &m.InterviewID, &n.SenderID, &m.Message, &n.MessageType,
		&n.FileName, &n.FilePath, &n.FileSize, &m.Timestamp, &n.UpdatedAt,
	}
	return append(dest, sender.targets()...)
}

type nullMessage struct {
	SenderID    sql.NullString
	MessageType string
	FileName    sql.NullString
	FilePath    sql.NullString
	FileSize    sql.NullInt64
	UpdatedAt   sql.NullTime
}

func (n *nullMessage) apply(m *model.Message, sender *nullProfile) {
	m.SenderID = n.SenderID.String
	m.MessageType = model.MessageType(n.MessageType)
	m.FileName = n.FileName.String
	m.FilePath = n.FilePath.String
	m.FileSize = n.FileSize.Int64
	m.UpdatedAt = timePtr(n.UpdatedAt)
	m.Sender = sender.profile()
}

func scanMessage(s rowScanner) (*model.Message, error) {
	var (
		m      model.Message
		sender nullProfile
		n      nullMessage
	)
	if err := s.Scan(messageTargets(&m, &sender, &n)...); err != nil {
		return nil, err
	}
	n.apply(&m, &sender)
	return &m, nil
}

func scanMessageWithSummary(s rowScanner) (*model.Message, error) {
	var (
		m       model.Message
		sender  nullProfile
		n       nullMessage
		summary nullSummary
	)
	dest := append(messageTargets(&m, &sender, &n), summary.targets()...)
	if err := s.Scan(dest...); err != nil {
		return nil, err
	}
	n.apply(&m, &sender)
	m.Interview = summary.summary()
	return &m, nil
}

func (r *MessagePostgres) queryMessages(ctx context.Context, scan func(rowScanner) (*model.Message, error), q string, args ...any) ([]model.Message, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Message, 0)
	for rows.Next() {
		m, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ListByInterview returns the chat of one interview in posting order.
func (r *MessagePostgres) ListByInterview(ctx context.Context, interviewID string) ([]model.Message, error) {
	q := messageSelect + "\n\tFROM interview_messages m" + senderJoin + `
	WHERE m.interview_id = $1
	ORDER BY m.timestamp ASC, m.id ASC`
	return r.queryMessages(ctx, scanMessage, q, interviewID)
}

// FindByID fetches one message with its sender.
func (r *MessagePostgres) FindByID(ctx context.Context, id string) (*model.Message, error) {
	q := messageSelect + "\n\tFROM interview_messages m" + senderJoin + "\n\tWHERE m.id = $1"
	return scanMessage(r.db.QueryRowContext(ctx, q, id))
}

// Create inserts a message and returns it with the sender joined in the same round trip.
func (r *MessagePostgres) Create(ctx context.Context, msg *model.Message) (*model.Message, error) {
	q := `WITH m AS (
		INSERT INTO interview_messages (id, interview_id, sender_id, message, message_type,
			file_name, file_path, file_size, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING *
	)
	` + messageSelect + "\n\tFROM m" + senderJoin

	var size sql.NullInt64
	if msg.FileSize > 0 {
		size = sql.NullInt64{Int64: msg.FileSize, Valid: true}
	}

	row := r.db.QueryRowContext(ctx, q,
		msg.ID,
		msg.InterviewID,
		nullString(msg.SenderID),
		msg.Message,
		string(msg.MessageType),
		nullString(msg.FileName),
		nullString(msg.FilePath),
		size,
		msg.Timestamp,
	)
	return scanMessage(row)
}

// UpdateText replaces the text of a message and stamps updated_at.
func (r *MessagePostgres) UpdateText(ctx context.Context, id, text string, updatedAt time.Time) (*model.Message, error) {
	q := `WITH m AS (
		UPDATE interview_messages SET message = $1, updated_at = $2 WHERE id = $3
		RETURNING *
	)
	` + messageSelect + "\n\tFROM m" + senderJoin
	return scanMessage(r.db.QueryRowContext(ctx, q, text, updatedAt, id))
}

// Delete removes a message and returns the deleted row.
func (r *MessagePostgres) Delete(ctx context.Context, id string) (*model.Message, error) {
	q := `WITH m AS (
		DELETE FROM interview_messages WHERE id = $1
		RETURNING *
	)
	` + messageSelect + "\n\tFROM m" + senderJoin
	return scanMessage(r.db.QueryRowContext(ctx, q, id))
}

// RecentForUser returns the newest messages across the user's interviews.
func (r *MessagePostgres) RecentForUser(ctx context.Context, userID string, limit int) ([]model.Message, error) {
	q := messageSelect + `,
	` + summaryColumns + `
	FROM interview_messages m
	JOIN interviews ii ON ii.id = m.interview_id` + senderJoin + summaryJoins + `
	WHERE ii.interviewer_id = $1 OR ii.candidate_id = $1
	ORDER BY m.timestamp DESC, m.id DESC
	LIMIT $2`
	return r.queryMessages(ctx, scanMessageWithSummary, q, userID, limit)
}
