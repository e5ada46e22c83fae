package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"interviewhub/internal/model"
	"interviewhub/internal/repository"
)

// CodingSessionPostgres is a PostgreSQL implementation of repository.CodingSessionRepository.
type CodingSessionPostgres struct {
	db *sql.DB
}

// NewCodingSessionPostgres creates a new CodingSessionPostgres repository.
func NewCodingSessionPostgres(db *sql.DB) *CodingSessionPostgres {
	return &CodingSessionPostgres{db: db}
}

var _ repository.CodingSessionRepository = (*CodingSessionPostgres)(nil)

const codingSessionColumns = `cs.id, cs.interview_id, cs.language, cs.initial_code, cs.final_code,
	cs.session_data, cs.created_at, cs.updated_at`

func codingSessionTargets(cs *model.CodingSession, data *[]byte) []any {
	return []any{
		&cs.ID, &cs.InterviewID, &cs.Language, &cs.InitialCode, &cs.FinalCode,
		data, &cs.CreatedAt, &cs.UpdatedAt,
	}
}

func scanCodingSession(s rowScanner) (*model.CodingSession, error) {
	var (
		cs   model.CodingSession
		data []byte
	)
	if err := s.Scan(codingSessionTargets(&cs, &data)...); err != nil {
		return nil, err
	}
	cs.SessionData = data
	return &cs, nil
}

// FindByInterview returns the editor row of an interview.
func (r *CodingSessionPostgres) FindByInterview(ctx context.Context, interviewID string) (*model.CodingSession, error) {
	q := `SELECT ` + codingSessionColumns + `
	FROM coding_sessions cs
	WHERE cs.interview_id = $1`
	return scanCodingSession(r.db.QueryRowContext(ctx, q, interviewID))
}

// Upsert inserts the row or merges the supplied columns into the existing one.
// interview_id is always the first column and the conflict target.
func (r *CodingSessionPostgres) Upsert(ctx context.Context, interviewID string, f repository.CodingSessionFields, updatedAt time.Time) (*model.CodingSession, error) {
	cols := []string{"interview_id"}
	args := []any{interviewID}
	add := func(col string, v any) {
		cols = append(cols, col)
		args = append(args, v)
	}

	if f.Language != nil {
		add("language", *f.Language)
	}
	if f.InitialCode != nil {
		add("initial_code", *f.InitialCode)
	}
	if f.FinalCode != nil {
		add("final_code", *f.FinalCode)
	}
	if f.SessionData != nil {
		add("session_data", []byte(f.SessionData))
	}
	add("updated_at", updatedAt)

	placeholders := make([]string, len(cols))
	updates := make([]string, 0, len(cols)-1)
	for i, col := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		if col != "interview_id" {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
		}
	}

	q := fmt.Sprintf(`INSERT INTO coding_sessions AS cs (%s)
	VALUES (%s)
	ON CONFLICT (interview_id) DO UPDATE SET %s
	RETURNING `+codingSessionColumns,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)
	return scanCodingSession(r.db.QueryRowContext(ctx, q, args...))
}

// ListForUser returns the sessions of every interview the user took part in.
func (r *CodingSessionPostgres) ListForUser(ctx context.Context, p repository.Participant, userID string) ([]model.CodingSession, error) {
	q := `SELECT ` + codingSessionColumns + `,
	` + summaryColumns + `
	FROM coding_sessions cs
	JOIN interviews ii ON ii.id = cs.interview_id` + summaryJoins + `
	WHERE ii.` + p.Column() + ` = $1
	ORDER BY cs.updated_at DESC, cs.id DESC`

	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CodingSession, 0)
	for rows.Next() {
		var (
			cs      model.CodingSession
			data    []byte
			summary nullSummary
		)
		dest := append(codingSessionTargets(&cs, &data), summary.targets()...)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		cs.SessionData = data
		cs.Interview = summary.summary()
		items = append(items, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
