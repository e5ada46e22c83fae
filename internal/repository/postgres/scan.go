package postgres

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"interviewhub/internal/model"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// nullProfile scans a LEFT JOINed user_profiles row.
type nullProfile struct {
	ID        sql.NullString
	FullName  sql.NullString
	Email     sql.NullString
	Role      sql.NullString
	AvatarURL sql.NullString
}

func profileColumns(alias string) string {
	return fmt.Sprintf("%[1]s.id, %[1]s.full_name, %[1]s.email, %[1]s.role, %[1]s.avatar_url", alias)
}

func (p *nullProfile) targets() []any {
	return []any{&p.ID, &p.FullName, &p.Email, &p.Role, &p.AvatarURL}
}

func (p *nullProfile) profile() *model.Profile {
	if !p.ID.Valid {
		return nil
	}
	return &model.Profile{
		ID:        p.ID.String,
		FullName:  p.FullName.String,
		Email:     p.Email.String,
		Role:      p.Role.String,
		AvatarURL: p.AvatarURL.String,
	}
}

// summaryColumns selects the interview summary joined onto messages and
// coding sessions. The interview is aliased ii, its participants iv and cd.
const summaryColumns = `ii.id, ii.title, ii.status, ii.scheduled_at, ii.position_title,
	iv.id, iv.full_name, cd.id, cd.full_name`

const summaryJoins = `
	LEFT JOIN user_profiles iv ON iv.id = ii.interviewer_id
	LEFT JOIN user_profiles cd ON cd.id = ii.candidate_id`

type nullSummary struct {
	ID              sql.NullString
	Title           sql.NullString
	Status          sql.NullString
	ScheduledAt     sql.NullTime
	PositionTitle   sql.NullString
	InterviewerID   sql.NullString
	InterviewerName sql.NullString
	CandidateID     sql.NullString
	CandidateName   sql.NullString
}

func (s *nullSummary) targets() []any {
	return []any{
		&s.ID, &s.Title, &s.Status, &s.ScheduledAt, &s.PositionTitle,
		&s.InterviewerID, &s.InterviewerName, &s.CandidateID, &s.CandidateName,
	}
}

func (s *nullSummary) summary() *model.InterviewSummary {
	if !s.ID.Valid {
		return nil
	}
	out := &model.InterviewSummary{
		ID:            s.ID.String,
		Title:         s.Title.String,
		Status:        model.InterviewStatus(s.Status.String),
		ScheduledAt:   s.ScheduledAt.Time,
		PositionTitle: s.PositionTitle.String,
	}
	if s.InterviewerID.Valid {
		out.Interviewer = &model.Profile{ID: s.InterviewerID.String, FullName: s.InterviewerName.String}
	}
	if s.CandidateID.Valid {
		out.Candidate = &model.Profile{ID: s.CandidateID.String, FullName: s.CandidateName.String}
	}
	return out
}

// conditions accumulates AND-ed WHERE clauses with positional arguments.
// Each expression carries a single %d verb for its placeholder index.
type conditions struct {
	clauses []string
	args    []any
}

func (c *conditions) add(expr string, arg any) {
	c.args = append(c.args, arg)
	c.clauses = append(c.clauses, fmt.Sprintf(expr, len(c.args)))
}

// next reserves a placeholder for an argument that is not a condition (LIMIT, SET values).
func (c *conditions) next(arg any) string {
	c.args = append(c.args, arg)
	return fmt.Sprintf("$%d", len(c.args))
}

func (c *conditions) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func timePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
