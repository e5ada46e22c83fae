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

// InterviewPostgres is a PostgreSQL implementation of repository.InterviewRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type InterviewPostgres struct {
	db *sql.DB
}

// NewInterviewPostgres creates a new InterviewPostgres repository.
func NewInterviewPostgres(db *sql.DB) *InterviewPostgres {
	return &InterviewPostgres{db: db}
}

var _ repository.InterviewRepository = (*InterviewPostgres)(nil)

// interviewSelect projects an interview aliased i with both participant profiles.
// Callers append FROM/JOIN clauses that define i, iv and cd.
var interviewSelect = `SELECT i.id, i.title, i.description, i.interviewer_id, i.candidate_id, i.scheduled_at,
	i.duration_minutes, i.interview_type, i.difficulty_level, i.status, i.rating,
	i.position_title, i.meeting_url, i.created_at, i.updated_at,
	` + profileColumns("iv") + `,
	` + profileColumns("cd")

const interviewJoins = `
	LEFT JOIN user_profiles iv ON iv.id = i.interviewer_id
	LEFT JOIN user_profiles cd ON cd.id = i.candidate_id`

func scanInterview(s rowScanner) (*model.Interview, error) {
	var (
		it                             model.Interview
		description, position, meeting sql.NullString
		status                         string
		rating                         sql.NullInt64
		interviewer, candidate         nullProfile
	)
	dest := []any{
		&it.ID, &it.Title, &description, &it.InterviewerID, &it.CandidateID, &it.ScheduledAt,
		&it.DurationMinutes, &it.InterviewType, &it.DifficultyLevel, &status, &rating,
		&position, &meeting, &it.CreatedAt, &it.UpdatedAt,
	}
	dest = append(dest, interviewer.targets()...)
	dest = append(dest, candidate.targets()...)

	if err := s.Scan(dest...); err != nil {
		return nil, err
	}

	it.Description = description.String
	it.PositionTitle = position.String
	it.MeetingURL = meeting.String
	it.Status = model.InterviewStatus(status)
	it.Rating = intPtr(rating)
	it.Interviewer = interviewer.profile()
	it.Candidate = candidate.profile()
	return &it, nil
}

func (r *InterviewPostgres) queryInterviews(ctx context.Context, q string, args ...any) ([]model.Interview, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Interview, 0)
	for rows.Next() {
		it, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// List returns interviews matching f, ordered by scheduled_at descending.
func (r *InterviewPostgres) List(ctx context.Context, f repository.InterviewFilter) ([]model.Interview, error) {
	var c conditions
	if f.Status != "" {
		c.add("i.status = $%d", string(f.Status))
	}
	if f.Type != "" {
		c.add("i.interview_type = $%d", f.Type)
	}
	if f.DateFrom != nil {
		c.add("i.scheduled_at >= $%d", *f.DateFrom)
	}
	if f.DateTo != nil {
		c.add("i.scheduled_at <= $%d", *f.DateTo)
	}

	q := interviewSelect + "\n\tFROM interviews i" + interviewJoins + c.where() +
		"\n\tORDER BY i.scheduled_at DESC, i.id DESC"
	if f.Limit > 0 {
		q += " LIMIT " + c.next(f.Limit)
	}
	return r.queryInterviews(ctx, q, c.args...)
}

// FindByID fetches a single interview by its ID.
func (r *InterviewPostgres) FindByID(ctx context.Context, id string) (*model.Interview, error) {
	q := interviewSelect + "\n\tFROM interviews i" + interviewJoins + "\n\tWHERE i.id = $1"
	return scanInterview(r.db.QueryRowContext(ctx, q, id))
}

// Create inserts a new interview row and returns the stored record with profiles joined.
func (r *InterviewPostgres) Create(ctx context.Context, in *model.Interview) (*model.Interview, error) {
	q := `WITH i AS (
		INSERT INTO interviews (id, title, description, interviewer_id, candidate_id, scheduled_at,
			duration_minutes, interview_type, difficulty_level, status, position_title, meeting_url,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING *
	)
	` + interviewSelect + "\n\tFROM i" + interviewJoins

	row := r.db.QueryRowContext(ctx, q,
		in.ID,
		in.Title,
		nullString(in.Description),
		in.InterviewerID,
		in.CandidateID,
		in.ScheduledAt,
		in.DurationMinutes,
		in.InterviewType,
		in.DifficultyLevel,
		string(in.Status),
		nullString(in.PositionTitle),
		nullString(in.MeetingURL),
		in.CreatedAt,
		in.UpdatedAt,
	)
	return scanInterview(row)
}

// Update applies the provided fields. updated_at is always written.
func (r *InterviewPostgres) Update(ctx context.Context, id string, p model.InterviewPatch, updatedAt time.Time) (*model.Interview, error) {
	var c conditions
	var sets []string
	set := func(col string, v any) {
		sets = append(sets, col+" = "+c.next(v))
	}

	if p.Title != nil {
		set("title", *p.Title)
	}
	if p.Description != nil {
		set("description", nullString(*p.Description))
	}
	if p.ScheduledAt != nil {
		set("scheduled_at", *p.ScheduledAt)
	}
	if p.DurationMinutes != nil {
		set("duration_minutes", *p.DurationMinutes)
	}
	if p.InterviewType != nil {
		set("interview_type", *p.InterviewType)
	}
	if p.DifficultyLevel != nil {
		set("difficulty_level", *p.DifficultyLevel)
	}
	if p.Status != nil {
		set("status", string(*p.Status))
	}
	if p.Rating != nil {
		set("rating", nullInt(p.Rating))
	}
	if p.PositionTitle != nil {
		set("position_title", nullString(*p.PositionTitle))
	}
	if p.MeetingURL != nil {
		set("meeting_url", nullString(*p.MeetingURL))
	}
	set("updated_at", updatedAt)

	q := fmt.Sprintf(`WITH i AS (
		UPDATE interviews SET %s WHERE id = %s
		RETURNING *
	)
	`, strings.Join(sets, ", "), c.next(id)) + interviewSelect + "\n\tFROM i" + interviewJoins

	return scanInterview(r.db.QueryRowContext(ctx, q, c.args...))
}

// Delete removes an interview and returns the removed row.
// Messages and coding sessions go with it through ON DELETE CASCADE; the
// service removes stored attachments afterwards.
func (r *InterviewPostgres) Delete(ctx context.Context, id string) (*model.Interview, error) {
	q := `WITH i AS (
		DELETE FROM interviews WHERE id = $1
		RETURNING *
	)
	` + interviewSelect + "\n\tFROM i" + interviewJoins
	return scanInterview(r.db.QueryRowContext(ctx, q, id))
}

// Upcoming returns scheduled interviews from now on, soonest first.
func (r *InterviewPostgres) Upcoming(ctx context.Context, now time.Time, limit int) ([]model.Interview, error) {
	q := interviewSelect + "\n\tFROM interviews i" + interviewJoins + `
	WHERE i.status = $1 AND i.scheduled_at >= $2
	ORDER BY i.scheduled_at ASC, i.id ASC
	LIMIT $3`
	return r.queryInterviews(ctx, q, string(model.StatusScheduled), now, limit)
}

// CountUpcoming counts scheduled interviews of a participant from now on.
func (r *InterviewPostgres) CountUpcoming(ctx context.Context, p repository.Participant, userID string, now time.Time) (int, error) {
	q := fmt.Sprintf(`SELECT COUNT(*) FROM interviews WHERE %s = $1 AND status = $2 AND scheduled_at >= $3`, p.Column())
	var n int
	if err := r.db.QueryRowContext(ctx, q, userID, string(model.StatusScheduled), now).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CompletedRatings lists the ratings of a participant's completed interviews.
func (r *InterviewPostgres) CompletedRatings(ctx context.Context, p repository.Participant, userID string) ([]*int, error) {
	q := fmt.Sprintf(`SELECT rating FROM interviews WHERE %s = $1 AND status = $2`, p.Column())
	rows, err := r.db.QueryContext(ctx, q, userID, string(model.StatusCompleted))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := make([]*int, 0)
	for rows.Next() {
		var v sql.NullInt64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		ratings = append(ratings, intPtr(v))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ratings, nil
}

// CountCreatedSince counts a participant's interviews created at or after since.
func (r *InterviewPostgres) CountCreatedSince(ctx context.Context, p repository.Participant, userID string, since time.Time) (int, error) {
	q := fmt.Sprintf(`SELECT COUNT(*) FROM interviews WHERE %s = $1 AND created_at >= $2`, p.Column())
	var n int
	if err := r.db.QueryRowContext(ctx, q, userID, since).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
