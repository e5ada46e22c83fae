package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interviewhub/internal/repository"
)

var (
	codingSessionCols        = columns("coding_session", 8)
	codingSessionSummaryCols = columns("coding_session_summary", 17)
)

func codingSessionValues(code string, at time.Time) []driver.Value {
	return []driver.Value{"cs-1", "int-1", "go", "", code, `{"cursor":4}`, at, at}
}

func strPtr(s string) *string { return &s }

func TestCodingSessionPostgres_FindByInterview(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCodingSessionPostgres(db)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`FROM coding_sessions cs WHERE cs.interview_id = \$1`).
			WithArgs("int-1").
			WillReturnRows(sqlmock.NewRows(codingSessionCols).AddRow(codingSessionValues("package main", time.Now())...))

		cs, err := repo.FindByInterview(context.Background(), "int-1")

		require.NoError(t, err)
		assert.Equal(t, "go", cs.Language)
		assert.Equal(t, "package main", cs.FinalCode)
		assert.JSONEq(t, `{"cursor":4}`, string(cs.SessionData))
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM coding_sessions cs WHERE cs.interview_id = \$1`).
			WithArgs("int-2").
			WillReturnRows(sqlmock.NewRows(codingSessionCols))

		cs, err := repo.FindByInterview(context.Background(), "int-2")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, cs)
	})
}

func TestCodingSessionPostgres_Upsert(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name   string
		fields repository.CodingSessionFields
		query  string
		args   []driver.Value
	}{
		{
			name: "full write",
			fields: repository.CodingSessionFields{
				Language:    strPtr("go"),
				InitialCode: strPtr(""),
				FinalCode:   strPtr("package main"),
				SessionData: json.RawMessage(`{}`),
			},
			query: `INSERT INTO coding_sessions AS cs (interview_id, language, initial_code, final_code, session_data, updated_at) ` +
				`VALUES ($1, $2, $3, $4, $5, $6) ` +
				`ON CONFLICT (interview_id) DO UPDATE SET language = EXCLUDED.language, initial_code = EXCLUDED.initial_code, ` +
				`final_code = EXCLUDED.final_code, session_data = EXCLUDED.session_data, updated_at = EXCLUDED.updated_at`,
			args: []driver.Value{"int-1", "go", "", "package main", []byte(`{}`), now},
		},
		{
			name:   "code only leaves initial code and session data alone",
			fields: repository.CodingSessionFields{Language: strPtr("go"), FinalCode: strPtr("package main")},
			query: `INSERT INTO coding_sessions AS cs (interview_id, language, final_code, updated_at) ` +
				`VALUES ($1, $2, $3, $4) ` +
				`ON CONFLICT (interview_id) DO UPDATE SET language = EXCLUDED.language, final_code = EXCLUDED.final_code, updated_at = EXCLUDED.updated_at`,
			args: []driver.Value{"int-1", "go", "package main", now},
		},
		{
			name:   "session data only",
			fields: repository.CodingSessionFields{SessionData: json.RawMessage(`{"cursor":4}`)},
			query: `INSERT INTO coding_sessions AS cs (interview_id, session_data, updated_at) ` +
				`VALUES ($1, $2, $3) ` +
				`ON CONFLICT (interview_id) DO UPDATE SET session_data = EXCLUDED.session_data, updated_at = EXCLUDED.updated_at`,
			args: []driver.Value{"int-1", []byte(`{"cursor":4}`), now},
		},
		{
			name:   "nothing but the conflict key",
			fields: repository.CodingSessionFields{},
			query: `INSERT INTO coding_sessions AS cs (interview_id, updated_at) VALUES ($1, $2) ` +
				`ON CONFLICT (interview_id) DO UPDATE SET updated_at = EXCLUDED.updated_at`,
			args: []driver.Value{"int-1", now},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			repo := NewCodingSessionPostgres(db)

			mock.ExpectQuery(regexp.QuoteMeta(tt.query)).
				WithArgs(tt.args...).
				WillReturnRows(sqlmock.NewRows(codingSessionCols).AddRow(codingSessionValues("package main", now)...))

			cs, err := repo.Upsert(context.Background(), "int-1", tt.fields, now)

			require.NoError(t, err)
			assert.Equal(t, "int-1", cs.InterviewID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCodingSessionPostgres_ListForUser(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCodingSessionPostgres(db)
	now := time.Now().UTC()

	row := append(codingSessionValues("package main", now), summaryValues(now)...)
	mock.ExpectQuery(`FROM coding_sessions cs JOIN interviews ii ON ii.id = cs.interview_id (.+) WHERE ii.interviewer_id = \$1 ORDER BY cs.updated_at DESC`).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(codingSessionSummaryCols).AddRow(row...))

	items, err := repo.ListForUser(context.Background(), repository.AsInterviewer, "u-1")

	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Interview)
	assert.Equal(t, "int-1", items[0].Interview.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
