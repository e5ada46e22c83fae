// Package migration creates the interview schema on an empty database.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable marks a migrated database.
const sentinelTable = "public.interviews"

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_user_profiles",
		SQL: `CREATE TABLE IF NOT EXISTS user_profiles (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  full_name  TEXT        NOT NULL,
  email      TEXT        UNIQUE,
  role       TEXT        CHECK (role IN ('interviewer', 'candidate')),
  avatar_url TEXT,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_interviews",
		SQL: `CREATE TABLE IF NOT EXISTS interviews (
  id               UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  title            TEXT        NOT NULL,
  description      TEXT,
  interviewer_id   UUID        NOT NULL REFERENCES user_profiles (id),
  candidate_id     UUID        NOT NULL REFERENCES user_profiles (id),
  scheduled_at     TIMESTAMPTZ NOT NULL,
  duration_minutes INTEGER     NOT NULL DEFAULT 60 CHECK (duration_minutes > 0),
  interview_type   TEXT        NOT NULL DEFAULT 'technical',
  difficulty_level TEXT        NOT NULL DEFAULT 'mid',
  status           TEXT        NOT NULL DEFAULT 'scheduled'
                   CHECK (status IN ('scheduled', 'in_progress', 'completed', 'cancelled')),
  rating           INTEGER     CHECK (rating BETWEEN 1 AND 5),
  position_title   TEXT,
  meeting_url      TEXT,
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_interviews_scheduled_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_interviews_scheduled_at ON interviews (scheduled_at);`,
	},
	{
		Name: "create_index_interviews_interviewer_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_interviews_interviewer_id ON interviews (interviewer_id);`,
	},
	{
		Name: "create_index_interviews_candidate_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_interviews_candidate_id ON interviews (candidate_id);`,
	},
	{
		Name: "create_table_interview_messages",
		SQL: `CREATE TABLE IF NOT EXISTS interview_messages (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  interview_id UUID        NOT NULL REFERENCES interviews (id) ON DELETE CASCADE,
  sender_id    UUID        REFERENCES user_profiles (id) ON DELETE SET NULL,
  message      TEXT        NOT NULL DEFAULT '',
  message_type TEXT        NOT NULL DEFAULT 'text'
               CHECK (message_type IN ('text', 'file', 'code', 'system')),
  file_name    TEXT,
  file_path    TEXT,
  file_size    BIGINT      CHECK (file_size >= 0),
  timestamp    TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at   TIMESTAMPTZ
);`,
	},
	{
		Name: "create_index_interview_messages_interview_id_timestamp",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_interview_messages_interview_id_timestamp ON interview_messages (interview_id, timestamp);`,
	},
	{
		Name: "create_table_coding_sessions",
		SQL: `CREATE TABLE IF NOT EXISTS coding_sessions (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  interview_id UUID        NOT NULL UNIQUE REFERENCES interviews (id) ON DELETE CASCADE,
  language     TEXT        NOT NULL DEFAULT 'javascript',
  initial_code TEXT        NOT NULL DEFAULT '',
  final_code   TEXT        NOT NULL DEFAULT '',
  session_data JSONB       NOT NULL DEFAULT '{}'::jsonb,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
}

// EnsureMigrated creates the schema unless the interviews table already
// exists. All steps run in one transaction, so a failed step leaves the
// database untouched.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))
	start := time.Now()

	log.Info("db migration check", zap.String("status", "starting"))

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass($1) IS NOT NULL", sentinelTable).Scan(&exists); err != nil {
		log.Error("db migration failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}
	if exists {
		log.Info("schema already exists, skipping migration", zap.Duration("duration", time.Since(start)))
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("db migration failed", zap.Error(err))
		return fmt.Errorf("begin migration: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := tx.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db migration failed",
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Duration("step_duration", time.Since(stepStart)),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		log.Debug("db migration step", zap.String("migration_step", step.Name), zap.Duration("step_duration", time.Since(stepStart)))
	}

	if err := tx.Commit(); err != nil {
		log.Error("db migration failed", zap.Error(err))
		return fmt.Errorf("commit migration: %w", err)
	}

	log.Info("db migration success", zap.Int("steps", len(steps)), zap.Duration("duration", time.Since(start)))
	return nil
}
