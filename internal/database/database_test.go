package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interviewhub/internal/config"
)

func TestBuildPostgresDSN(t *testing.T) {
	tests := []struct {
		name    string
		config  config.DatabaseConfig
		want    string
		wantErr bool
	}{
		{
			name:   "password and sslmode",
			config: config.DatabaseConfig{Host: "db", Port: "5432", User: "hub", Password: "s3cret", Name: "interviews", SSLMode: "disable"},
			want:   "postgres://hub:s3cret@db:5432/interviews?application_name=interviewhub&sslmode=disable",
		},
		{
			name:   "no password",
			config: config.DatabaseConfig{Host: "db", Port: "5432", User: "hub", Name: "interviews", SSLMode: "require"},
			want:   "postgres://hub@db:5432/interviews?application_name=interviewhub&sslmode=require",
		},
		{
			name:   "password is escaped",
			config: config.DatabaseConfig{Host: "db", Port: "6543", User: "hub", Password: "p@ss/word", Name: "interviews"},
			want:   "postgres://hub:p%40ss%2Fword@db:6543/interviews?application_name=interviewhub",
		},
		{name: "missing host", config: config.DatabaseConfig{Port: "5432", User: "hub", Name: "interviews"}, wantErr: true},
		{name: "missing port", config: config.DatabaseConfig{Host: "db", User: "hub", Name: "interviews"}, wantErr: true},
		{name: "missing user", config: config.DatabaseConfig{Host: "db", Port: "5432", Name: "interviews"}, wantErr: true},
		{name: "missing name", config: config.DatabaseConfig{Host: "db", Port: "5432", User: "hub"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildPostgresDSN(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func stubOpen(t *testing.T, db *sql.DB, err error) {
	t.Helper()
	orig := sqlOpen
	sqlOpen = func(string, string) (*sql.DB, error) { return db, err }
	t.Cleanup(func() { sqlOpen = orig })
}

func TestNewPostgres(t *testing.T) {
	conf := config.DatabaseConfig{
		Host:               "db",
		Port:               "5432",
		User:               "hub",
		Password:           "s3cret",
		Name:               "interviews",
		MaxOpenConns:       10,
		MaxIdleConns:       5,
		ConnMaxLifetimeSec: 300,
	}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		stubOpen(t, db, nil)
		mock.ExpectPing()

		got, err := NewPostgres(context.Background(), conf)

		require.NoError(t, err)
		assert.Equal(t, 10, got.Stats().MaxOpenConnections)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("open error", func(t *testing.T) {
		stubOpen(t, nil, errors.New("open error"))

		got, err := NewPostgres(context.Background(), conf)

		assert.ErrorContains(t, err, "sql open: open error")
		assert.Nil(t, got)
	})

	t.Run("ping error closes the pool", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		stubOpen(t, db, nil)
		mock.ExpectPing().WillReturnError(errors.New("ping failed"))
		mock.ExpectClose()

		got, err := NewPostgres(context.Background(), conf)

		assert.ErrorContains(t, err, "db ping: ping failed")
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid config", func(t *testing.T) {
		got, err := NewPostgres(context.Background(), config.DatabaseConfig{})

		assert.Error(t, err)
		assert.Nil(t, got)
	})
}
