package db

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasktrack/backend/internal/config"
	"github.com/tasktrack/backend/internal/model"
)

func TestBuildPostgresURL(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.PostgresConfig
		want    string
		wantErr bool
	}{
		{
			name: "database-url-wins",
			cfg:  config.PostgresConfig{DatabaseURL: "postgres://a@b/c", User: "ignored"},
			want: "postgres://a@b/c",
		},
		{
			name: "parts-with-password",
			cfg: config.PostgresConfig{
				Host: "db", Port: "5433", User: "tasks", Password: "s3cret", Database: "tasks", SSLMode: "disable",
			},
			want: "postgres://tasks:s3cret@db:5433/tasks?sslmode=disable",
		},
		{
			name: "parts-without-password",
			cfg:  config.PostgresConfig{Host: "localhost", Port: "5432", User: "tasks", Database: "tasks", SSLMode: "require"},
			want: "postgres://tasks@localhost:5432/tasks?sslmode=require",
		},
		{
			name:    "missing-user",
			cfg:     config.PostgresConfig{Host: "localhost", Port: "5432", Database: "tasks"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildPostgresURL(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil))
	assert.ErrorIs(t, mapError(pgx.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, mapError(fmt.Errorf("scan: %w", pgx.ErrNoRows)), ErrNotFound)
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}), ErrDuplicate)

	other := errors.New("connection reset")
	assert.Equal(t, other, mapError(other))
	assert.NotErrorIs(t, mapError(&pgconn.PgError{Code: "23503"}), ErrDuplicate)
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrations.ReadDir(migrationsDir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "00001_users.sql", entries[0].Name())
	assert.Equal(t, "00002_tasks.sql", entries[1].Name())
}

func TestListTasksByStatusQueryFailure(t *testing.T) {
	pool, err := pgxpool.New(context.Background(), "postgres://tasktrack@127.0.0.1:1/tasktrack?connect_timeout=1")
	require.NoError(t, err)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tasks, err := NewPostgres(pool).ListTasksByStatus(ctx, "alice", model.TaskActive)
	require.Error(t, err)
	assert.Nil(t, tasks)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrDuplicate)
}
