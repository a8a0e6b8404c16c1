package db

import (
	"context"

	"github.com/tasktrack/backend/internal/model"
)

func (db *Postgres) CreateUser(ctx context.Context, username, salt, passwordHash string, role model.Role) (*model.User, error) {
	query := `
		INSERT INTO users (username, salt, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, username, salt, password_hash, role, created_at
	`
	var user model.User
	err := db.Pool.QueryRow(ctx, query, username, salt, passwordHash, string(role)).Scan(
		&user.ID,
		&user.Username,
		&user.Salt,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

func (db *Postgres) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `
		SELECT id, username, salt, password_hash, role, created_at
		FROM users
		WHERE username = $1
	`
	var user model.User
	err := db.Pool.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Salt,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}
