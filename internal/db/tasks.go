package db

import (
	"context"

	"github.com/tasktrack/backend/internal/model"
)

const taskColumns = `id, owner, name, description, status, created_at, updated_at`

func (db *Postgres) CreateTask(ctx context.Context, owner string, req model.TaskRequest) (*model.Task, error) {
	query := `
		INSERT INTO tasks (owner, name, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + taskColumns
	task, err := scanTask(db.Pool.QueryRow(ctx, query, owner, req.Name, req.Description, string(req.Status)))
	if err != nil {
		return nil, mapError(err)
	}
	return task, nil
}

// UpdateTask only touches rows owned by owner; ErrNotFound covers both
// a missing id and someone else's task.
func (db *Postgres) UpdateTask(ctx context.Context, id int64, owner string, req model.TaskRequest) (*model.Task, error) {
	query := `
		UPDATE tasks
		SET name = $1, description = $2, status = $3, updated_at = NOW()
		WHERE id = $4 AND owner = $5
		RETURNING ` + taskColumns
	task, err := scanTask(db.Pool.QueryRow(ctx, query, req.Name, req.Description, string(req.Status), id, owner))
	if err != nil {
		return nil, mapError(err)
	}
	return task, nil
}

func (db *Postgres) GetTask(ctx context.Context, id int64, owner string) (*model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND owner = $2`
	task, err := scanTask(db.Pool.QueryRow(ctx, query, id, owner))
	if err != nil {
		return nil, mapError(err)
	}
	return task, nil
}

func (db *Postgres) ListTasksByStatus(ctx context.Context, owner string, status model.TaskStatus) ([]model.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE owner = $1 AND status = $2
		ORDER BY id
	`
	rows, err := db.Pool.Query(ctx, query, owner, string(status))
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	list := []model.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, mapError(err)
		}
		list = append(list, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return list, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*model.Task, error) {
	var t model.Task
	err := row.Scan(
		&t.ID,
		&t.Owner,
		&t.Name,
		&t.Description,
		&t.Status,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
