package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasktrack/backend/internal/db"
	"github.com/tasktrack/backend/internal/model"
)

func newTaskFixture(t *testing.T) *TaskService {
	t.Helper()
	repo := db.NewMemory()
	for _, name := range []string{"alice", "bob"} {
		_, err := repo.CreateUser(context.Background(), name, "s", "h", model.RoleUser)
		require.NoError(t, err)
	}
	return NewTaskService(repo, zerolog.Nop())
}

func TestTaskServiceCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTaskFixture(t)

	tests := []struct {
		name    string
		req     model.TaskRequest
		wantErr bool
	}{
		{name: "complete", req: model.TaskRequest{Name: "Task 1", Description: "Task 1 desc", Status: model.TaskActive}},
		{name: "empty-description", req: model.TaskRequest{Name: "Task 1", Status: model.TaskActive}},
		{name: "missing-status", req: model.TaskRequest{Name: "Task 1"}, wantErr: true},
		{name: "unknown-status", req: model.TaskRequest{Name: "Task 1", Status: "DONE"}, wantErr: true},
		{name: "missing-name", req: model.TaskRequest{Description: "d", Status: model.TaskActive}, wantErr: true},
		{name: "empty", req: model.TaskRequest{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := svc.Create(ctx, "alice", tt.req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.Nil(t, task)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, task.ID)
			assert.Equal(t, "alice", task.Owner)
		})
	}
}

func TestTaskServiceOwnership(t *testing.T) {
	ctx := context.Background()
	svc := newTaskFixture(t)

	task, err := svc.Create(ctx, "alice", model.TaskRequest{Name: "Task 1", Status: model.TaskActive})
	require.NoError(t, err)

	got, err := svc.Get(ctx, task.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Task 1", got.Name)

	_, err = svc.Get(ctx, task.ID, "bob")
	assert.ErrorIs(t, err, ErrTaskNotFound)
	_, err = svc.Get(ctx, 999, "alice")
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = svc.Update(ctx, task.ID, "bob", model.TaskRequest{Name: "mine now", Status: model.TaskActive})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = svc.Update(ctx, task.ID, "alice", model.TaskRequest{Name: "", Status: model.TaskActive})
	assert.ErrorIs(t, err, ErrInvalidInput)

	updated, err := svc.Update(ctx, task.ID, "alice", model.TaskRequest{Name: "Task 1b", Status: model.TaskInactive})
	require.NoError(t, err)
	assert.Equal(t, model.TaskInactive, updated.Status)
}

func TestTaskServiceListByStatus(t *testing.T) {
	ctx := context.Background()
	svc := newTaskFixture(t)

	for _, req := range []model.TaskRequest{
		{Name: "a", Status: model.TaskActive},
		{Name: "b", Status: model.TaskInactive},
		{Name: "c", Status: model.TaskActive},
	} {
		_, err := svc.Create(ctx, "alice", req)
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, "bob", model.TaskRequest{Name: "d", Status: model.TaskActive})
	require.NoError(t, err)

	active, err := svc.ListByStatus(ctx, "alice", model.TaskActive)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "a", active[0].Name)
	assert.Equal(t, "c", active[1].Name)

	_, err = svc.ListByStatus(ctx, "alice", "DONE")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
