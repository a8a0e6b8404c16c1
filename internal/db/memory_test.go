package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasktrack/backend/internal/model"
)

func TestMemoryUsers(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	user, err := m.CreateUser(ctx, "alice", "salt", "hash", model.RoleUser)
	require.NoError(t, err)
	assert.EqualValues(t, 1, user.ID)

	_, err = m.CreateUser(ctx, "alice", "salt2", "hash2", model.RoleUser)
	assert.ErrorIs(t, err, ErrDuplicate)

	got, err := m.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "salt", got.Salt)
	assert.Equal(t, model.RoleUser, got.Role)

	_, err = m.GetUserByUsername(ctx, "bob")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryTasksAreOwnerScoped(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	_, err := m.CreateUser(ctx, "alice", "s", "h", model.RoleUser)
	require.NoError(t, err)
	_, err = m.CreateUser(ctx, "bob", "s", "h", model.RoleUser)
	require.NoError(t, err)

	task, err := m.CreateTask(ctx, "alice", model.TaskRequest{Name: "write", Status: model.TaskActive})
	require.NoError(t, err)
	_, err = m.CreateTask(ctx, "alice", model.TaskRequest{Name: "idle", Status: model.TaskInactive})
	require.NoError(t, err)

	_, err = m.GetTask(ctx, task.ID, "bob")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.UpdateTask(ctx, task.ID, "bob", model.TaskRequest{Name: "steal", Status: model.TaskActive})
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := m.UpdateTask(ctx, task.ID, "alice", model.TaskRequest{Name: "write more", Status: model.TaskInactive})
	require.NoError(t, err)
	assert.Equal(t, "write more", updated.Name)

	inactive, err := m.ListTasksByStatus(ctx, "alice", model.TaskInactive)
	require.NoError(t, err)
	assert.Len(t, inactive, 2)

	active, err := m.ListTasksByStatus(ctx, "bob", model.TaskActive)
	require.NoError(t, err)
	assert.Empty(t, active)

	_, err = m.CreateTask(ctx, "carol", model.TaskRequest{Name: "x", Status: model.TaskActive})
	assert.Error(t, err)
}
