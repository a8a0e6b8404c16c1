package db

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/tasktrack/backend/internal/model"
)

// Memory is a process-local stand-in for Postgres, used for local runs
// (STORAGE_DRIVER=memory) and tests. It enforces the same uniqueness and
// ownership rules as the SQL schema.
type Memory struct {
	mu         sync.RWMutex
	users      map[string]model.User
	tasks      map[int64]model.Task
	nextUserID int64
	nextTaskID int64
	now        func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		users: make(map[string]model.User),
		tasks: make(map[int64]model.Task),
		now:   time.Now,
	}
}

func (m *Memory) CreateUser(_ context.Context, username, salt, passwordHash string, role model.Role) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[username]; ok {
		return nil, fmt.Errorf("%w: users_username_key", ErrDuplicate)
	}
	m.nextUserID++
	user := model.User{
		ID:           m.nextUserID,
		Username:     username,
		Salt:         salt,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    m.now(),
	}
	m.users[username] = user
	return &user, nil
}

func (m *Memory) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[username]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (m *Memory) CreateTask(_ context.Context, owner string, req model.TaskRequest) (*model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[owner]; !ok {
		return nil, fmt.Errorf("unknown task owner %q", owner)
	}
	m.nextTaskID++
	now := m.now()
	task := model.Task{
		ID:          m.nextTaskID,
		Owner:       owner,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.tasks[task.ID] = task
	return &task, nil
}

func (m *Memory) UpdateTask(_ context.Context, id int64, owner string, req model.TaskRequest) (*model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok || task.Owner != owner {
		return nil, ErrNotFound
	}
	task.Name = req.Name
	task.Description = req.Description
	task.Status = req.Status
	task.UpdatedAt = m.now()
	m.tasks[id] = task
	return &task, nil
}

func (m *Memory) GetTask(_ context.Context, id int64, owner string) (*model.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	task, ok := m.tasks[id]
	if !ok || task.Owner != owner {
		return nil, ErrNotFound
	}
	return &task, nil
}

func (m *Memory) ListTasksByStatus(_ context.Context, owner string, status model.TaskStatus) ([]model.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := []model.Task{}
	for _, task := range m.tasks {
		if task.Owner == owner && task.Status == status {
			list = append(list, task)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}
