package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/tasktrack/backend/internal/db"
	"github.com/tasktrack/backend/internal/model"
)

type TaskRepository interface {
	CreateTask(ctx context.Context, owner string, req model.TaskRequest) (*model.Task, error)
	UpdateTask(ctx context.Context, id int64, owner string, req model.TaskRequest) (*model.Task, error)
	GetTask(ctx context.Context, id int64, owner string) (*model.Task, error)
	ListTasksByStatus(ctx context.Context, owner string, status model.TaskStatus) ([]model.Task, error)
}

// TaskService scopes every read and write to the task owner.
type TaskService struct {
	repo     TaskRepository
	validate *validator.Validate
	log      zerolog.Logger
}

func NewTaskService(repo TaskRepository, log zerolog.Logger) *TaskService {
	return &TaskService{
		repo:     repo,
		validate: newValidator(),
		log:      log.With().Str("component", "tasks").Logger(),
	}
}

func (s *TaskService) Create(ctx context.Context, owner string, req model.TaskRequest) (*model.Task, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	task, err := s.repo.CreateTask(ctx, owner, req)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Str("owner", owner).Int64("task_id", task.ID).Msg("task created")
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, id int64, owner string, req model.TaskRequest) (*model.Task, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	task, err := s.repo.UpdateTask(ctx, id, owner, req)
	if err != nil {
		return nil, notFound(err)
	}
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, id int64, owner string) (*model.Task, error) {
	task, err := s.repo.GetTask(ctx, id, owner)
	if err != nil {
		return nil, notFound(err)
	}
	return task, nil
}

func (s *TaskService) ListByStatus(ctx context.Context, owner string, status model.TaskStatus) ([]model.Task, error) {
	if !status.Valid() {
		return nil, ErrInvalidInput
	}
	return s.repo.ListTasksByStatus(ctx, owner, status)
}

func notFound(err error) error {
	if errors.Is(err, db.ErrNotFound) {
		return ErrTaskNotFound
	}
	return err
}
