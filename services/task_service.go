package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"divyaAPI/internal/apperr"
	"divyaAPI/internal/storage"
	"divyaAPI/internal/task"
)

type TaskService struct {
	store  storage.Storage
	logger *zap.Logger
}

func NewTaskService(store storage.Storage, logger *zap.Logger) *TaskService {
	return &TaskService{store: store, logger: logger}
}

// ListTasks returns every task, most recently created first.
func (s *TaskService) ListTasks(ctx context.Context) ([]*task.Task, error) {
	return s.store.ListTasks(ctx)
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*task.Task, error) {
	taskID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.NotFound("task %s", id)
	}
	return s.store.GetTask(ctx, taskID)
}

// AddTask creates an incomplete task. Surrounding whitespace is dropped and
// blank text is rejected.
func (s *TaskService) AddTask(ctx context.Context, req *task.CreateTaskRequest) (*task.Task, error) {
	trim(&req.Text)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	t, err := s.store.CreateTask(ctx, req.Text, false)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Task created", zap.String("task_id", t.ID.String()))
	return t, nil
}

func (s *TaskService) SetTaskCompleted(ctx context.Context, id string, completed bool) (*task.Task, error) {
	taskID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.NotFound("task %s", id)
	}
	return s.store.SetTaskCompleted(ctx, taskID, completed)
}

// DeleteTask removes a task. Deleting an unknown id is not an error.
func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	taskID, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	return s.store.DeleteTask(ctx, taskID)
}
