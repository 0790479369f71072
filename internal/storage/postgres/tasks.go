package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"divyaAPI/internal/apperr"
	"divyaAPI/internal/task"
)

const taskColumns = `id, text, completed, created_at`

func (s *Store) ListTasks(ctx context.Context) ([]*task.Task, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY created_at DESC`)
	if err != nil {
		return nil, apperr.Storage("list tasks", err)
	}

	tasks, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[task.Task])
	if err != nil {
		return nil, apperr.Storage("scan tasks", err)
	}
	return tasks, nil
}

func (s *Store) GetTask(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	return s.scanTask(s.pool.QueryRow(ctx, query, id), id, "get task")
}

func (s *Store) CreateTask(ctx context.Context, text string, completed bool) (*task.Task, error) {
	query := `
	INSERT INTO tasks (id, text, completed)
	VALUES ($1, $2, $3)
	RETURNING ` + taskColumns

	id := uuid.New()
	return s.scanTask(s.pool.QueryRow(ctx, query, id, text, completed), id, "create task")
}

func (s *Store) SetTaskCompleted(ctx context.Context, id uuid.UUID, completed bool) (*task.Task, error) {
	query := `
	UPDATE tasks
	SET completed = $2
	WHERE id = $1
	RETURNING ` + taskColumns

	return s.scanTask(s.pool.QueryRow(ctx, query, id, completed), id, "update task")
}

func (s *Store) DeleteTask(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	return apperr.Storage("delete task", err)
}

func (s *Store) scanTask(row pgx.Row, id uuid.UUID, op string) (*task.Task, error) {
	var t task.Task
	err := row.Scan(&t.ID, &t.Text, &t.Completed, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("task %s", id)
	}
	if err != nil {
		return nil, apperr.Storage(op, err)
	}
	return &t, nil
}
