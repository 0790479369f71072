package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"divyaAPI/internal/apperr"
	"divyaAPI/internal/storage/memory"
	"divyaAPI/internal/task"
)

func TestTaskService_AddThenList(t *testing.T) {
	svc := NewTaskService(memory.New(), zap.NewNop())
	ctx := context.Background()

	for _, text := range []string{"Chant 108 times", "  Pranayama  ", "नमस्ते"} {
		created, err := svc.AddTask(ctx, &task.CreateTaskRequest{Text: text})
		require.NoError(t, err)
		assert.False(t, created.Completed)

		tasks, err := svc.ListTasks(ctx)
		require.NoError(t, err)

		found := false
		for _, tk := range tasks {
			if tk.ID == created.ID {
				found = true
				assert.Equal(t, created.Text, tk.Text)
				assert.False(t, tk.Completed)
			}
		}
		assert.True(t, found, "created task %q missing from list", text)
	}
}

func TestTaskService_AddTrimsText(t *testing.T) {
	svc := NewTaskService(memory.New(), zap.NewNop())

	created, err := svc.AddTask(context.Background(), &task.CreateTaskRequest{Text: "  Pranayama \n"})
	require.NoError(t, err)
	assert.Equal(t, "Pranayama", created.Text)
}

func TestTaskService_AddRejectsEmpty(t *testing.T) {
	db := memory.New()
	svc := NewTaskService(db, zap.NewNop())
	ctx := context.Background()

	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := svc.AddTask(ctx, &task.CreateTaskRequest{Text: text})
		assert.ErrorIs(t, err, apperr.ErrValidation)
		assert.Contains(t, err.Error(), "text is required")
	}

	tasks, _ := db.ListTasks(ctx)
	assert.Empty(t, tasks)
}

func TestTaskService_ToggleTwiceRestores(t *testing.T) {
	svc := NewTaskService(memory.New(), zap.NewNop())
	ctx := context.Background()

	created, err := svc.AddTask(ctx, &task.CreateTaskRequest{Text: "Seva"})
	require.NoError(t, err)
	id := created.ID.String()

	once, err := svc.SetTaskCompleted(ctx, id, !created.Completed)
	require.NoError(t, err)
	assert.True(t, once.Completed)

	twice, err := svc.SetTaskCompleted(ctx, id, !once.Completed)
	require.NoError(t, err)
	assert.Equal(t, created.Completed, twice.Completed)
}

func TestTaskService_UnknownIDs(t *testing.T) {
	svc := NewTaskService(memory.New(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.SetTaskCompleted(ctx, uuid.NewString(), true)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.SetTaskCompleted(ctx, "not-a-uuid", true)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.GetTask(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.NoError(t, svc.DeleteTask(ctx, uuid.NewString()))
	assert.NoError(t, svc.DeleteTask(ctx, "not-a-uuid"))
}

func TestTaskService_StorageErrorPropagates(t *testing.T) {
	svc := NewTaskService(&failingStore{Store: memory.New(), failList: true}, zap.NewNop())

	_, err := svc.ListTasks(context.Background())
	assert.ErrorIs(t, err, apperr.ErrStorage)
}
