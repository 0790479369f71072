package services

import (
	"context"
	"errors"
	"time"

	"divyaAPI/internal/apperr"
	"divyaAPI/internal/settings"
	"divyaAPI/internal/storage/memory"
	"divyaAPI/internal/task"
)

var errDBDown = errors.New("connection refused")

// failingStore fails the operations a test switches off and delegates the rest.
type failingStore struct {
	*memory.Store
	failList bool
	failCAS  bool
	casCalls int
}

func (f *failingStore) ListTasks(ctx context.Context) ([]*task.Task, error) {
	if f.failList {
		return nil, apperr.Storage("list tasks", errDBDown)
	}
	return f.Store.ListTasks(ctx)
}

func (f *failingStore) CompareAndSetStreak(ctx context.Context, observed *time.Time, streak int, completedAt time.Time) (*settings.UserSettings, bool, error) {
	f.casCalls++
	if f.failCAS {
		return nil, false, apperr.Storage("advance streak", errDBDown)
	}
	return f.Store.CompareAndSetStreak(ctx, observed, streak, completedAt)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
