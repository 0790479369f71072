package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"divyaAPI/internal/apperr"
	"divyaAPI/internal/settings"
	"divyaAPI/internal/storage"
	"divyaAPI/internal/streak"
	"divyaAPI/internal/task"
)

// StreakService owns the settings singleton and the daily streak.
type StreakService struct {
	store  storage.Storage
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

func NewStreakService(store storage.Storage, loc *time.Location, logger *zap.Logger) *StreakService {
	if loc == nil {
		loc = time.UTC
	}
	return &StreakService{store: store, loc: loc, now: time.Now, logger: logger}
}

// SetClock replaces the source of "today", for tests.
func (s *StreakService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *StreakService) GetSettings(ctx context.Context) (*settings.UserSettings, error) {
	return s.store.GetOrCreateSettings(ctx)
}

// UpdateSettings applies a raw partial update, as the web client does when it
// computes the streak itself.
func (s *StreakService) UpdateSettings(ctx context.Context, req *settings.UpdateSettingsRequest) (*settings.UserSettings, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return s.store.UpdateSettings(ctx, req)
}

// AdvanceIfEligible records a full completion on today's calendar day.
// Nothing is written when today is already recorded. A stored date after
// today returns the settings unchanged together with apperr.ErrClockSkew.
func (s *StreakService) AdvanceIfEligible(ctx context.Context, current *settings.UserSettings, today time.Time) (*settings.UserSettings, streak.Outcome, error) {
	decision, err := streak.Decide(current, today, s.loc)
	if err != nil {
		streakOutcomes.WithLabelValues(string(decision.Outcome)).Inc()
		s.logger.Warn("Last completion is after today",
			zap.Timep("last_completed_date", current.LastCompletedDate),
			zap.Time("today", today),
		)
		return current, decision.Outcome, err
	}
	if !decision.Write {
		streakOutcomes.WithLabelValues(string(decision.Outcome)).Inc()
		return current, decision.Outcome, nil
	}

	// Postgres keeps microseconds; match it so later compare-and-set calls see the same instant.
	completedAt := today.Truncate(time.Microsecond)

	updated, written, err := s.store.CompareAndSetStreak(ctx, current.LastCompletedDate, decision.Streak, completedAt)
	if err != nil {
		return nil, "", err
	}

	outcome := decision.Outcome
	if !written {
		outcome = streak.OutcomeSuperseded
		s.logger.Info("Streak already updated by a concurrent request", zap.Int("streak", updated.Streak))
	} else {
		s.logger.Info("Streak updated", zap.String("outcome", string(outcome)), zap.Int("streak", updated.Streak))
	}
	streakOutcomes.WithLabelValues(string(outcome)).Inc()
	return updated, outcome, nil
}

// CompleteDay applies the trigger policy: advance only when there is at least
// one task, every task is done, and today's completion is not yet recorded.
func (s *StreakService) CompleteDay(ctx context.Context) (*streak.Result, error) {
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	current, err := s.store.GetOrCreateSettings(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()

	switch {
	case len(tasks) == 0:
		return &streak.Result{Settings: current, Outcome: streak.OutcomeNoTasks}, nil
	case !task.AllCompleted(tasks):
		return &streak.Result{Settings: current, Outcome: streak.OutcomeIncomplete}, nil
	case streak.CompletedOn(current, today, s.loc):
		return &streak.Result{Settings: current, Outcome: streak.OutcomeAlreadyToday}, nil
	}

	updated, outcome, err := s.AdvanceIfEligible(ctx, current, today)
	if errors.Is(err, apperr.ErrClockSkew) {
		return &streak.Result{Settings: updated, Outcome: outcome}, err
	}
	if err != nil {
		return nil, err
	}
	return &streak.Result{Settings: updated, Outcome: outcome}, nil
}
