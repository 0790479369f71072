package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"divyaAPI/internal/apperr"
	"divyaAPI/internal/settings"
)

const settingsColumns = `id, streak, last_completed_date`

func (s *Store) GetOrCreateSettings(ctx context.Context) (*settings.UserSettings, error) {
	if err := s.ensureSettings(ctx); err != nil {
		return nil, err
	}
	return s.readSettings(ctx)
}

func (s *Store) UpdateSettings(ctx context.Context, req *settings.UpdateSettingsRequest) (*settings.UserSettings, error) {
	if err := s.ensureSettings(ctx); err != nil {
		return nil, err
	}

	query := `
	UPDATE user_settings
	SET streak = COALESCE($2, streak),
	    last_completed_date = COALESCE($3, last_completed_date)
	WHERE id = $1
	RETURNING ` + settingsColumns

	var out settings.UserSettings
	err := s.pool.QueryRow(ctx, query, settings.DefaultID, req.Streak, req.LastCompletedDate).
		Scan(&out.ID, &out.Streak, &out.LastCompletedDate)
	if err != nil {
		return nil, apperr.Storage("update settings", err)
	}
	return &out, nil
}

// CompareAndSetStreak is a single conditional UPDATE, so two requests that
// observed the same row cannot both advance the streak.
func (s *Store) CompareAndSetStreak(ctx context.Context, observed *time.Time, streak int, completedAt time.Time) (*settings.UserSettings, bool, error) {
	query := `
	UPDATE user_settings
	SET streak = $2, last_completed_date = $3
	WHERE id = $1 AND last_completed_date IS NOT DISTINCT FROM $4
	RETURNING ` + settingsColumns

	var out settings.UserSettings
	err := s.pool.QueryRow(ctx, query, settings.DefaultID, streak, completedAt, observed).
		Scan(&out.ID, &out.Streak, &out.LastCompletedDate)
	if errors.Is(err, pgx.ErrNoRows) {
		current, err := s.GetOrCreateSettings(ctx)
		return current, false, err
	}
	if err != nil {
		return nil, false, apperr.Storage("advance streak", err)
	}
	return &out, true, nil
}

func (s *Store) ensureSettings(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
	INSERT INTO user_settings (id, streak)
	VALUES ($1, 0)
	ON CONFLICT (id) DO NOTHING
	`, settings.DefaultID)
	return apperr.Storage("create default settings", err)
}

func (s *Store) readSettings(ctx context.Context) (*settings.UserSettings, error) {
	var out settings.UserSettings
	err := s.pool.QueryRow(ctx, `SELECT `+settingsColumns+` FROM user_settings WHERE id = $1`, settings.DefaultID).
		Scan(&out.ID, &out.Streak, &out.LastCompletedDate)
	if err != nil {
		return nil, apperr.Storage("get settings", err)
	}
	return &out, nil
}
