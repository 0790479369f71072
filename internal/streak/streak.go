// Package streak holds the daily-streak rules: how many calendar days have
// passed since the last full completion and what the streak becomes.
package streak

import (
	"time"

	"divyaAPI/internal/apperr"
	"divyaAPI/internal/settings"
)

type Outcome string

const (
	OutcomeStarted      Outcome = "started"
	OutcomeAdvanced     Outcome = "advanced"
	OutcomeRestarted    Outcome = "restarted"
	OutcomeAlreadyToday Outcome = "already_today"
	OutcomeNoTasks      Outcome = "no_tasks"
	OutcomeIncomplete   Outcome = "incomplete"
	OutcomeClockSkew    Outcome = "clock_skew"
	// OutcomeSuperseded means another request wrote the row between our read and our write.
	OutcomeSuperseded Outcome = "superseded"
)

type Decision struct {
	Streak  int
	Write   bool
	Outcome Outcome
}

type Result struct {
	Settings *settings.UserSettings `json:"settings"`
	Outcome  Outcome                `json:"outcome"`
}

// DaysBetween counts whole calendar days from `from` to `to` as seen in loc.
// It is negative when `to` falls on an earlier day.
func DaysBetween(from, to time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	fy, fm, fd := from.In(loc).Date()
	ty, tm, td := to.In(loc).Date()
	start := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	end := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start) / (24 * time.Hour))
}

// Decide computes the new streak for a full completion on `today`. A last
// completion dated after today is reported as apperr.ErrClockSkew and
// nothing is written.
func Decide(current *settings.UserSettings, today time.Time, loc *time.Location) (Decision, error) {
	if current.LastCompletedDate == nil {
		return Decision{Streak: 1, Write: true, Outcome: OutcomeStarted}, nil
	}

	diff := DaysBetween(*current.LastCompletedDate, today, loc)
	switch {
	case diff == 0:
		return Decision{Streak: current.Streak, Outcome: OutcomeAlreadyToday}, nil
	case diff == 1:
		return Decision{Streak: current.Streak + 1, Write: true, Outcome: OutcomeAdvanced}, nil
	case diff > 1:
		return Decision{Streak: 1, Write: true, Outcome: OutcomeRestarted}, nil
	default:
		return Decision{Streak: current.Streak, Outcome: OutcomeClockSkew}, apperr.ErrClockSkew
	}
}

// CompletedOn reports whether the settings already record a completion on today's calendar day.
func CompletedOn(current *settings.UserSettings, today time.Time, loc *time.Location) bool {
	return current.LastCompletedDate != nil && DaysBetween(*current.LastCompletedDate, today, loc) == 0
}
