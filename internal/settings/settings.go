package settings

import "time"

// DefaultID keys the single settings row.
const DefaultID = "default"

type UserSettings struct {
	ID                string     `json:"id" db:"id"`
	Streak            int        `json:"streak" db:"streak"`
	LastCompletedDate *time.Time `json:"lastCompletedDate" db:"last_completed_date"`
}

func Default() *UserSettings {
	return &UserSettings{ID: DefaultID, Streak: 0}
}

func (s *UserSettings) Clone() *UserSettings {
	c := *s
	if s.LastCompletedDate != nil {
		t := *s.LastCompletedDate
		c.LastCompletedDate = &t
	}
	return &c
}
