package settings

import "time"

// UpdateSettingsRequest is a partial update; nil fields are left untouched.
type UpdateSettingsRequest struct {
	Streak            *int       `json:"streak" validate:"omitempty,min=0"`
	LastCompletedDate *time.Time `json:"lastCompletedDate"`
}
