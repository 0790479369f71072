package quote

import "github.com/google/uuid"

type Quote struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Sanskrit string    `json:"sanskrit" db:"sanskrit"`
	English  string    `json:"english" db:"english"`
	Source   string    `json:"source" db:"source"`
}

type CreateQuoteRequest struct {
	Sanskrit string `json:"sanskrit" validate:"required"`
	English  string `json:"english" validate:"required"`
	Source   string `json:"source" validate:"required"`
}
