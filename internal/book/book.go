package book

import "github.com/google/uuid"

type Book struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	TitleHi       string    `json:"titleHi" db:"title_hi"`
	Description   string    `json:"description" db:"description"`
	DescriptionHi string    `json:"descriptionHi" db:"description_hi"`
	Content       string    `json:"content" db:"content"`
}

type CreateBookRequest struct {
	Title         string `json:"title" validate:"required"`
	TitleHi       string `json:"titleHi" validate:"required"`
	Description   string `json:"description" validate:"required"`
	DescriptionHi string `json:"descriptionHi" validate:"required"`
	Content       string `json:"content" validate:"required"`
}
