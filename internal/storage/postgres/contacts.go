package postgres

import (
	"context"

	"github.com/google/uuid"

	"divyaAPI/internal/apperr"
	"divyaAPI/internal/contact"
)

func (s *Store) CreateContact(ctx context.Context, req *contact.CreateContactRequest) (*contact.Contact, error) {
	query := `
	INSERT INTO contacts (id, name, email, message)
	VALUES ($1, $2, $3, $4)
	RETURNING id, name, email, message, created_at
	`

	var c contact.Contact
	err := s.pool.QueryRow(ctx, query, uuid.New(), req.Name, req.Email, req.Message).
		Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.CreatedAt)
	if err != nil {
		return nil, apperr.Storage("create contact", err)
	}
	return &c, nil
}
