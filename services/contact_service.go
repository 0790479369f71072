package services

import (
	"context"

	"go.uber.org/zap"

	"divyaAPI/internal/contact"
	"divyaAPI/internal/storage"
)

type ContactService struct {
	store  storage.Storage
	logger *zap.Logger
}

func NewContactService(store storage.Storage, logger *zap.Logger) *ContactService {
	return &ContactService{store: store, logger: logger}
}

// Submit stores a contact message. Name, email and message are required and
// the email must parse; nothing is stored otherwise.
func (s *ContactService) Submit(ctx context.Context, req *contact.CreateContactRequest) (*contact.Contact, error) {
	trim(&req.Name, &req.Email, &req.Message)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	c, err := s.store.CreateContact(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Contact message received", zap.String("contact_id", c.ID.String()))
	return c, nil
}
