package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"divyaAPI/internal/apperr"
	"divyaAPI/internal/book"
	"divyaAPI/internal/storage"
)

type BookService struct {
	store  storage.Storage
	logger *zap.Logger
}

func NewBookService(store storage.Storage, logger *zap.Logger) *BookService {
	return &BookService{store: store, logger: logger}
}

func (s *BookService) ListBooks(ctx context.Context) ([]*book.Book, error) {
	return s.store.ListBooks(ctx)
}

func (s *BookService) GetBook(ctx context.Context, id string) (*book.Book, error) {
	bookID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.NotFound("book %s", id)
	}
	return s.store.GetBook(ctx, bookID)
}

func (s *BookService) CreateBook(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
	trim(&req.Title, &req.TitleHi, &req.Description, &req.DescriptionHi, &req.Content)
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return s.store.CreateBook(ctx, req)
}
