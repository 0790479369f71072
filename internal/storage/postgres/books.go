package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"divyaAPI/internal/apperr"
	"divyaAPI/internal/book"
)

const bookColumns = `id, title, title_hi, description, description_hi, content`

func (s *Store) ListBooks(ctx context.Context) ([]*book.Book, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+bookColumns+` FROM books ORDER BY title`)
	if err != nil {
		return nil, apperr.Storage("list books", err)
	}

	books, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[book.Book])
	if err != nil {
		return nil, apperr.Storage("scan books", err)
	}
	return books, nil
}

func (s *Store) GetBook(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id)
	if err != nil {
		return nil, apperr.Storage("get book", err)
	}

	b, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[book.Book])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("book %s", id)
	}
	if err != nil {
		return nil, apperr.Storage("scan book", err)
	}
	return b, nil
}

func (s *Store) CreateBook(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
	query := `
	INSERT INTO books (id, title, title_hi, description, description_hi, content)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + bookColumns

	var b book.Book
	err := s.pool.QueryRow(ctx, query,
		uuid.New(),
		req.Title,
		req.TitleHi,
		req.Description,
		req.DescriptionHi,
		req.Content,
	).Scan(
		&b.ID,
		&b.Title,
		&b.TitleHi,
		&b.Description,
		&b.DescriptionHi,
		&b.Content,
	)
	if err != nil {
		return nil, apperr.Storage("create book", err)
	}
	return &b, nil
}
