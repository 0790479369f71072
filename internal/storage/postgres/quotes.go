package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"divyaAPI/internal/apperr"
	"divyaAPI/internal/quote"
)

func (s *Store) ListQuotes(ctx context.Context) ([]*quote.Quote, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, sanskrit, english, source FROM quotes`)
	if err != nil {
		return nil, apperr.Storage("list quotes", err)
	}

	quotes, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[quote.Quote])
	if err != nil {
		return nil, apperr.Storage("scan quotes", err)
	}
	return quotes, nil
}

func (s *Store) CreateQuote(ctx context.Context, req *quote.CreateQuoteRequest) (*quote.Quote, error) {
	query := `
	INSERT INTO quotes (id, sanskrit, english, source)
	VALUES ($1, $2, $3, $4)
	RETURNING id, sanskrit, english, source
	`

	var q quote.Quote
	err := s.pool.QueryRow(ctx, query, uuid.New(), req.Sanskrit, req.English, req.Source).
		Scan(&q.ID, &q.Sanskrit, &q.English, &q.Source)
	if err != nil {
		return nil, apperr.Storage("create quote", err)
	}
	return &q, nil
}
