package services

import (
	"context"
	"math/rand/v2"

	"go.uber.org/zap"

	"divyaAPI/internal/apperr"
	"divyaAPI/internal/quote"
	"divyaAPI/internal/storage"
)

type QuoteService struct {
	store  storage.Storage
	intn   func(n int) int
	logger *zap.Logger
}

func NewQuoteService(store storage.Storage, logger *zap.Logger) *QuoteService {
	return &QuoteService{store: store, intn: rand.IntN, logger: logger}
}

// SetRandomSource replaces the index picker; intn must return a value in [0, n).
func (s *QuoteService) SetRandomSource(intn func(n int) int) {
	s.intn = intn
}

func (s *QuoteService) ListQuotes(ctx context.Context) ([]*quote.Quote, error) {
	return s.store.ListQuotes(ctx)
}

// RandomQuote draws uniformly from all stored quotes. Draws are independent,
// so the same quote can come back twice in a row.
func (s *QuoteService) RandomQuote(ctx context.Context) (*quote.Quote, error) {
	quotes, err := s.store.ListQuotes(ctx)
	if err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, apperr.NotFound("no quotes available")
	}
	return quotes[s.intn(len(quotes))], nil
}

func (s *QuoteService) CreateQuote(ctx context.Context, req *quote.CreateQuoteRequest) (*quote.Quote, error) {
	trim(&req.Sanskrit, &req.English, &req.Source)
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return s.store.CreateQuote(ctx, req)
}
