package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"divyaAPI/internal/apperr"
	"divyaAPI/internal/book"
	"divyaAPI/internal/quote"
	"divyaAPI/internal/storage/memory"
)

func seedQuotes(t *testing.T, svc *QuoteService, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := svc.CreateQuote(context.Background(), &quote.CreateQuoteRequest{
			Sanskrit: "योगः कर्मसु कौशलम्",
			English:  "Yoga is skill in action",
			Source:   uuid.NewString(),
		})
		require.NoError(t, err)
	}
}

func TestQuoteService_RandomQuoteEmpty(t *testing.T) {
	svc := NewQuoteService(memory.New(), zap.NewNop())

	_, err := svc.RandomQuote(context.Background())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestQuoteService_RandomQuoteUsesPicker(t *testing.T) {
	svc := NewQuoteService(memory.New(), zap.NewNop())
	seedQuotes(t, svc, 3)

	all, err := svc.ListQuotes(context.Background())
	require.NoError(t, err)

	svc.SetRandomSource(func(n int) int {
		assert.Equal(t, 3, n)
		return 2
	})
	q, err := svc.RandomQuote(context.Background())
	require.NoError(t, err)
	assert.Equal(t, all[2].ID, q.ID)
}

func TestQuoteService_RandomQuoteReachesEveryQuote(t *testing.T) {
	svc := NewQuoteService(memory.New(), zap.NewNop())
	seedQuotes(t, svc, 5)

	seen := map[uuid.UUID]int{}
	for i := 0; i < 2000; i++ {
		q, err := svc.RandomQuote(context.Background())
		require.NoError(t, err)
		seen[q.ID]++
	}

	assert.Len(t, seen, 5)
	for id, n := range seen {
		// Expected 400 per quote; a uniform draw stays far inside this band
		assert.Greater(t, n, 250, "quote %s drawn too rarely", id)
		assert.Less(t, n, 550, "quote %s drawn too often", id)
	}
}

func TestQuoteService_CreateQuoteValidation(t *testing.T) {
	svc := NewQuoteService(memory.New(), zap.NewNop())

	_, err := svc.CreateQuote(context.Background(), &quote.CreateQuoteRequest{Sanskrit: "ॐ", English: " "})
	require.ErrorIs(t, err, apperr.ErrValidation)
	assert.Contains(t, err.Error(), "english is required")
	assert.Contains(t, err.Error(), "source is required")
}

func TestBookService_GetAndCreate(t *testing.T) {
	svc := NewBookService(memory.New(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.GetBook(ctx, uuid.NewString())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = svc.GetBook(ctx, "gita")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.CreateBook(ctx, &book.CreateBookRequest{Title: "Bhagavad Gita"})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	created, err := svc.CreateBook(ctx, &book.CreateBookRequest{
		Title:         " Bhagavad Gita ",
		TitleHi:       "भगवद् गीता",
		Description:   "The song of the Lord",
		DescriptionHi: "भगवान का गीत",
		Content:       "Chapter 1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bhagavad Gita", created.Title)

	got, err := svc.GetBook(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created, got)

	books, err := svc.ListBooks(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 1)
}
