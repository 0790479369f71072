package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"divyaAPI/internal/quote"
	"divyaAPI/internal/storage/memory"
)

func TestRun_SeedsEmptyStore(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	require.NoError(t, Run(ctx, db, zap.NewNop()))

	quotes, err := db.ListQuotes(ctx)
	require.NoError(t, err)
	assert.Len(t, quotes, len(Quotes))

	books, err := db.ListBooks(ctx)
	require.NoError(t, err)
	assert.Len(t, books, len(Books))
}

func TestRun_Idempotent(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	require.NoError(t, Run(ctx, db, zap.NewNop()))
	require.NoError(t, Run(ctx, db, zap.NewNop()))

	quotes, _ := db.ListQuotes(ctx)
	assert.Len(t, quotes, len(Quotes))
	books, _ := db.ListBooks(ctx)
	assert.Len(t, books, len(Books))
}

func TestRun_LeavesExistingQuotes(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	_, err := db.CreateQuote(ctx, &quote.CreateQuoteRequest{Sanskrit: "ॐ", English: "Om", Source: "custom"})
	require.NoError(t, err)

	require.NoError(t, Run(ctx, db, zap.NewNop()))

	quotes, _ := db.ListQuotes(ctx)
	require.Len(t, quotes, 1)
	assert.Equal(t, "custom", quotes[0].Source)

	books, _ := db.ListBooks(ctx)
	assert.Len(t, books, len(Books), "books are seeded independently of quotes")
}

func TestSeedDataComplete(t *testing.T) {
	for _, q := range Quotes {
		assert.NotEmpty(t, q.Sanskrit)
		assert.NotEmpty(t, q.English)
		assert.NotEmpty(t, q.Source)
	}
	for _, b := range Books {
		assert.NotEmpty(t, b.Title)
		assert.NotEmpty(t, b.TitleHi)
		assert.NotEmpty(t, b.Description)
		assert.NotEmpty(t, b.DescriptionHi)
		assert.NotEmpty(t, b.Content)
	}
}
