package postgres

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"divyaAPI/internal/apperr"
	"divyaAPI/internal/book"
	"divyaAPI/internal/contact"
	"divyaAPI/internal/quote"
	"divyaAPI/internal/settings"
)

// setupTestDB connects to TEST_DATABASE_URL, migrates and empties every table.
// The tests are skipped when no database is configured.
func setupTestDB(t *testing.T) *Store {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, pool.Ping(ctx), "Failed to ping test database")

	store := NewFromPool(pool, zap.NewNop())
	require.NoError(t, store.Migrate(ctx))

	_, err = pool.Exec(ctx, `TRUNCATE tasks, quotes, books, user_settings, contacts`)
	require.NoError(t, err)

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_Tasks(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	first, err := store.CreateTask(ctx, "Surya namaskar", false)
	require.NoError(t, err)
	second, err := store.CreateTask(ctx, "Read chapter 2", false)
	require.NoError(t, err)

	tasks, err := store.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, second.ID, tasks[0].ID, "newest task first")
	assert.Equal(t, first.ID, tasks[1].ID)
	assert.False(t, tasks[0].Completed)

	updated, err := store.SetTaskCompleted(ctx, first.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	_, err = store.SetTaskCompleted(ctx, uuid.New(), true)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	require.NoError(t, store.DeleteTask(ctx, first.ID))
	require.NoError(t, store.DeleteTask(ctx, first.ID))
	_, err = store.GetTask(ctx, first.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestStore_Settings(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	s, err := store.GetOrCreateSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultID, s.ID)
	assert.Zero(t, s.Streak)
	assert.Nil(t, s.LastCompletedDate)

	again, err := store.GetOrCreateSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, s, again)

	streak := 3
	s, err = store.UpdateSettings(ctx, &settings.UpdateSettingsRequest{Streak: &streak})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Streak)
	assert.Nil(t, s.LastCompletedDate)
}

func TestStore_CompareAndSetStreak(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	_, err := store.GetOrCreateSettings(ctx)
	require.NoError(t, err)

	today := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, written, err := store.CompareAndSetStreak(ctx, nil, 1, today); err == nil && written {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, wins.Load())

	s, err := store.GetOrCreateSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Streak)
	require.NotNil(t, s.LastCompletedDate)
	assert.True(t, s.LastCompletedDate.Equal(today))

	tomorrow := today.AddDate(0, 0, 1)
	s, written, err := store.CompareAndSetStreak(ctx, s.LastCompletedDate, 2, tomorrow)
	require.NoError(t, err)
	assert.True(t, written)
	assert.Equal(t, 2, s.Streak)
}

func TestStore_QuotesBooksContacts(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	_, err := store.CreateQuote(ctx, &quote.CreateQuoteRequest{Sanskrit: "सत्यमेव जयते", English: "Truth alone triumphs", Source: "Mundaka Upanishad 3.1.6"})
	require.NoError(t, err)
	quotes, err := store.ListQuotes(ctx)
	require.NoError(t, err)
	assert.Len(t, quotes, 1)

	b, err := store.CreateBook(ctx, &book.CreateBookRequest{
		Title: "Yoga Sutras", TitleHi: "योग सूत्र",
		Description: "Patanjali", DescriptionHi: "पतंजलि",
		Content: "Sutra 1.1",
	})
	require.NoError(t, err)

	got, err := store.GetBook(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	_, err = store.GetBook(ctx, uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	c, err := store.CreateContact(ctx, &contact.CreateContactRequest{Name: "Arjuna", Email: "arjuna@example.com", Message: "Namaste"})
	require.NoError(t, err)
	assert.False(t, c.CreatedAt.IsZero())
}
