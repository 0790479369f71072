package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"divyaAPI/internal/book"
	"divyaAPI/internal/contact"
	"divyaAPI/internal/quote"
	"divyaAPI/internal/settings"
	"divyaAPI/internal/task"
)

// Storage defines the interface for data storage operations.
// Lookups of absent rows return an error wrapping apperr.ErrNotFound; driver
// failures wrap apperr.ErrStorage.
type Storage interface {
	// Task operations
	ListTasks(ctx context.Context) ([]*task.Task, error)
	GetTask(ctx context.Context, id uuid.UUID) (*task.Task, error)
	CreateTask(ctx context.Context, text string, completed bool) (*task.Task, error)
	SetTaskCompleted(ctx context.Context, id uuid.UUID, completed bool) (*task.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error

	// Quote operations
	ListQuotes(ctx context.Context) ([]*quote.Quote, error)
	CreateQuote(ctx context.Context, req *quote.CreateQuoteRequest) (*quote.Quote, error)

	// Book operations
	ListBooks(ctx context.Context) ([]*book.Book, error)
	GetBook(ctx context.Context, id uuid.UUID) (*book.Book, error)
	CreateBook(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error)

	// Settings operations

	// GetOrCreateSettings returns the singleton settings row, inserting the
	// default (streak 0, never completed) when none exists.
	GetOrCreateSettings(ctx context.Context) (*settings.UserSettings, error)
	UpdateSettings(ctx context.Context, req *settings.UpdateSettingsRequest) (*settings.UserSettings, error)

	// CompareAndSetStreak stores streak and completedAt only if the stored
	// last-completed date still equals observed (nil meaning never completed).
	// It reports whether the write happened and always returns the row as it
	// is after the call.
	CompareAndSetStreak(ctx context.Context, observed *time.Time, streak int, completedAt time.Time) (*settings.UserSettings, bool, error)

	// Contact operations
	CreateContact(ctx context.Context, req *contact.CreateContactRequest) (*contact.Contact, error)

	// Lifecycle
	Ping(ctx context.Context) error
	Close() error
}
