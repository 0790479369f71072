package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"divyaAPI/internal/apperr"
	"divyaAPI/internal/book"
	"divyaAPI/internal/contact"
	"divyaAPI/internal/quote"
	"divyaAPI/internal/settings"
	"divyaAPI/internal/task"
)

// Store is an in-memory implementation of storage.Storage, used for local
// development (USE_MEMORY_STORE=true) and in tests.
type Store struct {
	mu       sync.RWMutex
	now      func() time.Time
	tasks    []*task.Task
	quotes   []*quote.Quote
	books    []*book.Book
	settings *settings.UserSettings
	contacts []*contact.Contact
}

// New creates an empty store
func New() *Store {
	return &Store{now: time.Now}
}

// NewWithClock creates an empty store stamping records with now
func NewWithClock(now func() time.Time) *Store {
	return &Store{now: now}
}

func (m *Store) ListTasks(ctx context.Context) ([]*task.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*task.Task, 0, len(m.tasks))
	for i := len(m.tasks) - 1; i >= 0; i-- {
		t := *m.tasks[i]
		out = append(out, &t)
	}
	// Newest first; ties keep reverse insertion order
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Store) GetTask(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t := m.findTask(id)
	if t == nil {
		return nil, apperr.NotFound("task %s", id)
	}
	c := *t
	return &c, nil
}

func (m *Store) CreateTask(ctx context.Context, text string, completed bool) (*task.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &task.Task{ID: uuid.New(), Text: text, Completed: completed, CreatedAt: m.now()}
	m.tasks = append(m.tasks, t)
	c := *t
	return &c, nil
}

func (m *Store) SetTaskCompleted(ctx context.Context, id uuid.UUID, completed bool) (*task.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.findTask(id)
	if t == nil {
		return nil, apperr.NotFound("task %s", id)
	}
	t.Completed = completed
	c := *t
	return &c, nil
}

func (m *Store) DeleteTask(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, t := range m.tasks {
		if t.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Store) findTask(id uuid.UUID) *task.Task {
	for _, t := range m.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (m *Store) ListQuotes(ctx context.Context) ([]*quote.Quote, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*quote.Quote, 0, len(m.quotes))
	for _, q := range m.quotes {
		c := *q
		out = append(out, &c)
	}
	return out, nil
}

func (m *Store) CreateQuote(ctx context.Context, req *quote.CreateQuoteRequest) (*quote.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	q := &quote.Quote{ID: uuid.New(), Sanskrit: req.Sanskrit, English: req.English, Source: req.Source}
	m.quotes = append(m.quotes, q)
	c := *q
	return &c, nil
}

func (m *Store) ListBooks(ctx context.Context) ([]*book.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*book.Book, 0, len(m.books))
	for _, b := range m.books {
		c := *b
		out = append(out, &c)
	}
	return out, nil
}

func (m *Store) GetBook(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, b := range m.books {
		if b.ID == id {
			c := *b
			return &c, nil
		}
	}
	return nil, apperr.NotFound("book %s", id)
}

func (m *Store) CreateBook(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b := &book.Book{
		ID:            uuid.New(),
		Title:         req.Title,
		TitleHi:       req.TitleHi,
		Description:   req.Description,
		DescriptionHi: req.DescriptionHi,
		Content:       req.Content,
	}
	m.books = append(m.books, b)
	c := *b
	return &c, nil
}

func (m *Store) GetOrCreateSettings(ctx context.Context) (*settings.UserSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.settingsLocked().Clone(), nil
}

func (m *Store) UpdateSettings(ctx context.Context, req *settings.UpdateSettingsRequest) (*settings.UserSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.settingsLocked()
	if req.Streak != nil {
		s.Streak = *req.Streak
	}
	if req.LastCompletedDate != nil {
		d := *req.LastCompletedDate
		s.LastCompletedDate = &d
	}
	return s.Clone(), nil
}

func (m *Store) CompareAndSetStreak(ctx context.Context, observed *time.Time, streak int, completedAt time.Time) (*settings.UserSettings, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.settingsLocked()
	if !sameInstant(s.LastCompletedDate, observed) {
		return s.Clone(), false, nil
	}
	s.Streak = streak
	s.LastCompletedDate = &completedAt
	return s.Clone(), true, nil
}

func (m *Store) settingsLocked() *settings.UserSettings {
	if m.settings == nil {
		m.settings = settings.Default()
	}
	return m.settings
}

func sameInstant(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func (m *Store) CreateContact(ctx context.Context, req *contact.CreateContactRequest) (*contact.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := &contact.Contact{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: m.now(),
	}
	m.contacts = append(m.contacts, c)
	out := *c
	return &out, nil
}

// Contacts returns stored contact messages; the API never reads them back.
func (m *Store) Contacts() []contact.Contact {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]contact.Contact, 0, len(m.contacts))
	for _, c := range m.contacts {
		out = append(out, *c)
	}
	return out
}

func (m *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close does nothing for the memory store
func (m *Store) Close() error {
	return nil
}
