// Package storetest provides an in-memory store.Store for handler tests.
package storetest

import (
	"context"
	"errors"
	"sync"

	"appsync-books/internal/store"
	"appsync-books/types"
)

// Memory is a concurrency-safe, in-memory store.Store that records how it was called.
// Like DynamoDB, it rejects empty keys and treats Update of a missing id as an insert.
type Memory struct {
	mu      sync.Mutex
	tables  map[string]map[string]types.Book
	err     error
	calls   int
	updates [][]store.Field
}

var _ store.Store = (*Memory)(nil)

// NewMemory creates an empty Memory store.
func NewMemory() *Memory {
	return &Memory{tables: map[string]map[string]types.Book{}}
}

// FailWith makes every subsequent operation return err. A nil err restores normal behavior.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns the number of operations performed, including failed ones.
func (m *Memory) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Updates returns the field lists passed to Update, in call order.
func (m *Memory) Updates() [][]store.Field {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]store.Field(nil), m.updates...)
}

// Seed writes books to table without counting as calls.
func (m *Memory) Seed(table string, books ...types.Book) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range books {
		m.table(table)[b.ID] = b
	}
}

// Lookup reads a book from table without counting as a call.
func (m *Memory) Lookup(table, id string) (types.Book, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.tables[table][id]
	return b, ok
}

func (m *Memory) table(name string) map[string]types.Book {
	t, ok := m.tables[name]
	if !ok {
		t = map[string]types.Book{}
		m.tables[name] = t
	}
	return t
}

var errEmptyKey = errors.New("ValidationException: the key attribute id must not be empty")

// begin counts a call and reports the injected error, if any. m.mu must be held.
func (m *Memory) begin(ctx context.Context) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	return ctx.Err()
}

func (m *Memory) Put(ctx context.Context, table string, book types.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(ctx); err != nil {
		return err
	}
	if book.ID == "" {
		return errEmptyKey
	}
	m.table(table)[book.ID] = book
	return nil
}

func (m *Memory) Get(ctx context.Context, table, id string) (types.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(ctx); err != nil {
		return types.Book{}, err
	}
	if id == "" {
		return types.Book{}, errEmptyKey
	}
	b, ok := m.tables[table][id]
	if !ok {
		return types.Book{}, store.ErrNotFound
	}
	return b, nil
}

func (m *Memory) Delete(ctx context.Context, table, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(ctx); err != nil {
		return err
	}
	if id == "" {
		return errEmptyKey
	}
	delete(m.tables[table], id)
	return nil
}

func (m *Memory) Scan(ctx context.Context, table string) ([]types.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(ctx); err != nil {
		return nil, err
	}
	books := []types.Book{}
	for _, b := range m.tables[table] {
		books = append(books, b)
	}
	return books, nil
}

func (m *Memory) Update(ctx context.Context, table, id string, fields []store.Field) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(ctx); err != nil {
		return err
	}
	m.updates = append(m.updates, fields)
	if id == "" {
		return errEmptyKey
	}

	b := m.table(table)[id]
	b.ID = id
	for _, f := range fields {
		switch f.Name {
		case "name":
			b.Name, _ = f.Value.(string)
		case "completed":
			b.Completed, _ = f.Value.(bool)
		default:
			return errors.New("ValidationException: unknown attribute " + f.Name)
		}
	}
	m.table(table)[id] = b
	return nil
}
