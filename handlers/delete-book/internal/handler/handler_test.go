package handler

import (
	"context"
	"errors"
	"testing"

	"appsync-books/internal/store/storetest"
	"appsync-books/types"
)

const TableName = "Table"

func event(id string) types.ResolverEvent[types.BookIDArgs] {
	return types.ResolverEvent[types.BookIDArgs]{
		Arguments: types.BookIDArgs{BookID: id},
		Info:      types.ResolverInfo{FieldName: "deleteBook", ParentTypeName: "Mutation"},
	}
}

func TestHandler(t *testing.T) {
	testCases := []struct {
		desc string
		id   string
	}{
		{"existing book", "1"},
		{"missing book", "404"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			m := storetest.NewMemory()
			m.Seed(TableName, types.Book{ID: "1", Name: "Dune"}, types.Book{ID: "2", Name: "Emma"})
			h := New(Config{Store: m, TableName: TableName})

			got, err := h.DeleteBook(context.Background(), event(tc.id))
			if err != nil {
				t.Fatalf("got error %v; expected nil", err)
			}
			if got == nil || *got != tc.id {
				t.Fatalf("got %v; expected %s", got, tc.id)
			}
			if _, ok := m.Lookup(TableName, tc.id); ok {
				t.Errorf("book %s still present after delete", tc.id)
			}
			if _, ok := m.Lookup(TableName, "2"); !ok {
				t.Errorf("unrelated book 2 was deleted")
			}
			if m.Calls() != 1 {
				t.Errorf("store called %d times; expected 1", m.Calls())
			}
		})
	}
}

func TestHandlerFailures(t *testing.T) {
	testCases := []struct {
		desc      string
		tableName string
		id        string
		storeErr  error
		calls     int
	}{
		{"missing table name", "", "1", nil, 0},
		{"store error", TableName, "1", errors.New("ResourceNotFoundException"), 1},
		{"empty id", TableName, "", nil, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			m := storetest.NewMemory()
			m.Seed(TableName, types.Book{ID: "1"})
			m.FailWith(tc.storeErr)
			h := New(Config{Store: m, TableName: tc.tableName})

			got, err := h.DeleteBook(context.Background(), event(tc.id))
			if err != nil {
				t.Errorf("got error %v; expected nil", err)
			}
			if got != nil {
				t.Errorf("got %s; expected nil", *got)
			}
			if m.Calls() != tc.calls {
				t.Errorf("store called %d times; expected %d", m.Calls(), tc.calls)
			}
			if _, ok := m.Lookup(TableName, "1"); !ok {
				t.Errorf("book 1 was deleted despite failure")
			}
		})
	}
}
