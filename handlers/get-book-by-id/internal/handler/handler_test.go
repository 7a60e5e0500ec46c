package handler

import (
	"context"
	"errors"
	"testing"
	"time"

	"appsync-books/internal/store/storetest"
	"appsync-books/types"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const TableName = "Table"

func event(id string) types.ResolverEvent[types.BookIDArgs] {
	return types.ResolverEvent[types.BookIDArgs]{
		Arguments: types.BookIDArgs{BookID: id},
		Info:      types.ResolverInfo{FieldName: "getBookById", ParentTypeName: "Query"},
	}
}

var dune = types.Book{ID: "1", Name: "Dune", Completed: false}

func TestHandler(t *testing.T) {
	testCases := []struct {
		desc      string
		tableName string
		id        string
		storeErr  error
		want      *types.Book
		calls     int
	}{
		{"existing book", TableName, "1", nil, &dune, 1},
		{"missing book", TableName, "2", nil, nil, 1},
		{"empty id", TableName, "", nil, nil, 1},
		{"store error", TableName, "1", errors.New("AccessDeniedException"), nil, 1},
		{"missing table name", "", "1", nil, nil, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			m := storetest.NewMemory()
			m.Seed(TableName, dune)
			m.FailWith(tc.storeErr)
			h := New(Config{Store: m, TableName: tc.tableName})

			got, err := h.GetBookByID(context.Background(), event(tc.id))
			if err != nil {
				t.Errorf("got error %v; expected nil", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("fields mismatch in returned book (-want +got):\n%s", diff)
			}
			if m.Calls() != tc.calls {
				t.Errorf("store called %d times; expected %d", m.Calls(), tc.calls)
			}
		})
	}
}

func TestHandlerLogging(t *testing.T) {
	t.Run("not found is not an error", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		h := New(Config{Store: storetest.NewMemory(), TableName: TableName, Logger: zap.New(core)})

		_, _ = h.GetBookByID(context.Background(), event("2"))

		if n := logs.FilterLevelExact(zap.ErrorLevel).Len(); n != 0 {
			t.Errorf("got %d error logs; expected 0", n)
		}
		if n := logs.FilterMessage("book not found").Len(); n != 1 {
			t.Errorf("got %d not found logs; expected 1", n)
		}
	})

	t.Run("store errors are logged", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		m := storetest.NewMemory()
		m.FailWith(errors.New("error"))
		h := New(Config{Store: m, TableName: TableName, Logger: zap.New(core)})

		_, _ = h.GetBookByID(context.Background(), event("1"))

		if n := logs.FilterMessage("DynamoDB error").FilterLevelExact(zap.ErrorLevel).Len(); n != 1 {
			t.Errorf("got %d DynamoDB error logs; expected 1", n)
		}
	})
}

func TestHandlerDelay(t *testing.T) {
	t.Run("waits before reading", func(t *testing.T) {
		m := storetest.NewMemory()
		m.Seed(TableName, dune)
		delay := 20 * time.Millisecond
		h := New(Config{Store: m, TableName: TableName, Delay: delay})

		start := time.Now()
		got, err := h.GetBookByID(context.Background(), event("1"))
		elapsed := time.Since(start)

		if err != nil {
			t.Errorf("got error %v; expected nil", err)
		}
		if diff := cmp.Diff(&dune, got); diff != "" {
			t.Errorf("fields mismatch in returned book (-want +got):\n%s", diff)
		}
		if elapsed < delay {
			t.Errorf("returned after %v; expected at least %v", elapsed, delay)
		}
	})

	t.Run("cancelled wait skips the store", func(t *testing.T) {
		m := storetest.NewMemory()
		m.Seed(TableName, dune)
		h := New(Config{Store: m, TableName: TableName, Delay: time.Hour})

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		got, err := h.GetBookByID(ctx, event("1"))
		if err != nil {
			t.Errorf("got error %v; expected nil", err)
		}
		if got != nil {
			t.Errorf("got book %v; expected nil", *got)
		}
		if m.Calls() != 0 {
			t.Errorf("store called %d times; expected 0", m.Calls())
		}
	})
}
