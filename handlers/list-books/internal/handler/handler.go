// Package handler provides the Lambda function implementation.
package handler

import (
	"context"

	"appsync-books/internal/config"
	"appsync-books/internal/logging"
	"appsync-books/internal/store"
	"appsync-books/types"

	"go.uber.org/zap"
)

// BookScanAPI reads every book item in a table.
type BookScanAPI interface {
	Scan(ctx context.Context, table string) ([]types.Book, error)
}

// Handler provides the Lambda implementation of the listBooks query.
type Handler struct {
	store     BookScanAPI
	tableName string
	logger    *zap.Logger
}

// Config provides configuration options for a Handler.
type Config struct {
	Store     BookScanAPI
	TableName string
	Logger    *zap.Logger
}

// New creates a new Handler instance.
func New(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		store:     cfg.Store,
		tableName: cfg.TableName,
		logger:    logger,
	}
}

// ListBooks returns the complete collection of books currently stored in the
// associated table, in no particular order. An empty table yields an empty,
// non-nil slice; nil means the books could not be read.
func (h *Handler) ListBooks(ctx context.Context, event types.ResolverEvent[types.NoArgs]) ([]types.Book, error) {
	log := logging.ForInvocation(ctx, h.logger, event.Info.FieldName)

	if !config.RequireTable(log, h.tableName) {
		return nil, nil
	}

	books, err := h.store.Scan(ctx, h.tableName)
	if err != nil {
		log.Error("DynamoDB error", zap.Error(err), zap.String("code", store.ErrorCode(err)))
		return nil, nil
	}
	if books == nil {
		books = []types.Book{}
	}

	log.Debug("listed books", zap.Int("count", len(books)))
	return books, nil
}
