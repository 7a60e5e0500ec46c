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

// BookPutAPI writes a complete book item.
type BookPutAPI interface {
	Put(ctx context.Context, table string, book types.Book) error
}

// Handler provides the Lambda implementation of the createBook mutation.
type Handler struct {
	store     BookPutAPI
	tableName string
	logger    *zap.Logger
}

// Config provides configuration options for a Handler.
type Config struct {
	Store     BookPutAPI
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

// CreateBook stores the given book, replacing any book with the same id, and
// returns it. It returns nil if the book could not be stored.
func (h *Handler) CreateBook(ctx context.Context, event types.ResolverEvent[types.CreateBookArgs]) (*types.Book, error) {
	log := logging.ForInvocation(ctx, h.logger, event.Info.FieldName)
	book := event.Arguments.Book
	log.Debug("create book", zap.Any("book", book))

	if !config.RequireTable(log, h.tableName) {
		return nil, nil
	}

	if err := h.store.Put(ctx, h.tableName, book); err != nil {
		log.Error("DynamoDB error", zap.Error(err), zap.String("code", store.ErrorCode(err)), zap.String("id", book.ID))
		return nil, nil
	}

	return &book, nil
}
