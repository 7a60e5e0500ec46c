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

// BookUpdateAPI sets attributes on an existing book item.
type BookUpdateAPI interface {
	Update(ctx context.Context, table, id string, fields []store.Field) error
}

// Handler provides the Lambda implementation of the updateBook mutation.
type Handler struct {
	store     BookUpdateAPI
	tableName string
	logger    *zap.Logger
}

// Config provides configuration options for a Handler.
type Config struct {
	Store     BookUpdateAPI
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

// revisableFields returns the only attributes updateBook may write.
func revisableFields(book types.Book) []store.Field {
	return []store.Field{
		{Name: "completed", Value: book.Completed},
		{Name: "name", Value: book.Name},
	}
}

// UpdateBook sets the name and completed flag of the book with the given id and
// echoes the input back. It returns nil if the book could not be updated.
func (h *Handler) UpdateBook(ctx context.Context, event types.ResolverEvent[types.UpdateBookArgs]) (*types.Book, error) {
	log := logging.ForInvocation(ctx, h.logger, event.Info.FieldName)
	book := event.Arguments.Book
	log.Debug("update book", zap.Any("book", book))

	if !config.RequireTable(log, h.tableName) {
		return nil, nil
	}

	if err := h.store.Update(ctx, h.tableName, book.ID, revisableFields(book)); err != nil {
		log.Error("DynamoDB error", zap.Error(err), zap.String("code", store.ErrorCode(err)), zap.String("id", book.ID))
		return nil, nil
	}

	return &book, nil
}
