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

// BookDeleteAPI removes a book item by id.
type BookDeleteAPI interface {
	Delete(ctx context.Context, table, id string) error
}

// Handler provides the Lambda implementation of the deleteBook mutation.
type Handler struct {
	store     BookDeleteAPI
	tableName string
	logger    *zap.Logger
}

// Config provides configuration options for a Handler.
type Config struct {
	Store     BookDeleteAPI
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

// DeleteBook removes the book with the given id and returns the id. Deleting
// an id that does not exist succeeds. It returns nil if the delete failed.
func (h *Handler) DeleteBook(ctx context.Context, event types.ResolverEvent[types.BookIDArgs]) (*string, error) {
	log := logging.ForInvocation(ctx, h.logger, event.Info.FieldName)
	id := event.Arguments.BookID

	if !config.RequireTable(log, h.tableName) {
		return nil, nil
	}

	if err := h.store.Delete(ctx, h.tableName, id); err != nil {
		log.Error("DynamoDB error", zap.Error(err), zap.String("code", store.ErrorCode(err)), zap.String("id", id))
		return nil, nil
	}

	return &id, nil
}
