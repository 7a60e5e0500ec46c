// Package handler provides the Lambda function implementation.
package handler

import (
	"context"
	"errors"
	"time"

	"appsync-books/internal/config"
	"appsync-books/internal/logging"
	"appsync-books/internal/store"
	"appsync-books/types"

	"go.uber.org/zap"
)

// BookGetAPI reads a single book item by id.
type BookGetAPI interface {
	Get(ctx context.Context, table, id string) (types.Book, error)
}

// Handler provides the Lambda implementation of the getBookById query.
type Handler struct {
	store     BookGetAPI
	tableName string
	delay     time.Duration
	logger    *zap.Logger
}

// Config provides configuration options for a Handler.
type Config struct {
	Store     BookGetAPI
	TableName string
	// Delay is waited before every read. Zero disables it.
	Delay  time.Duration
	Logger *zap.Logger
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
		delay:     cfg.Delay,
		logger:    logger,
	}
}

// GetBookByID returns the book with the requested id. It returns nil both when
// there is no such book and when the book could not be read.
func (h *Handler) GetBookByID(ctx context.Context, event types.ResolverEvent[types.BookIDArgs]) (*types.Book, error) {
	log := logging.ForInvocation(ctx, h.logger, event.Info.FieldName)
	id := event.Arguments.BookID

	if !config.RequireTable(log, h.tableName) {
		return nil, nil
	}

	if err := wait(ctx, h.delay); err != nil {
		log.Error("wait interrupted", zap.Error(err), zap.Duration("delay", h.delay))
		return nil, nil
	}

	book, err := h.store.Get(ctx, h.tableName, id)
	if errors.Is(err, store.ErrNotFound) {
		log.Debug("book not found", zap.String("id", id))
		return nil, nil
	}
	if err != nil {
		log.Error("DynamoDB error", zap.Error(err), zap.String("code", store.ErrorCode(err)), zap.String("id", id))
		return nil, nil
	}

	return &book, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
