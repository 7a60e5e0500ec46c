// Package store provides the storage client used by the book resolvers and
// its DynamoDB implementation.
package store

import (
	"context"
	"errors"

	"appsync-books/types"

	"github.com/aws/smithy-go"
)

// ErrNotFound is returned by Get when no item has the requested id.
var ErrNotFound = errors.New("book not found")

// Field is a single attribute assignment applied by Update.
type Field struct {
	Name  string
	Value interface{}
}

// Store is the set of key-value operations performed against a books table.
// Every call names the table explicitly.
type Store interface {
	Put(ctx context.Context, table string, book types.Book) error
	Get(ctx context.Context, table, id string) (types.Book, error)
	Delete(ctx context.Context, table, id string) error
	Scan(ctx context.Context, table string) ([]types.Book, error)
	Update(ctx context.Context, table, id string, fields []Field) error
}

// ErrorCode returns the AWS error code carried by err, or "" if err did not
// come from an AWS API.
func ErrorCode(err error) string {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		return ae.ErrorCode()
	}
	return ""
}
