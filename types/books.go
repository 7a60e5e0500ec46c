// Package types provides common data types for storing books and for the
// AppSync resolver events that carry them.
package types

import "encoding/json"

// Book models a single book item in the books table.
type Book struct {
	ID        string `json:"id" dynamodbav:"id"`
	Name      string `json:"name" dynamodbav:"name"`
	Completed bool   `json:"completed" dynamodbav:"completed"`
}

// BookItemKey contains the primary key data for a Book item.
type BookItemKey struct {
	ID string `json:"id" dynamodbav:"id"`
}

// CreateBookArgs are the arguments of the createBook mutation.
type CreateBookArgs struct {
	Book Book `json:"book"`
}

// UpdateBookArgs are the arguments of the updateBook mutation. It has the same
// shape as CreateBookArgs; the update-book handler selects the item by ID and
// writes only name and completed (see revisableFields there).
type UpdateBookArgs struct {
	Book Book `json:"book"`
}

// BookIDArgs are the arguments of the getBookById query and the deleteBook mutation.
type BookIDArgs struct {
	BookID string `json:"bookId"`
}

// NoArgs is used by fields that take no arguments, such as listBooks.
type NoArgs struct{}

// ResolverEvent models the payload AppSync sends to a direct Lambda resolver.
// A is the type of the field's arguments.
type ResolverEvent[A any] struct {
	Arguments A               `json:"arguments"`
	Identity  json.RawMessage `json:"identity,omitempty"`
	Source    json.RawMessage `json:"source,omitempty"`
	Info      ResolverInfo    `json:"info"`
	Prev      json.RawMessage `json:"prev,omitempty"`
	Request   ResolverRequest `json:"request"`
}

// ResolverInfo describes the GraphQL field being resolved.
type ResolverInfo struct {
	FieldName        string                 `json:"fieldName"`
	ParentTypeName   string                 `json:"parentTypeName"`
	SelectionSetList []string               `json:"selectionSetList,omitempty"`
	Variables        map[string]interface{} `json:"variables,omitempty"`
}

// ResolverRequest holds the HTTP request data AppSync forwards to the resolver.
type ResolverRequest struct {
	Headers map[string]string `json:"headers,omitempty"`
}
