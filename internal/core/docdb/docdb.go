// Package docdb defines the document database interface.
package docdb

import (
	"context"
	"errors"
)

// ErrNoDocuments is returned by SingleResult when the filter matched nothing.
var ErrNoDocuments = errors.New("docdb: no documents in result")

// SingleResult represents the result of a FindOne operation.
type SingleResult interface {
	// Decode decodes the result into the provided interface.
	Decode(v interface{}) error
	// Err returns any error from the operation.
	Err() error
}

// Collection defines the interface for document collection operations.
type Collection interface {
	// Name returns the collection name.
	Name() string

	// InsertOne inserts a single document and returns the identifier assigned to it.
	InsertOne(ctx context.Context, document interface{}) (interface{}, error)

	// FindOne finds a single document.
	FindOne(ctx context.Context, filter interface{}) SingleResult

	// Distinct returns the unique values of fieldName across documents matching filter.
	// Dotted paths address nested fields.
	Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error)
}

// Database defines the interface for database operations.
type Database interface {
	// Name returns the database name.
	Name() string

	// Collection returns a collection by name.
	Collection(name string) Collection

	// ListCollectionNames lists all collection names.
	ListCollectionNames(ctx context.Context) ([]string, error)
}
