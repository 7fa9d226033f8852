// Package docdb defines the document database client interface.
package docdb

import (
	"context"
)

// Client defines the interface for a document database client.
// Implementations own the underlying connection and must be safe for concurrent use.
type Client interface {
	// Database returns a handle to the named database. Handles are cheap and not cached.
	Database(name string) Database

	// Ping verifies the database connection.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close(ctx context.Context) error
}
