// Package docdb provides the document database type constants.
package docdb

import (
	"fmt"
	"strings"
)

// Type represents the type of document database.
type Type string

const (
	// TypeMongoDB represents a MongoDB database.
	TypeMongoDB Type = "mongodb"
	// TypeCosmosDB represents an Azure Cosmos DB database (MongoDB API).
	TypeCosmosDB Type = "cosmosdb"
	// TypeFerretDB represents a FerretDB server.
	TypeFerretDB Type = "ferretdb"
)

// ParseType validates a configured database type.
func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case TypeMongoDB, TypeCosmosDB, TypeFerretDB:
		return t, nil
	default:
		return "", fmt.Errorf("unsupported docdb type: %q", s)
	}
}
