// Package vault defines the secrets lookup used to resolve credential references in configuration.
package vault

import (
	"context"
	"strings"
)

// Vault defines the interface for secret lookups.
type Vault interface {
	// Scheme returns the reference prefix this vault resolves, e.g. "dotenv://".
	Scheme() string

	// GetSecret retrieves a secret by reference.
	GetSecret(ctx context.Context, uri string) (string, error)

	// Close closes the vault connection.
	Close() error
}

// IsReference reports whether value is a secret reference for v.
func IsReference(v Vault, value string) bool {
	return strings.HasPrefix(value, v.Scheme())
}

// Resolve returns the secret value references point to. Plain values are returned unchanged.
func Resolve(ctx context.Context, v Vault, value string) (string, error) {
	if !IsReference(v, value) {
		return value, nil
	}
	return v.GetSecret(ctx, value)
}
