// Package dotenv provides a vault backed by environment variables and dotenv files.
package dotenv

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Scheme is the reference prefix resolved by this vault.
const Scheme = "dotenv://"

// Vault implements the vault.Vault interface using environment variables.
// Secrets files are read once at construction; the environment takes precedence.
type Vault struct {
	secrets map[string]string
}

// NewVault creates a new DotEnv vault reading the given secrets files.
func NewVault(files ...string) (*Vault, error) {
	secrets := make(map[string]string)
	if len(files) > 0 {
		read, err := godotenv.Read(files...)
		if err != nil {
			return nil, fmt.Errorf("failed to read secrets file: %w", err)
		}
		secrets = read
	}

	return &Vault{
		secrets: secrets,
	}, nil
}

// Scheme returns the reference prefix.
func (v *Vault) Scheme() string {
	return Scheme
}

// GetSecret retrieves a secret from environment variables or the secrets files.
func (v *Vault) GetSecret(ctx context.Context, uri string) (string, error) {
	key := strings.TrimPrefix(uri, Scheme)
	if key == "" {
		return "", fmt.Errorf("empty secret reference")
	}

	if value := os.Getenv(key); value != "" {
		return value, nil
	}

	if value, ok := v.secrets[key]; ok {
		return value, nil
	}

	return "", fmt.Errorf("secret not found: %s", key)
}

// Close is a no-op.
func (v *Vault) Close() error {
	return nil
}
