package vault

import "fmt"

// Type represents the type of vault.
type Type string

const (
	// TypeDotEnv resolves secrets from environment variables and dotenv files.
	TypeDotEnv Type = "dotenv"
)

// ParseType parses a vault type name. An empty name selects TypeDotEnv.
func ParseType(name string) (Type, error) {
	switch Type(name) {
	case "", TypeDotEnv:
		return TypeDotEnv, nil
	default:
		return "", fmt.Errorf("unsupported vault type: %s", name)
	}
}
