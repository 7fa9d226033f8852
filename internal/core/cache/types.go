// Package cache provides the cache type constants.
package cache

import (
	"fmt"
	"strings"
)

// Type represents the type of cache.
type Type string

const (
	// TypeNone disables caching.
	TypeNone Type = "none"
	// TypeRedis represents a Redis cache.
	TypeRedis Type = "redis"
)

// ParseType validates a configured cache type. An empty string means TypeNone.
func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case "", TypeNone:
		return TypeNone, nil
	case TypeRedis:
		return t, nil
	default:
		return "", fmt.Errorf("unsupported cache type: %q", s)
	}
}
