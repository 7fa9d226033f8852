// Package config handles application configuration loading and management.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Server ServerConfig
	DocDB  DocDBConfig
	Cache  CacheConfig
	Vault  VaultConfig
	Log    LogConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host            string
	Port            int
	GinMode         string
	ShutdownTimeout time.Duration

	// CORSAllowedOrigins is empty when cross-origin requests are not served.
	CORSAllowedOrigins []string
}

// Address returns the server address in host:port format.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DocDBConfig holds document database configuration.
type DocDBConfig struct {
	Type                   string
	URI                    string
	AppName                string
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	MonitorCommands        bool
}

// CacheConfig holds configuration of the distinct-values cache.
type CacheConfig struct {
	Type     string
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// VaultConfig holds configuration of the secrets vault that resolves
// credential references such as MONGODB_URI=dotenv://PROD_MONGODB_URI.
type VaultConfig struct {
	Type        string
	SecretsFile string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:               getEnv("SERVER_HOST", "0.0.0.0"),
			Port:               getEnvAsInt("SERVER_PORT", 8080),
			GinMode:            getEnv("GIN_MODE", "release"),
			ShutdownTimeout:    time.Duration(getEnvAsInt("SERVER_SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
			CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS"),
		},
		DocDB: DocDBConfig{
			Type:                   getEnv("DOCDB_TYPE", "mongodb"),
			URI:                    getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			AppName:                getEnv("MONGODB_APP_NAME", "docstore-service"),
			ConnectTimeout:         time.Duration(getEnvAsInt("MONGODB_CONNECT_TIMEOUT_SECONDS", 0)) * time.Second,
			ServerSelectionTimeout: time.Duration(getEnvAsInt("MONGODB_SERVER_SELECTION_TIMEOUT_SECONDS", 0)) * time.Second,
			MonitorCommands:        getEnvAsBool("MONGODB_MONITOR_COMMANDS", false),
		},
		Cache: CacheConfig{
			Type:     getEnv("CACHE_TYPE", "none"),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			TTL:      time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 60)) * time.Second,
		},
		Vault: VaultConfig{
			Type:        getEnv("VAULT_TYPE", "dotenv"),
			SecretsFile: getEnv("VAULT_SECRETS_FILE", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid SERVER_PORT: %d", cfg.Server.Port)
	}

	return cfg, nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer with a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as a boolean with a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsSlice splits a comma-separated environment variable, dropping empty entries.
func getEnvAsSlice(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
