// Package bootstrap wires configuration into the document store and its backends.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/unifiedui/docstore-service/internal/config"
	"github.com/unifiedui/docstore-service/internal/core/cache"
	"github.com/unifiedui/docstore-service/internal/core/docdb"
	"github.com/unifiedui/docstore-service/internal/core/vault"
	rediscache "github.com/unifiedui/docstore-service/internal/infrastructure/cache/redis"
	"github.com/unifiedui/docstore-service/internal/infrastructure/docdb/mongodb"
	"github.com/unifiedui/docstore-service/internal/infrastructure/vault/dotenv"
	"github.com/unifiedui/docstore-service/internal/services/docstore"
)

// NewVault creates the secrets vault based on the configuration.
func NewVault(cfg config.VaultConfig) (vault.Vault, error) {
	vaultType, err := vault.ParseType(cfg.Type)
	if err != nil {
		return nil, err
	}

	switch vaultType {
	case vault.TypeDotEnv:
		var files []string
		if cfg.SecretsFile != "" {
			files = append(files, cfg.SecretsFile)
		}
		v, err := dotenv.NewVault(files...)
		if err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported vault type: %s", cfg.Type)
	}
}

// ResolveSecrets replaces credential references in cfg with the secrets they name.
func ResolveSecrets(ctx context.Context, cfg *config.Config) error {
	v, err := NewVault(cfg.Vault)
	if err != nil {
		return fmt.Errorf("failed to initialize vault: %w", err)
	}
	defer v.Close()

	if cfg.DocDB.URI, err = vault.Resolve(ctx, v, cfg.DocDB.URI); err != nil {
		return fmt.Errorf("failed to resolve docdb uri: %w", err)
	}
	if cfg.Cache.Password, err = vault.Resolve(ctx, v, cfg.Cache.Password); err != nil {
		return fmt.Errorf("failed to resolve cache password: %w", err)
	}
	return nil
}

// NewDocDBClient creates a document database client based on the configuration.
func NewDocDBClient(ctx context.Context, cfg config.DocDBConfig, logger zerolog.Logger) (docdb.Client, error) {
	docDBType, err := docdb.ParseType(cfg.Type)
	if err != nil {
		return nil, err
	}

	switch docDBType {
	case docdb.TypeMongoDB, docdb.TypeCosmosDB, docdb.TypeFerretDB:
		// Cosmos DB and FerretDB speak the MongoDB wire protocol, so the same client serves them.
		clientCfg := &mongodb.ClientConfig{
			URI:                    cfg.URI,
			AppName:                cfg.AppName,
			ConnectTimeout:         cfg.ConnectTimeout,
			ServerSelectionTimeout: cfg.ServerSelectionTimeout,
		}
		if cfg.MonitorCommands {
			clientCfg.Monitor = mongodb.NewCommandMonitor(logger)
		}

		client, err := mongodb.NewClient(ctx, clientCfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported docdb type: %s", cfg.Type)
	}
}

// NewCache creates the distinct-values cache. It returns nil when caching is disabled.
func NewCache(cfg config.CacheConfig) (cache.Cache, error) {
	cacheType, err := cache.ParseType(cfg.Type)
	if err != nil {
		return nil, err
	}

	switch cacheType {
	case cache.TypeNone:
		return nil, nil
	case cache.TypeRedis:
		c, err := rediscache.NewCache(rediscache.Config{
			Host:       cfg.Host,
			Port:       cfg.Port,
			Password:   cfg.Password,
			DB:         cfg.DB,
			DefaultTTL: cfg.TTL,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.Type)
	}
}

// NewStore resolves secrets and builds the document store with its client and
// optional cache. The returned store owns both; callers release them with Store.Close.
func NewStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (docstore.Store, error) {
	if err := ResolveSecrets(ctx, cfg); err != nil {
		return nil, err
	}

	client, err := NewDocDBClient(ctx, cfg.DocDB, logger)
	if err != nil {
		return nil, err
	}

	c, err := NewCache(cfg.Cache)
	if err != nil {
		_ = client.Close(ctx)
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	return docstore.NewStore(&docstore.Config{
		Client:   client,
		Cache:    c,
		CacheTTL: cfg.Cache.TTL,
		Logger:   &logger,
	})
}
