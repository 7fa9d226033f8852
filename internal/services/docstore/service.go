// Package docstore provides the document store facade: insert a document into a
// named collection and list the distinct values of a field.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/unifiedui/docstore-service/internal/core/cache"
	"github.com/unifiedui/docstore-service/internal/core/docdb"
	domainerrors "github.com/unifiedui/docstore-service/internal/domain/errors"
	"github.com/unifiedui/docstore-service/internal/domain/models"
)

// DefaultCacheTTL is the default lifetime of cached distinct values.
const DefaultCacheTTL = 60 * time.Second

// Store is the document store client.
type Store interface {
	// InsertDocument inserts document into database.collection and returns the
	// identifier assigned to it, rendered as a string.
	InsertDocument(ctx context.Context, database, collection string, document models.Document) (string, error)

	// GetDocument retrieves a document by the identifier InsertDocument returned.
	GetDocument(ctx context.Context, database, collection, id string) (models.Document, error)

	// ListUniqueValues returns the distinct values of field across the collection.
	// Order is whatever the server returns. An empty collection yields an empty slice.
	ListUniqueValues(ctx context.Context, database, collection, field string) ([]models.Value, error)

	// ListCollections lists the collection names of a database.
	ListCollections(ctx context.Context, database string) ([]string, error)

	// Ping verifies the database connection.
	Ping(ctx context.Context) error

	// Close releases the connection and the cache, if any.
	Close(ctx context.Context) error
}

// Config holds the configuration for the store.
type Config struct {
	// Client is the document database connection. Required. The store takes ownership.
	Client docdb.Client
	// Cache enables read-through caching of distinct values when non-nil.
	Cache cache.Cache
	// CacheTTL overrides DefaultCacheTTL.
	CacheTTL time.Duration
	// Logger defaults to the global zerolog logger.
	Logger *zerolog.Logger
}

// store implements the Store interface.
type store struct {
	client   docdb.Client
	cache    cache.Cache
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewStore creates a new document store.
func NewStore(cfg *Config) (Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Client == nil {
		return nil, fmt.Errorf("docdb client is required")
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	logger := log.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &store{
		client:   cfg.Client,
		cache:    cfg.Cache,
		cacheTTL: ttl,
		logger:   logger.With().Str("component", "docstore").Logger(),
	}, nil
}

// InsertDocument inserts one document.
func (s *store) InsertDocument(ctx context.Context, database, collection string, document models.Document) (string, error) {
	if err := validateNamespace(database, collection); err != nil {
		return "", err
	}
	if document == nil {
		return "", domainerrors.NewValidationError("document is required", "")
	}
	if id, ok := document[models.IDField]; ok && (id.Kind() == models.KindDocument || id.Kind() == models.KindArray) {
		// Field order of a nested document is not preserved, so such an id
		// could not be rendered back into a matching string.
		return "", domainerrors.NewValidationError("document _id must be a scalar value", id.Kind().String())
	}

	insertedID, err := s.collection(database, collection).InsertOne(ctx, document.Map())
	if err != nil {
		return "", err
	}

	s.invalidate(ctx, database, collection)

	id := FormatID(insertedID)
	s.logger.Debug().
		Str("database", database).
		Str("collection", collection).
		Str("id", id).
		Msg("document inserted")

	return id, nil
}

// GetDocument retrieves a document by identifier.
func (s *store) GetDocument(ctx context.Context, database, collection, id string) (models.Document, error) {
	if err := validateNamespace(database, collection); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, domainerrors.NewValidationError("document id is required", "")
	}

	filter := map[string]interface{}{
		models.IDField: map[string]interface{}{"$in": idCandidates(id)},
	}

	var raw map[string]interface{}
	if err := s.collection(database, collection).FindOne(ctx, filter).Decode(&raw); err != nil {
		if errors.Is(err, docdb.ErrNoDocuments) {
			return nil, domainerrors.NewNotFoundError("document", id)
		}
		return nil, err
	}

	doc, err := models.DocumentFromMap(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", id, err)
	}
	return doc, nil
}

// ListUniqueValues lists the distinct values of a field.
func (s *store) ListUniqueValues(ctx context.Context, database, collection, field string) ([]models.Value, error) {
	if err := validateNamespace(database, collection); err != nil {
		return nil, err
	}
	if field == "" {
		return nil, domainerrors.NewValidationError("field name is required", "")
	}

	gen, cacheable := s.generation(ctx, database, collection)
	key := distinctKey(database, collection, gen, field)
	if cacheable {
		if values, ok := s.cachedValues(ctx, key); ok {
			return values, nil
		}
	}

	raw, err := s.collection(database, collection).Distinct(ctx, field, nil)
	if err != nil {
		return nil, err
	}

	values := make([]models.Value, 0, len(raw))
	for _, item := range raw {
		val, err := models.FromInterface(item)
		if err != nil {
			return nil, fmt.Errorf("failed to decode distinct value of %s: %w", field, err)
		}
		values = append(values, val)
	}

	if cacheable {
		s.storeValues(ctx, database, collection, gen, key, values)
	}
	return values, nil
}

// ListCollections lists the collections of a database.
func (s *store) ListCollections(ctx context.Context, database string) ([]string, error) {
	if database == "" {
		return nil, domainerrors.NewValidationError("database name is required", "")
	}
	return s.client.Database(database).ListCollectionNames(ctx)
}

// Ping verifies the database connection.
func (s *store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

// Close releases the connection and the cache.
func (s *store) Close(ctx context.Context) error {
	err := s.client.Close(ctx)
	if s.cache != nil {
		if cacheErr := s.cache.Close(); cacheErr != nil && err == nil {
			err = cacheErr
		}
	}
	return err
}

// collection derives a collection handle. Handles are not cached.
func (s *store) collection(database, collection string) docdb.Collection {
	return s.client.Database(database).Collection(collection)
}

func validateNamespace(database, collection string) error {
	if database == "" {
		return domainerrors.NewValidationError("database name is required", "")
	}
	if collection == "" {
		return domainerrors.NewValidationError("collection name is required", "")
	}
	return nil
}

// FormatID renders an inserted identifier as a string. Object identifiers
// render as hex and strings as themselves; any other value renders as relaxed
// Extended JSON, so 7 becomes "7" and a decimal becomes {"$numberDecimal":"1.5"}.
func FormatID(id interface{}) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	}
	if out, err := models.ExtJSONValue(id); err == nil {
		return out
	}
	return fmt.Sprint(id)
}

// idCandidates returns the stored forms an identifier string may have been
// rendered from by FormatID: the string itself, an ObjectID, or the value the
// string decodes to as Extended JSON.
func idCandidates(id string) []interface{} {
	candidates := []interface{}{id}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		candidates = append(candidates, oid)
	}
	if v, err := models.ParseExtJSONValue(strings.TrimSpace(id)); err == nil {
		if _, isString := v.(string); !isString {
			candidates = append(candidates, v)
		}
	}
	return candidates
}
