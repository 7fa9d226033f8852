package docstore

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/unifiedui/docstore-service/internal/domain/models"
)

const (
	distinctKeyPrefix   = "docstore:distinct:"
	generationKeyPrefix = "docstore:generation:"
)

// cachedDistinct is the BSON payload of a cache entry. BSON keeps every value
// type intact, including sub-documents shaped like extended JSON wrappers.
type cachedDistinct struct {
	Values []interface{} `bson:"values"`
}

// namespaceKey joins query-escaped components so they contain neither ':' nor
// glob metacharacters.
func namespaceKey(prefix string, parts ...string) string {
	escaped := make([]string, len(parts))
	for i, part := range parts {
		escaped[i] = url.QueryEscape(part)
	}
	return prefix + strings.Join(escaped, ":")
}

// generationKey names the counter bumped by every insert into a collection.
func generationKey(database, collection string) string {
	return namespaceKey(generationKeyPrefix, database, collection)
}

// distinctKey builds the cache key for one field at one collection generation.
func distinctKey(database, collection string, generation int64, field string) string {
	return namespaceKey(distinctKeyPrefix, database, collection) +
		":" + strconv.FormatInt(generation, 10) + ":" + url.QueryEscape(field)
}

// distinctPattern matches every cached field of one collection, at any generation.
func distinctPattern(database, collection string) string {
	return namespaceKey(distinctKeyPrefix, database, collection) + ":*"
}

// generation reads the collection's current generation. A missing counter is
// generation 0. The second result is false when the cache must be bypassed.
func (s *store) generation(ctx context.Context, database, collection string) (int64, bool) {
	if s.cache == nil {
		return 0, false
	}

	key := generationKey(database, collection)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache generation read failed")
		return 0, false
	}
	if data == nil {
		return 0, true
	}

	gen, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache generation is not an integer")
		return 0, false
	}
	return gen, true
}

// cachedValues returns cached distinct values. Cache failures are logged and
// treated as a miss.
func (s *store) cachedValues(ctx context.Context, key string) ([]models.Value, bool) {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("distinct cache read failed")
		return nil, false
	}
	if data == nil {
		return nil, false
	}

	var payload cachedDistinct
	if err := bson.Unmarshal(data, &payload); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		return nil, false
	}

	values := make([]models.Value, 0, len(payload.Values))
	for _, item := range payload.Values {
		val, err := models.FromInterface(item)
		if err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
			return nil, false
		}
		values = append(values, val)
	}
	return values, true
}

// storeValues caches values read at generation gen. The write is skipped when
// an insert bumped the generation while the database was being read, so a
// stale set is never published under the current generation.
func (s *store) storeValues(ctx context.Context, database, collection string, gen int64, key string, values []models.Value) {
	if current, ok := s.generation(ctx, database, collection); !ok || current != gen {
		return
	}

	payload := cachedDistinct{Values: make([]interface{}, len(values))}
	for i, val := range values {
		payload.Values[i] = val.Interface()
	}

	data, err := bson.Marshal(payload)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("distinct values not cacheable")
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("distinct cache write failed")
	}
}

// invalidate retires cached distinct values of a collection after a write by
// bumping its generation. Entries of older generations age out with their TTL;
// they are deleted eagerly only when the counter cannot be bumped.
func (s *store) invalidate(ctx context.Context, database, collection string) {
	if s.cache == nil {
		return
	}

	key := generationKey(database, collection)
	_, err := s.cache.Incr(ctx, key)
	if err == nil {
		return
	}
	s.logger.Warn().Err(err).Str("key", key).Msg("cache generation bump failed")

	pattern := distinctPattern(database, collection)
	if _, err := s.cache.DeletePattern(ctx, pattern); err != nil {
		s.logger.Warn().Err(err).Str("pattern", pattern).Msg("distinct cache invalidation failed")
	}
}
