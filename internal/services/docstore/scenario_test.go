package docstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	domainerrors "github.com/unifiedui/docstore-service/internal/domain/errors"
	"github.com/unifiedui/docstore-service/internal/domain/models"
	"github.com/unifiedui/docstore-service/internal/infrastructure/docdb/mongodb"
	"github.com/unifiedui/docstore-service/internal/services/docstore"
)

// These tests drive the store through the real driver against a mock deployment.

func newDriverStore(mt *mtest.T) docstore.Store {
	store, err := docstore.NewStore(&docstore.Config{Client: mongodb.WrapClient(mt.Client)})
	require.NoError(mt, err)
	return store
}

func TestScenario_InsertThenListUniqueValues(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("alice", func(mt *mtest.T) {
		store := newDriverStore(mt)
		ctx := context.Background()

		mt.AddMockResponses(mtest.CreateSuccessResponse())
		id, err := store.InsertDocument(ctx, "test", "people", models.Document{
			"name": models.String("Alice"),
			"age":  models.Int(30),
		})
		require.NoError(mt, err)
		assert.NotEmpty(mt, id)
		_, err = primitive.ObjectIDFromHex(id)
		assert.NoError(mt, err)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "values", Value: bson.A{"Alice"}}))
		values, err := store.ListUniqueValues(ctx, "test", "people", "name")
		require.NoError(mt, err)
		require.Len(mt, values, 1)
		assert.True(mt, models.String("Alice").Equal(values[0]))
	})
}

func TestScenario_DistinctCountBoundedByInserts(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("five inserts", func(mt *mtest.T) {
		store := newDriverStore(mt)
		ctx := context.Background()
		names := []string{"Alice", "Bob", "Alice", "Carol", "Bob"}

		for _, name := range names {
			mt.AddMockResponses(mtest.CreateSuccessResponse())
			_, err := store.InsertDocument(ctx, "test", "people", models.Document{"name": models.String(name)})
			require.NoError(mt, err)
		}

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "values", Value: bson.A{"Alice", "Bob", "Carol"}}))
		values, err := store.ListUniqueValues(ctx, "test", "people", "name")
		require.NoError(mt, err)

		assert.GreaterOrEqual(mt, len(values), 1)
		assert.LessOrEqual(mt, len(values), len(names))
		for i := range values {
			for j := i + 1; j < len(values); j++ {
				assert.False(mt, values[i].Equal(values[j]), "duplicate value %v", values[i])
			}
		}
		for _, name := range names {
			found := false
			for _, v := range values {
				found = found || models.String(name).Equal(v)
			}
			assert.True(mt, found, "inserted %s missing from distinct values", name)
		}
	})
}

func TestScenario_EmptyCollection(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("no documents", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "values", Value: bson.A{}}))

		values, err := newDriverStore(mt).ListUniqueValues(context.Background(), "fresh", "nothing", "name")

		require.NoError(mt, err)
		assert.Equal(mt, []models.Value{}, values)
	})
}

func TestScenario_RoundTrip(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert then get", func(mt *mtest.T) {
		store := newDriverStore(mt)
		ctx := context.Background()
		original := models.Document{
			"name":    models.String("Alice"),
			"age":     models.Int(30),
			"address": models.Doc(models.Document{"city": models.String("Berlin")}),
			"tags":    models.Array(models.String("a"), models.Bool(true)),
		}

		mt.AddMockResponses(mtest.CreateSuccessResponse())
		id, err := store.InsertDocument(ctx, "test", "people", original)
		require.NoError(mt, err)
		oid, err := primitive.ObjectIDFromHex(id)
		require.NoError(mt, err)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.people", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "name", Value: "Alice"},
			{Key: "age", Value: int64(30)},
			{Key: "address", Value: bson.D{{Key: "city", Value: "Berlin"}}},
			{Key: "tags", Value: bson.A{"a", true}},
		}))
		got, err := store.GetDocument(ctx, "test", "people", id)
		require.NoError(mt, err)

		assert.True(mt, original.Equal(got.Without(models.IDField)))
		assert.True(mt, models.ObjectID(oid).Equal(got[models.IDField]))
	})
}

func TestScenario_DistinctRejected(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("bad field path", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    40352,
			Name:    "Location40352",
			Message: "FieldPath cannot be constructed with empty string",
		}))

		_, err := newDriverStore(mt).ListUniqueValues(context.Background(), "test", "people", "a..b")

		assert.True(mt, domainerrors.IsQueryError(err), "got %v", err)
	})
}

func TestScenario_InsertRejected(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("validation rule", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    121,
			Message: "Document failed validation",
		}))

		_, err := newDriverStore(mt).InsertDocument(context.Background(), "test", "people",
			models.Document{"name": models.Int(1)})

		assert.True(mt, domainerrors.IsWriteError(err), "got %v", err)
	})
}
