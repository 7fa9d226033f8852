package docstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/unifiedui/docstore-service/internal/core/docdb"
	domainerrors "github.com/unifiedui/docstore-service/internal/domain/errors"
	"github.com/unifiedui/docstore-service/internal/domain/models"
	"github.com/unifiedui/docstore-service/internal/services/docstore"
	"github.com/unifiedui/docstore-service/internal/testutil/mocks"
)

func newTestStore(t *testing.T, client docdb.Client) docstore.Store {
	t.Helper()
	store, err := docstore.NewStore(&docstore.Config{Client: client})
	require.NoError(t, err)
	return store
}

func TestNewStore_Validation(t *testing.T) {
	_, err := docstore.NewStore(nil)
	assert.Error(t, err)

	_, err = docstore.NewStore(&docstore.Config{})
	assert.Error(t, err)
}

func TestStore_InsertDocument_ReturnsObjectIDHex(t *testing.T) {
	// Arrange
	client := mocks.NewMockDocDBClient()
	coll := client.WithCollection("test", "people")
	oid := primitive.NewObjectID()

	doc := models.Document{"name": models.String("Alice"), "age": models.Int(30)}
	coll.On("InsertOne", mock.Anything, map[string]interface{}{"name": "Alice", "age": int64(30)}).
		Return(oid, nil)

	store := newTestStore(t, client)

	// Act
	id, err := store.InsertDocument(context.Background(), "test", "people", doc)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, oid.Hex(), id)
	coll.AssertExpectations(t)
}

func TestStore_InsertDocument_CallerSuppliedID(t *testing.T) {
	client := mocks.NewMockDocDBClient()
	coll := client.WithCollection("test", "people")
	coll.On("InsertOne", mock.Anything, mock.Anything).Return(int32(42), nil)

	id, err := newTestStore(t, client).InsertDocument(context.Background(), "test", "people",
		models.Document{"_id": models.Int(42)})

	require.NoError(t, err)
	assert.Equal(t, "42", id)
}

func TestStore_InsertDocument_ValidatesNames(t *testing.T) {
	client := mocks.NewMockDocDBClient()
	store := newTestStore(t, client)
	ctx := context.Background()
	doc := models.Document{"a": models.Int(1)}

	_, err := store.InsertDocument(ctx, "", "people", doc)
	assert.True(t, domainerrors.IsValidationError(err))

	_, err = store.InsertDocument(ctx, "test", "", doc)
	assert.True(t, domainerrors.IsValidationError(err))

	_, err = store.InsertDocument(ctx, "test", "people", nil)
	assert.True(t, domainerrors.IsValidationError(err))

	client.AssertNotCalled(t, "Database", mock.Anything)
}

func TestStore_InsertDocument_PropagatesDriverErrors(t *testing.T) {
	cause := errors.New("Document failed validation")
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"write", domainerrors.NewWriteError("insert", cause), domainerrors.IsWriteError},
		{"connection", domainerrors.NewConnectionError("insert", cause), domainerrors.IsConnectionError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockDocDBClient()
			coll := client.WithCollection("test", "people")
			coll.On("InsertOne", mock.Anything, mock.Anything).Return(nil, tt.err)

			_, err := newTestStore(t, client).InsertDocument(context.Background(), "test", "people",
				models.Document{"name": models.String("Alice")})

			require.Error(t, err)
			assert.True(t, tt.check(err))
			assert.ErrorIs(t, err, cause)
		})
	}
}

func TestStore_ListUniqueValues(t *testing.T) {
	// Arrange
	client := mocks.NewMockDocDBClient()
	coll := client.WithCollection("test", "people")
	coll.On("Distinct", mock.Anything, "name", nil).Return([]interface{}{"Alice", "Bob"}, nil)

	// Act
	values, err := newTestStore(t, client).ListUniqueValues(context.Background(), "test", "people", "name")

	// Assert
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.True(t, models.String("Alice").Equal(values[0]))
	assert.True(t, models.String("Bob").Equal(values[1]))
}

func TestStore_ListUniqueValues_BinaryAndDecimal(t *testing.T) {
	// Arrange
	client := mocks.NewMockDocDBClient()
	coll := client.WithCollection("test", "people")
	uuid := primitive.Binary{Subtype: 4, Data: []byte("0123456789abcdef")}
	dec, err := primitive.ParseDecimal128("1.50")
	require.NoError(t, err)
	coll.On("Distinct", mock.Anything, "ref", nil).Return([]interface{}{uuid, dec, uint64(1) << 63}, nil)

	// Act
	values, err := newTestStore(t, client).ListUniqueValues(context.Background(), "test", "people", "ref")

	// Assert
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.True(t, models.Raw(uuid).Equal(values[0]))
	assert.True(t, models.Raw(dec).Equal(values[1]))
	assert.Equal(t, models.KindRaw, values[2].Kind())
	assert.Equal(t, `{"$numberDecimal":"9223372036854775808"}`, values[2].String())
}

func TestStore_ListUniqueValues_EmptyCollection(t *testing.T) {
	client := mocks.NewMockDocDBClient()
	coll := client.WithCollection("test", "empty")
	coll.On("Distinct", mock.Anything, "name", nil).Return([]interface{}{}, nil)

	values, err := newTestStore(t, client).ListUniqueValues(context.Background(), "test", "empty", "name")

	require.NoError(t, err)
	assert.NotNil(t, values)
	assert.Empty(t, values)
}

func TestStore_ListUniqueValues_DottedPath(t *testing.T) {
	client := mocks.NewMockDocDBClient()
	coll := client.WithCollection("test", "people")
	coll.On("Distinct", mock.Anything, "address.city", nil).Return([]interface{}{"Berlin"}, nil)

	values, err := newTestStore(t, client).ListUniqueValues(context.Background(), "test", "people", "address.city")

	require.NoError(t, err)
	assert.Len(t, values, 1)
	coll.AssertExpectations(t)
}

func TestStore_ListUniqueValues_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("empty field", func(t *testing.T) {
		_, err := newTestStore(t, mocks.NewMockDocDBClient()).ListUniqueValues(ctx, "test", "people", "")
		assert.True(t, domainerrors.IsValidationError(err))
	})

	t.Run("query rejected", func(t *testing.T) {
		client := mocks.NewMockDocDBClient()
		coll := client.WithCollection("test", "people")
		coll.On("Distinct", mock.Anything, "$bad", nil).
			Return(nil, domainerrors.NewQueryError("distinct", errors.New("BadValue")))

		_, err := newTestStore(t, client).ListUniqueValues(ctx, "test", "people", "$bad")
		assert.True(t, domainerrors.IsQueryError(err))
	})

	t.Run("undecodable value", func(t *testing.T) {
		client := mocks.NewMockDocDBClient()
		coll := client.WithCollection("test", "people")
		coll.On("Distinct", mock.Anything, "blob", nil).Return([]interface{}{primitive.Binary{Data: []byte{1}}}, nil)

		_, err := newTestStore(t, client).ListUniqueValues(ctx, "test", "people", "blob")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "blob")
	})
}

func TestStore_GetDocument(t *testing.T) {
	// Arrange
	client := mocks.NewMockDocDBClient()
	coll := client.WithCollection("test", "people")
	oid := primitive.NewObjectID()

	coll.On("FindOne", mock.Anything, mock.MatchedBy(func(filter map[string]interface{}) bool {
		in := filter["_id"].(map[string]interface{})["$in"].([]interface{})
		return len(in) == 2 && in[0] == oid.Hex() && in[1] == oid
	})).Return(&mocks.MockSingleResult{Document: map[string]interface{}{
		"_id":  oid,
		"name": "Alice",
		"age":  int32(30),
	}})

	// Act
	doc, err := newTestStore(t, client).GetDocument(context.Background(), "test", "people", oid.Hex())

	// Assert
	require.NoError(t, err)
	assert.True(t, models.Document{
		"_id":  models.ObjectID(oid),
		"name": models.String("Alice"),
		"age":  models.Int(30),
	}.Equal(doc))
}

func TestStore_GetDocument_NotFound(t *testing.T) {
	client := mocks.NewMockDocDBClient()
	coll := client.WithCollection("test", "people")
	coll.On("FindOne", mock.Anything, mock.Anything).Return(&mocks.MockSingleResult{Error: docdb.ErrNoDocuments})

	_, err := newTestStore(t, client).GetDocument(context.Background(), "test", "people", "missing")

	assert.True(t, domainerrors.IsNotFound(err))
}

func TestStore_ListCollections(t *testing.T) {
	client := mocks.NewMockDocDBClient()
	db := mocks.NewMockDatabase("test")
	client.On("Database", "test").Return(db)
	db.On("ListCollectionNames", mock.Anything).Return([]string{"people"}, nil)

	names, err := newTestStore(t, client).ListCollections(context.Background(), "test")

	require.NoError(t, err)
	assert.Equal(t, []string{"people"}, names)
}

func TestStore_PingAndClose(t *testing.T) {
	client := mocks.NewMockDocDBClient()
	client.On("Ping", mock.Anything).Return(nil)
	client.On("Close", mock.Anything).Return(nil)

	store := newTestStore(t, client)

	assert.NoError(t, store.Ping(context.Background()))
	assert.NoError(t, store.Close(context.Background()))
	client.AssertExpectations(t)
}

func TestFormatID(t *testing.T) {
	oid := primitive.NewObjectID()

	assert.Equal(t, oid.Hex(), docstore.FormatID(oid))
	assert.Equal(t, "alice", docstore.FormatID("alice"))
	assert.Equal(t, "7", docstore.FormatID(int64(7)))
	assert.Equal(t, "42", docstore.FormatID(int32(42)))
	assert.Equal(t, "2.0", docstore.FormatID(2.0))
	assert.Equal(t, "true", docstore.FormatID(true))

	dec, err := primitive.ParseDecimal128("1.5")
	require.NoError(t, err)
	assert.Equal(t, `{"$numberDecimal":"1.5"}`, docstore.FormatID(dec))
}

func TestStore_InsertDocument_RejectsCompositeID(t *testing.T) {
	client := mocks.NewMockDocDBClient()
	coll := client.WithCollection("test", "people")
	store := newTestStore(t, client)

	ids := []models.Value{
		models.Doc(models.Document{"a": models.Int(1)}),
		models.Array(models.Int(1), models.Int(2)),
	}
	for _, id := range ids {
		_, err := store.InsertDocument(context.Background(), "test", "people", models.Document{"_id": id})
		assert.True(t, domainerrors.IsValidationError(err), "id kind %s", id.Kind())
	}

	coll.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestStore_GetDocument_NonScalarStringIDRoundTrip(t *testing.T) {
	// Arrange
	client := mocks.NewMockDocDBClient()
	coll := client.WithCollection("test", "ledger")
	dec, err := primitive.ParseDecimal128("1.5")
	require.NoError(t, err)

	coll.On("InsertOne", mock.Anything, mock.Anything).Return(dec, nil)
	coll.On("FindOne", mock.Anything, mock.MatchedBy(func(filter map[string]interface{}) bool {
		in := filter["_id"].(map[string]interface{})["$in"].([]interface{})
		for _, candidate := range in {
			if candidate == interface{}(dec) {
				return true
			}
		}
		return false
	})).Return(&mocks.MockSingleResult{Document: map[string]interface{}{"_id": dec, "amount": int32(3)}})

	store := newTestStore(t, client)
	ctx := context.Background()

	// Act
	id, err := store.InsertDocument(ctx, "test", "ledger", models.Document{"_id": models.Raw(dec), "amount": models.Int(3)})
	require.NoError(t, err)
	doc, err := store.GetDocument(ctx, "test", "ledger", id)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, `{"$numberDecimal":"1.5"}`, id)
	assert.True(t, models.Raw(dec).Equal(doc["_id"]))
}
