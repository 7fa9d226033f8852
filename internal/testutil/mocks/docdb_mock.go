// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	"github.com/unifiedui/docstore-service/internal/core/docdb"
)

// MockCollection is a mock implementation of docdb.Collection.
type MockCollection struct {
	mock.Mock
	name string
}

// NewMockCollection creates a MockCollection reporting the given name.
func NewMockCollection(name string) *MockCollection {
	return &MockCollection{name: name}
}

// Name returns the collection name.
func (m *MockCollection) Name() string {
	return m.name
}

// InsertOne inserts a single document.
func (m *MockCollection) InsertOne(ctx context.Context, document interface{}) (interface{}, error) {
	args := m.Called(ctx, document)
	return args.Get(0), args.Error(1)
}

// FindOne finds a single document.
func (m *MockCollection) FindOne(ctx context.Context, filter interface{}) docdb.SingleResult {
	args := m.Called(ctx, filter)
	return args.Get(0).(docdb.SingleResult)
}

// Distinct returns the distinct values of a field.
func (m *MockCollection) Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error) {
	args := m.Called(ctx, fieldName, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]interface{}), args.Error(1)
}

// MockDatabase is a mock implementation of docdb.Database.
type MockDatabase struct {
	mock.Mock
	name string
}

// NewMockDatabase creates a MockDatabase reporting the given name.
func NewMockDatabase(name string) *MockDatabase {
	return &MockDatabase{name: name}
}

// Name returns the database name.
func (m *MockDatabase) Name() string {
	return m.name
}

// Collection returns a collection from the database.
func (m *MockDatabase) Collection(name string) docdb.Collection {
	args := m.Called(name)
	return args.Get(0).(docdb.Collection)
}

// ListCollectionNames lists all collection names.
func (m *MockDatabase) ListCollectionNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockDocDBClient is a mock implementation of docdb.Client.
type MockDocDBClient struct {
	mock.Mock
}

// NewMockDocDBClient creates a new MockDocDBClient.
func NewMockDocDBClient() *MockDocDBClient {
	return &MockDocDBClient{}
}

// Database returns a database handle.
func (m *MockDocDBClient) Database(name string) docdb.Database {
	args := m.Called(name)
	return args.Get(0).(docdb.Database)
}

// Ping checks the database connection.
func (m *MockDocDBClient) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Close closes the database connection.
func (m *MockDocDBClient) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// WithCollection wires database and collection expectations for one namespace
// and returns the collection mock for further setup.
func (m *MockDocDBClient) WithCollection(database, collection string) *MockCollection {
	db := NewMockDatabase(database)
	coll := NewMockCollection(collection)
	m.On("Database", database).Return(db).Maybe()
	db.On("Collection", collection).Return(coll).Maybe()
	return coll
}

// MockSingleResult is a mock implementation of docdb.SingleResult that decodes
// a fixed document.
type MockSingleResult struct {
	Document map[string]interface{}
	Error    error
}

// Decode copies Document into v, which must be a *map[string]interface{}.
func (r *MockSingleResult) Decode(v interface{}) error {
	if r.Error != nil {
		return r.Error
	}
	target, ok := v.(*map[string]interface{})
	if !ok {
		return fmt.Errorf("mock single result: unsupported decode target %T", v)
	}
	out := make(map[string]interface{}, len(r.Document))
	for key, val := range r.Document {
		out[key] = val
	}
	*target = out
	return nil
}

// Err returns the configured error.
func (r *MockSingleResult) Err() error {
	return r.Error
}
