package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/unifiedui/docstore-service/internal/domain/models"
)

// MockStore is a mock implementation of docstore.Store.
type MockStore struct {
	mock.Mock
}

// NewMockStore creates a new MockStore.
func NewMockStore() *MockStore {
	return &MockStore{}
}

// InsertDocument inserts a document.
func (m *MockStore) InsertDocument(ctx context.Context, database, collection string, document models.Document) (string, error) {
	args := m.Called(ctx, database, collection, document)
	return args.String(0), args.Error(1)
}

// GetDocument retrieves a document.
func (m *MockStore) GetDocument(ctx context.Context, database, collection, id string) (models.Document, error) {
	args := m.Called(ctx, database, collection, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Document), args.Error(1)
}

// ListUniqueValues lists distinct values.
func (m *MockStore) ListUniqueValues(ctx context.Context, database, collection, field string) ([]models.Value, error) {
	args := m.Called(ctx, database, collection, field)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Value), args.Error(1)
}

// ListCollections lists collection names.
func (m *MockStore) ListCollections(ctx context.Context, database string) ([]string, error) {
	args := m.Called(ctx, database)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// Ping verifies the connection.
func (m *MockStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Close releases resources.
func (m *MockStore) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
