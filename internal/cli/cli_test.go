package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/unifiedui/docstore-service/internal/cli"
	"github.com/unifiedui/docstore-service/internal/config"
	domainerrors "github.com/unifiedui/docstore-service/internal/domain/errors"
	"github.com/unifiedui/docstore-service/internal/domain/models"
	"github.com/unifiedui/docstore-service/internal/services/docstore"
	"github.com/unifiedui/docstore-service/internal/testutil/mocks"
)

// run executes the command tree against store and returns stdout.
func run(t *testing.T, store *mocks.MockStore, args ...string) (string, *config.Config, error) {
	t.Helper()

	var seen *config.Config
	factory := func(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (docstore.Store, error) {
		seen = cfg
		return store, nil
	}

	var stdout, stderr bytes.Buffer
	root := cli.NewRootCommand(factory)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), seen, err
}

func TestInsertCommand(t *testing.T) {
	// Setup
	store := mocks.NewMockStore()
	want := models.Document{"name": models.String("Alice"), "age": models.Int(30)}
	store.On("InsertDocument", mock.Anything, "test_db", "people",
		mock.MatchedBy(func(doc models.Document) bool { return want.Equal(doc) })).
		Return("65f1c0ffee0000000000abcd", nil)
	store.On("Close", mock.Anything).Return(nil)

	// Execute
	out, cfg, err := run(t, store, "insert", "--uri", "mongodb://db.test:27017", "test_db", "people", `{"name": "Alice", "age": 30}`)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "65f1c0ffee0000000000abcd\n", out)
	assert.Equal(t, "mongodb://db.test:27017", cfg.DocDB.URI)
	store.AssertExpectations(t)
}

func TestInsertCommand_InvalidJSON(t *testing.T) {
	store := mocks.NewMockStore()

	_, _, err := run(t, store, "insert", "test_db", "people", `{"name": `)

	assert.ErrorContains(t, err, "invalid document")
	store.AssertNotCalled(t, "InsertDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInsertCommand_WrongArgCount(t *testing.T) {
	_, _, err := run(t, mocks.NewMockStore(), "insert", "test_db")

	assert.Error(t, err)
}

func TestGetCommand(t *testing.T) {
	store := mocks.NewMockStore()
	stored := models.Document{models.IDField: models.Int(7), "name": models.String("Bob")}
	store.On("GetDocument", mock.Anything, "test_db", "people", "7").Return(stored, nil)
	store.On("Close", mock.Anything).Return(nil)

	out, _, err := run(t, store, "get", "test_db", "people", "7")

	require.NoError(t, err)
	var decoded models.Document
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.True(t, stored.Equal(decoded), "got %s", out)
}

func TestGetCommand_NotFound(t *testing.T) {
	store := mocks.NewMockStore()
	store.On("GetDocument", mock.Anything, "test_db", "people", "nope").
		Return(nil, domainerrors.NewNotFoundError("document", "nope"))
	store.On("Close", mock.Anything).Return(nil)

	_, _, err := run(t, store, "get", "test_db", "people", "nope")

	assert.True(t, domainerrors.IsNotFound(err))
	store.AssertCalled(t, "Close", mock.Anything)
}

func TestDistinctCommand(t *testing.T) {
	store := mocks.NewMockStore()
	store.On("ListUniqueValues", mock.Anything, "test_db", "people", "name").
		Return([]models.Value{models.String("Alice"), models.String("Bob")}, nil)
	store.On("Close", mock.Anything).Return(nil)

	out, _, err := run(t, store, "distinct", "test_db", "people", "name")

	require.NoError(t, err)
	assert.JSONEq(t, `["Alice", "Bob"]`, out)
}

func TestDistinctCommand_Empty(t *testing.T) {
	store := mocks.NewMockStore()
	store.On("ListUniqueValues", mock.Anything, "test_db", "empty", "name").Return([]models.Value{}, nil)
	store.On("Close", mock.Anything).Return(nil)

	out, _, err := run(t, store, "distinct", "test_db", "empty", "name")

	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestCollectionsCommand(t *testing.T) {
	store := mocks.NewMockStore()
	store.On("ListCollections", mock.Anything, "test_db").Return([]string{"people", "orders"}, nil)
	store.On("Close", mock.Anything).Return(nil)

	out, _, err := run(t, store, "collections", "--type", "ferretdb", "test_db")

	require.NoError(t, err)
	assert.Equal(t, "people\norders\n", out)
}

func TestFactoryErrorIsReturned(t *testing.T) {
	root := cli.NewRootCommand(func(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (docstore.Store, error) {
		return nil, domainerrors.NewConnectionConfigError(assert.AnError)
	})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"distinct", "test_db", "people", "name"})

	err := root.ExecuteContext(context.Background())

	assert.True(t, domainerrors.IsConnectionConfigError(err))
}
