package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"

	domainerrors "github.com/unifiedui/docstore-service/internal/domain/errors"
)

// isConnectionFailure reports errors raised before or instead of a server reply.
func isConnectionFailure(err error) bool {
	return mongo.IsNetworkError(err) ||
		errors.Is(err, topology.ErrServerSelectionTimeout) ||
		errors.Is(err, topology.ErrTopologyClosed) ||
		errors.Is(err, mongo.ErrClientDisconnected) ||
		errors.Is(err, context.DeadlineExceeded)
}

func isServerError(err error) bool {
	var serverErr mongo.ServerError
	return errors.As(err, &serverErr)
}

// classifyWriteError maps a driver write failure onto the domain taxonomy.
// The driver error stays reachable through errors.As/errors.Is.
func classifyWriteError(operation string, err error) error {
	switch {
	case isConnectionFailure(err):
		return domainerrors.NewConnectionError(operation, err)
	case isServerError(err):
		return domainerrors.NewWriteError(operation, err)
	case mongo.IsTimeout(err):
		return domainerrors.NewConnectionError(operation, err)
	default:
		return fmt.Errorf("failed to %s document: %w", operation, err)
	}
}

// classifyQueryError maps a driver read failure onto the domain taxonomy.
func classifyQueryError(operation string, err error) error {
	switch {
	case isConnectionFailure(err):
		return domainerrors.NewConnectionError(operation, err)
	case isServerError(err):
		return domainerrors.NewQueryError(operation, err)
	case mongo.IsTimeout(err):
		return domainerrors.NewConnectionError(operation, err)
	default:
		return fmt.Errorf("failed to %s: %w", operation, err)
	}
}
