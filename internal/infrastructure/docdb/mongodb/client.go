// Package mongodb provides MongoDB client implementation.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/unifiedui/docstore-service/internal/core/docdb"
	domainerrors "github.com/unifiedui/docstore-service/internal/domain/errors"
)

// Client implements the docdb.Client interface for MongoDB.
type Client struct {
	client *mongo.Client
}

// ClientConfig holds MongoDB connection configuration.
type ClientConfig struct {
	URI                    string
	AppName                string
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	Monitor                *event.CommandMonitor
}

// NewClient creates a new MongoDB client.
//
// Only the connection string is checked here. The driver dials lazily, so an
// unreachable server is reported by the first operation, not by NewClient.
func NewClient(ctx context.Context, config *ClientConfig) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	clientOpts := options.Client().ApplyURI(config.URI)
	if config.AppName != "" {
		clientOpts.SetAppName(config.AppName)
	}
	if config.ConnectTimeout > 0 {
		clientOpts.SetConnectTimeout(config.ConnectTimeout)
	}
	if config.ServerSelectionTimeout > 0 {
		clientOpts.SetServerSelectionTimeout(config.ServerSelectionTimeout)
	}
	if config.Monitor != nil {
		clientOpts.SetMonitor(config.Monitor)
	}

	if err := clientOpts.Validate(); err != nil {
		return nil, domainerrors.NewConnectionConfigError(err)
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, domainerrors.NewConnectionError("connect", err)
	}

	return &Client{client: client}, nil
}

// WrapClient adapts an already connected driver client.
func WrapClient(client *mongo.Client) *Client {
	return &Client{client: client}
}

// Database returns a handle to the named database.
func (c *Client) Database(name string) docdb.Database {
	return NewDatabase(c.client.Database(name))
}

// Ping verifies the connection to MongoDB.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return domainerrors.NewConnectionError("ping", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (c *Client) Close(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}
	return nil
}
