// Package cli implements the docstore command line client.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/unifiedui/docstore-service/internal/bootstrap"
	"github.com/unifiedui/docstore-service/internal/config"
	"github.com/unifiedui/docstore-service/internal/domain/models"
	"github.com/unifiedui/docstore-service/internal/pkg/logging"
	"github.com/unifiedui/docstore-service/internal/services/docstore"
)

// StoreFactory opens the document store for one command invocation.
type StoreFactory func(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (docstore.Store, error)

type options struct {
	uri      string
	docDB    string
	logLevel string

	cfg    *config.Config
	logger zerolog.Logger
}

// NewRootCommand builds the docstore command tree. A nil factory uses bootstrap.NewStore.
func NewRootCommand(factory StoreFactory) *cobra.Command {
	if factory == nil {
		factory = bootstrap.NewStore
	}
	opts := &options{}

	root := &cobra.Command{
		Use:           "docstore",
		Short:         "docstore inserts documents and lists distinct field values in a MongoDB-compatible database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if opts.uri != "" {
				cfg.DocDB.URI = opts.uri
			}
			if opts.docDB != "" {
				cfg.DocDB.Type = opts.docDB
			}
			if opts.logLevel != "" {
				cfg.Log.Level = opts.logLevel
			}
			// Logs go to stderr so stdout stays parseable.
			cfg.Log.Format = "console"

			opts.cfg = cfg
			opts.logger = logging.Setup(cfg.Log, cmd.ErrOrStderr())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.uri, "uri", "", "connection string (default $MONGODB_URI)")
	root.PersistentFlags().StringVar(&opts.docDB, "type", "", "database type: mongodb, cosmosdb or ferretdb (default $DOCDB_TYPE)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level")

	root.AddCommand(
		newInsertCommand(opts, factory),
		newGetCommand(opts, factory),
		newDistinctCommand(opts, factory),
		newCollectionsCommand(opts, factory),
	)

	return root
}

func newInsertCommand(opts *options, factory StoreFactory) *cobra.Command {
	return &cobra.Command{
		Use:     "insert <database> <collection> <json>",
		Short:   "Insert a JSON document and print its identifier",
		Example: `docstore insert test_db people '{"name": "Alice", "age": 30}'`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var document models.Document
			if err := json.Unmarshal([]byte(args[2]), &document); err != nil {
				return fmt.Errorf("invalid document: %w", err)
			}
			if document == nil {
				return fmt.Errorf("invalid document: must be a JSON object")
			}

			return withStore(cmd, opts, factory, func(ctx context.Context, store docstore.Store) error {
				id, err := store.InsertDocument(ctx, args[0], args[1], document)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), id)
				return err
			})
		},
	}
}

func newGetCommand(opts *options, factory StoreFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "get <database> <collection> <id>",
		Short: "Print the document with the given identifier",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, factory, func(ctx context.Context, store docstore.Store) error {
				document, err := store.GetDocument(ctx, args[0], args[1], args[2])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), document)
			})
		},
	}
}

func newDistinctCommand(opts *options, factory StoreFactory) *cobra.Command {
	return &cobra.Command{
		Use:     "distinct <database> <collection> <field>",
		Short:   "Print the distinct values of a field as a JSON array",
		Example: "docstore distinct test_db people name",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, factory, func(ctx context.Context, store docstore.Store) error {
				values, err := store.ListUniqueValues(ctx, args[0], args[1], args[2])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), values)
			})
		},
	}
}

func newCollectionsCommand(opts *options, factory StoreFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "collections <database>",
		Short: "List the collections of a database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, factory, func(ctx context.Context, store docstore.Store) error {
				names, err := store.ListCollections(ctx, args[0])
				if err != nil {
					return err
				}
				for _, name := range names {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

// withStore opens the store, runs fn and closes the store.
func withStore(cmd *cobra.Command, opts *options, factory StoreFactory, fn func(context.Context, docstore.Store) error) error {
	ctx := cmd.Context()

	store, err := factory(ctx, opts.cfg, opts.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(ctx); err != nil {
			opts.logger.Warn().Err(err).Msg("failed to close document store")
		}
	}()

	return fn(ctx, store)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Execute runs the docstore command line client and exits non-zero on failure.
func Execute() {
	root := NewRootCommand(nil)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}
