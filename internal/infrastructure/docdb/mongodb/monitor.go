package mongodb

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
)

// NewCommandMonitor returns a driver command monitor that logs through logger.
// Started and succeeded commands are logged at debug level, failures at warn.
func NewCommandMonitor(logger zerolog.Logger) *event.CommandMonitor {
	logger = logger.With().Str("component", "mongodb").Logger()

	return &event.CommandMonitor{
		Started: func(_ context.Context, e *event.CommandStartedEvent) {
			logger.Debug().
				Str("command", e.CommandName).
				Str("database", e.DatabaseName).
				Int64("request_id", e.RequestID).
				Str("connection_id", e.ConnectionID).
				Msg("command started")
		},
		Succeeded: func(_ context.Context, e *event.CommandSucceededEvent) {
			logger.Debug().
				Str("command", e.CommandName).
				Int64("request_id", e.RequestID).
				Dur("duration", e.Duration).
				Msg("command succeeded")
		},
		Failed: func(_ context.Context, e *event.CommandFailedEvent) {
			logger.Warn().
				Str("command", e.CommandName).
				Int64("request_id", e.RequestID).
				Dur("duration", e.Duration).
				Str("failure", e.Failure).
				Msg("command failed")
		},
	}
}
