// Package logger builds the application's structured loggers.
//
// It owns:
//   - the main zerolog logger (level/format driven by config)
//   - the New Relic application lifecycle (LoggerService)
//   - helpers that adapt zerolog for the pgx query tracer
//   - trace-context enrichment (trace.id / span.id on request loggers)
package logger

import (
	"io"
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/rajharit77/rental-catalog/internal/config"
)

// New constructs the main application logger from observability config.
//
// Behavior:
//   - Level comes from ObservabilityConfig.GetLogLevel() (env-aware default).
//   - Format "console" gives human-readable output for local dev; anything
//     else produces JSON for log pipelines.
//   - If the LoggerService carries a New Relic app and log forwarding is
//     enabled, output is routed through zerologWriter so logs are decorated
//     with linking metadata and forwarded by the agent.
//
// Error().Stack() works on the returned logger because the pkgerrors stack
// marshaler is installed here.
func New(cfg *config.Config, svc *LoggerService) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level, err := zerolog.ParseLevel(cfg.Observability.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if cfg.Observability.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	if svc != nil && svc.GetApplication() != nil && cfg.Observability.NewRelic.AppLogForwardingEnabled {
		// zerologWriter decorates each log line with New Relic linking
		// metadata and hands it to the agent for forwarding.
		out = zerologWriter.New(out, svc.GetApplication())
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()
}
