package logger

import (
	"os"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// NewPgxLogger builds the logger handed to the pgx tracelog adapter.
//
// SQL logging is only enabled in the local environment, so this always uses
// the console writer; queries and arguments are far easier to read that way.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel maps a zerolog level onto the pgx tracelog scale.
//
// tracelog levels invert zerolog's ordering (Trace is the most verbose),
// so the mapping is explicit rather than arithmetic.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}

// WithTraceContext returns a child logger carrying the transaction's
// trace.id and span.id, so log lines can be correlated with distributed
// traces in the APM UI.
func WithTraceContext(log zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return log
	}

	md := txn.GetTraceMetadata()
	ctx := log.With()
	if md.TraceID != "" {
		ctx = ctx.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		ctx = ctx.Str("span.id", md.SpanID)
	}
	return ctx.Logger()
}
