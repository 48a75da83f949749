package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/rajharit77/rental-catalog/internal/config"
)

// LoggerService owns the New Relic application instance.
//
// It exists so the rest of the codebase can ask one question —
// GetApplication() — and get either a usable *newrelic.Application or nil.
// A nil application means "telemetry off": every caller is expected to
// nil-check before recording events or creating transactions.
type LoggerService struct {
	app *newrelic.Application
}

// NewLoggerService initializes the New Relic agent from config.
//
// When the license key is empty the service is still returned, but with a
// nil application, so wiring stays uniform whether or not telemetry is
// configured. Agent creation errors are real errors (bad key format, etc.)
// and are returned to the caller.
func NewLoggerService(cfg *config.Config) (*LoggerService, error) {
	obs := cfg.Observability

	if obs.NewRelic.LicenseKey == "" {
		return &LoggerService{}, nil
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(obs.ServiceName),
		newrelic.ConfigLicense(obs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(obs.NewRelic.DistributedTracingEnabled),
		newrelic.ConfigAppLogForwardingEnabled(obs.NewRelic.AppLogForwardingEnabled),
	}
	if obs.NewRelic.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(os.Stdout))
	}

	app, err := newrelic.NewApplication(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize new relic: %w", err)
	}

	return &LoggerService{app: app}, nil
}

// GetApplication returns the New Relic application, or nil when telemetry
// is not configured.
func (s *LoggerService) GetApplication() *newrelic.Application {
	return s.app
}

// Shutdown flushes pending telemetry and stops the agent.
// Safe to call when the application is nil.
func (s *LoggerService) Shutdown(timeout time.Duration) {
	if s.app != nil {
		s.app.Shutdown(timeout)
	}
}
