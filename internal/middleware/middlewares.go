package middleware

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/rajharit77/rental-catalog/internal/server"
)

// Middlewares is a lightweight container that groups all middleware
// components used by the HTTP server, so shared dependencies are wired in
// one place and router setup stays clean.
type Middlewares struct {
	// Global holds common middleware used across the whole API:
	// CORS, request logging, recovery, secure headers, and the global
	// error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger
	// (request_id, method, path, ip, trace metadata).
	ContextEnhancer *ContextEnhancer

	// Tracing provides New Relic middleware and helpers to attach custom
	// attributes and notice errors on transactions.
	Tracing *TracingMiddleware

	// RateLimit enforces per-client request rates and records limit hits.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components using the application
// container. When New Relic is not configured, nrApp is nil and the tracing
// middleware degrades into a no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
