// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/rajharit77/rental-catalog/internal/handler"
	"github.com/rajharit77/rental-catalog/internal/middleware"
)

// New builds the Echo instance with the full middleware chain and all
// routes registered. The result is handed to server.SetupHTTPServer as a
// plain http.Handler.
//
// Middleware order matters:
//   - Recover first, so panics anywhere below become 500s.
//   - RequestID before the context enhancer, which reads it.
//   - The New Relic middleware before the context enhancer, so the
//     request logger can pick up trace ids.
func New(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Every error funnels through here, including raw database errors.
	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(m.Global.Recover())
	e.Use(m.Global.Secure())
	e.Use(m.Global.CORS())
	e.Use(middleware.RequestID())
	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.Global.RequestLogger())
	e.Use(m.RateLimit.Limit())

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, h)

	return e
}
