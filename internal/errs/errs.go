// Package errs defines the application's error vocabulary.
//
// Domain services and handlers return *HTTPError values carrying a stable
// machine-readable code, a human-readable message, and the HTTP status the
// global error handler should respond with. Anything else reaching the error
// funnel is treated as an unexpected failure and converted by the sqlerr
// package or collapsed into a generic 500.
package errs
