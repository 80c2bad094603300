// Package webtools provides building blocks for plain net/http services:
// a rule-based router, composable JSON shape filters, body-parsing
// middleware, and an HTTP error taxonomy with pluggable rendering.
//
// Basic usage:
//
//	router := webtools.NewRouter([]webtools.Rule{webtools.Path, webtools.Method})
//
//	router.MustRouteFunc(func(w http.ResponseWriter, r *http.Request) {
//	    id := routing.PathArgs(r.Context())[0].(int)
//	    respond.JSON(w, http.StatusOK, map[string]any{"id": id})
//	}, routing.MustPattern("/article/", routing.Int), http.MethodGet)
//
//	logger := middleware.NewZapLogger(zap.Must(zap.NewProduction()))
//	handler := webtools.Chain(webtools.DefaultMiddleware(logger)...)(router)
//	http.ListenAndServe(":8080", handler)
package webtools

import (
	"context"
	"net/http"
	"time"

	"github.com/rpkak/webtools/body"
	"github.com/rpkak/webtools/filter"
	"github.com/rpkak/webtools/httperr"
	"github.com/rpkak/webtools/middleware"
	"github.com/rpkak/webtools/routing"
)

// Version is the module version.
const Version = "0.1.0"

// Re-export core types for convenience

// Error is an HTTP error with a status code, message, and extra headers.
type Error = httperr.Error

// Renderer writes an Error as a response body.
type Renderer = httperr.Renderer

// JSONRenderer renders errors as JSON bodies.
type JSONRenderer = httperr.JSONRenderer

// HTMLRenderer renders errors as minimal HTML pages.
type HTMLRenderer = httperr.HTMLRenderer

// Router dispatches requests across a fixed chain of rules.
type Router = routing.Router

// Rule is one dimension of the routing decision.
type Rule = routing.Rule

// Pattern matches URL paths with typed captures.
type Pattern = routing.Pattern

// Converter parses one captured path section.
type Converter = routing.Converter

// Filter validates the shape of a decoded JSON value.
type Filter = filter.Filter

// Middleware wraps an http.Handler with additional behavior.
type Middleware = middleware.Middleware

// Logger is the structured logging interface used across the module.
type Logger = middleware.Logger

// LogField is a structured logging key/value pair.
type LogField = middleware.Field

// Predeclared routing rules.
var (
	// Path matches the request path against registered patterns.
	Path = routing.Path
	// Method matches the request method exactly.
	Method = routing.Method
	// ContentType matches the Content-Type header.
	ContentType = routing.ContentType
)

// NewRouter creates a router over the given rule chain.
func NewRouter(rules []Rule, opts ...routing.Option) *Router {
	return routing.NewRouter(rules, opts...)
}

// NewPattern builds a path pattern from string literals and converters.
func NewPattern(parts ...any) (*Pattern, error) {
	return routing.NewPattern(parts...)
}

// MustPattern is NewPattern, panicking on invalid input.
func MustPattern(parts ...any) *Pattern {
	return routing.MustPattern(parts...)
}

// JSONBody returns middleware that reads, decodes, and optionally filters a
// JSON request body before the handler runs.
func JSONBody(opts ...body.Option) Middleware {
	return body.JSON(opts...)
}

// XMLBody returns middleware that reads and well-formedness-checks an XML
// request body before the handler runs.
func XMLBody(opts ...body.Option) Middleware {
	return body.XML(opts...)
}

// Middleware re-exports

// Chain composes multiple middleware into a single middleware.
func Chain(middlewares ...Middleware) Middleware {
	return middleware.Chain(middlewares...)
}

// Recover returns middleware that catches panics and renders them as errors.
func Recover(opts ...middleware.RecoverOption) Middleware {
	return middleware.Recover(opts...)
}

// Timeout returns middleware that attaches a deadline to the request context.
func Timeout(d time.Duration) Middleware {
	return middleware.Timeout(d)
}

// RequestID returns middleware that assigns each request a unique ID.
func RequestID() Middleware {
	return middleware.RequestID()
}

// RequestIDFromContext returns the request ID from the context, or empty
// string if not set.
func RequestIDFromContext(ctx context.Context) string {
	return middleware.RequestIDFromContext(ctx)
}

// Logging returns middleware that writes an access log entry per request.
func Logging(logger Logger) Middleware {
	return middleware.Logging(logger)
}

// BasicAuth returns middleware that enforces HTTP basic authentication.
func BasicAuth(check func(user, password string) bool, opts ...middleware.BasicAuthOption) Middleware {
	return middleware.BasicAuth(check, opts...)
}

// DefaultMiddleware returns the recommended production middleware stack.
func DefaultMiddleware(logger Logger) []Middleware {
	return middleware.DefaultStack(logger)
}

// DefaultMiddlewareWithTimeout returns the default stack with a timeout
// middleware.
func DefaultMiddlewareWithTimeout(logger Logger, timeout time.Duration) []Middleware {
	return middleware.DefaultStackWithTimeout(logger, timeout)
}

// LogF creates a new log field with the given key and value.
func LogF(key string, value any) LogField {
	return middleware.F(key, value)
}

// RespondError writes e as a response using renderer, or JSON by default.
func RespondError(w http.ResponseWriter, e *Error, renderer Renderer) {
	httperr.Respond(w, e, renderer)
}
