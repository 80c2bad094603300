// Package middleware provides request/response middleware for net/http
// servers.
//
// Middleware follows the standard pattern where each middleware wraps the
// next handler in the chain, allowing pre- and post-processing of requests.
//
// # Basic Usage
//
// Create and compose middleware:
//
//	chain := middleware.Chain(
//	    middleware.Recover(),
//	    middleware.RequestID(),
//	    middleware.Logging(logger),
//	)
//	handler := chain(baseHandler)
//
// # Available Middleware
//
// The package provides several built-in middleware:
//
//   - Recover: Catches panics and renders them as error responses
//   - RequestID: Injects unique request IDs into context and response
//   - BasicAuth: HTTP Basic authentication with the user in context
//   - Timeout: Attaches request deadlines to the context
//   - SizeLimit: Rejects oversized request bodies
//   - RateLimit: Token-bucket rate limiting
//   - CORS: Cross-origin resource sharing headers
//   - Logging: Access logs with request details and timing
//   - OTel: OpenTelemetry spans and metrics per request
//
// Failure responses (401, 413, 429, 500) are rendered through an
// httperr.Renderer, configurable per middleware; the default is compact JSON.
//
// # Default Stacks
//
// Pre-configured middleware stacks are available for common use cases:
//
//	// Recover + RequestID + Logging
//	stack := middleware.DefaultStack(logger)
//
//	// Recover + RequestID + Timeout + Logging
//	stack := middleware.DefaultStackWithTimeout(logger, 30*time.Second)
//
// # Custom Middleware
//
// Implement custom middleware using the Middleware type:
//
//	func NoCache() middleware.Middleware {
//	    return func(next http.Handler) http.Handler {
//	        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	            w.Header().Set("Cache-Control", "no-store")
//	            next.ServeHTTP(w, r)
//	        })
//	    }
//	}
package middleware
