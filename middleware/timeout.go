package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout returns middleware that attaches a deadline to the request
// context. Handlers and downstream clients observing the context stop work
// once the duration elapses; the surrounding server remains responsible for
// closing the connection.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
