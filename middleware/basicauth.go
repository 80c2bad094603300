package middleware

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/rpkak/webtools/httperr"
)

// userContextKey is the context key for the authenticated user.
type userContextKey struct{}

// UserFromContext returns the Basic-authenticated user name from the
// context, or the empty string if the request did not pass BasicAuth.
func UserFromContext(ctx context.Context) string {
	user, _ := ctx.Value(userContextKey{}).(string)
	return user
}

// ContextWithUser returns a new context with the user name attached.
func ContextWithUser(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// BasicAuthOption configures the BasicAuth middleware.
type BasicAuthOption func(*basicAuthConfig)

type basicAuthConfig struct {
	realm    string
	renderer httperr.Renderer
	logger   Logger
}

// WithRealm sets the realm announced in the WWW-Authenticate challenge.
func WithRealm(realm string) BasicAuthOption {
	return func(c *basicAuthConfig) {
		c.realm = realm
	}
}

// WithBasicAuthRenderer sets the renderer for authentication errors.
func WithBasicAuthRenderer(r httperr.Renderer) BasicAuthOption {
	return func(c *basicAuthConfig) {
		c.renderer = r
	}
}

// WithBasicAuthLogger sets the logger for rejected attempts.
func WithBasicAuthLogger(l Logger) BasicAuthOption {
	return func(c *basicAuthConfig) {
		c.logger = l
	}
}

// BasicAuth returns middleware enforcing HTTP Basic authentication. The
// check function decides whether a user/password pair is valid; it is the
// caller's bridge to hashing and credential storage.
//
// A request without a Basic Authorization header is challenged with a 401
// carrying WWW-Authenticate. A header that cannot be decoded, or whose
// payload has no colon, is a 400. Wrong credentials are a 401 without a new
// challenge. On success the user name is attached to the request context.
func BasicAuth(check func(user, password string) bool, opts ...BasicAuthOption) Middleware {
	cfg := &basicAuthConfig{realm: "Access to content"}
	for _, opt := range opts {
		opt(cfg)
	}

	challenge := fmt.Sprintf("Basic realm=%q", cfg.realm)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Basic ") {
				e := httperr.NewUnauthorized("Authentication required").
					WithHeader("WWW-Authenticate", challenge)
				httperr.Respond(w, e, cfg.renderer)
				return
			}

			decoded, err := base64.StdEncoding.DecodeString(auth[len("Basic "):])
			if err != nil {
				httperr.Respond(w, httperr.NewBadRequest("Authentication not processable"), cfg.renderer)
				return
			}
			user, password, found := strings.Cut(string(decoded), ":")
			if !found {
				httperr.Respond(w, httperr.NewBadRequest("Authentication not processable"), cfg.renderer)
				return
			}

			if !check(user, password) {
				if cfg.logger != nil {
					cfg.logger.Warn("authentication rejected", F("user", user))
				}
				httperr.Respond(w, httperr.NewUnauthorized("Wrong user or password"), cfg.renderer)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
		})
	}
}
