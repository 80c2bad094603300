package middleware

import (
	"fmt"
	"net/http"

	"github.com/rpkak/webtools/httperr"
)

// RecoverOption configures the Recover middleware.
type RecoverOption func(*recoverConfig)

type recoverConfig struct {
	renderer httperr.Renderer
	logger   Logger
}

// WithRecoverRenderer sets the renderer for recovered errors.
func WithRecoverRenderer(r httperr.Renderer) RecoverOption {
	return func(c *recoverConfig) {
		c.renderer = r
	}
}

// WithRecoverLogger sets the logger for recovered panics.
func WithRecoverLogger(l Logger) RecoverOption {
	return func(c *recoverConfig) {
		c.logger = l
	}
}

// Recover returns middleware that catches panics from the wrapped handler
// and renders them as error responses. A panic with an *httperr.Error value
// renders that error as-is, so deeply nested handler code may abort with a
// specific status; any other panic value becomes a 500 whose details are
// logged but never sent to the client.
func Recover(opts ...RecoverOption) Middleware {
	cfg := &recoverConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				e, ok := rec.(*httperr.Error)
				if !ok {
					if cfg.logger != nil {
						cfg.logger.Error("panic recovered",
							F("method", r.Method),
							F("path", r.URL.Path),
							F("panic", fmt.Sprintf("%v", rec)),
						)
					}
					e = httperr.NewInternal(httperr.InternalMessage)
				}
				httperr.Respond(w, e, cfg.renderer)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
