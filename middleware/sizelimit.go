package middleware

import (
	"net/http"

	"github.com/rpkak/webtools/httperr"
)

// SizeLimitOption configures the size limit middleware.
type SizeLimitOption func(*sizeLimitConfig)

type sizeLimitConfig struct {
	renderer httperr.Renderer
	logger   Logger
}

// WithSizeLimitRenderer sets the renderer for 413 responses.
func WithSizeLimitRenderer(r httperr.Renderer) SizeLimitOption {
	return func(c *sizeLimitConfig) {
		c.renderer = r
	}
}

// WithSizeLimitLogger sets the logger for size limit events.
func WithSizeLimitLogger(l Logger) SizeLimitOption {
	return func(c *sizeLimitConfig) {
		c.logger = l
	}
}

// SizeLimit returns middleware that rejects requests whose body exceeds
// maxBytes with a 413. The declared Content-Length is checked up front and
// the body reader is capped, so a request lying about its length fails once
// the cap is crossed.
func SizeLimit(maxBytes int64, opts ...SizeLimitOption) Middleware {
	cfg := &sizeLimitConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				if cfg.logger != nil {
					cfg.logger.Warn("request size limit exceeded",
						F("path", r.URL.Path),
						F("size", r.ContentLength),
						F("max", maxBytes),
					)
				}
				httperr.Respond(w, httperr.NewPayloadTooLarge("Body exceeds the allowed size"), cfg.renderer)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// Common size limit presets.
const (
	// KB is 1024 bytes.
	KB = 1024
	// MB is 1024 * 1024 bytes.
	MB = 1024 * 1024
)
