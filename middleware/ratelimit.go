package middleware

import (
	"net/http"
	"time"

	"github.com/felixgeelhaar/fortify/ratelimit"

	"github.com/rpkak/webtools/httperr"
)

// RateLimitOption configures the rate limiter.
type RateLimitOption func(*rateLimitConfig)

type rateLimitConfig struct {
	keyFunc  func(*http.Request) string
	renderer httperr.Renderer
	logger   Logger
}

// WithRateLimitKeyFunc sets a function to extract a rate limit key from
// requests. This allows per-client or per-path rate limiting.
func WithRateLimitKeyFunc(fn func(*http.Request) string) RateLimitOption {
	return func(c *rateLimitConfig) {
		c.keyFunc = fn
	}
}

// WithRateLimitRenderer sets the renderer for 429 responses.
func WithRateLimitRenderer(r httperr.Renderer) RateLimitOption {
	return func(c *rateLimitConfig) {
		c.renderer = r
	}
}

// WithRateLimitLogger sets the logger for rate limit events.
func WithRateLimitLogger(l Logger) RateLimitOption {
	return func(c *rateLimitConfig) {
		c.logger = l
	}
}

// RateLimit returns middleware that limits request rate using a token bucket
// algorithm. The rate is specified as requests per second; burst allows short
// bursts above it. Requests over the limit receive a 429.
func RateLimit(rate int, burst int, opts ...RateLimitOption) Middleware {
	cfg := &rateLimitConfig{
		keyFunc: func(_ *http.Request) string { return "global" }, // Global by default
	}
	for _, opt := range opts {
		opt(cfg)
	}

	limiter := ratelimit.New(&ratelimit.Config{
		Rate:     rate,
		Burst:    burst,
		Interval: time.Second,
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := cfg.keyFunc(r)

			if !limiter.Allow(r.Context(), key) {
				if cfg.logger != nil {
					cfg.logger.Warn("rate limit exceeded",
						F("path", r.URL.Path),
						F("key", key),
					)
				}
				httperr.Respond(w, httperr.NewTooManyRequests("Rate limit exceeded"), cfg.renderer)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByPath returns rate limiting middleware that applies per-path limits.
func RateLimitByPath(rate int, burst int, opts ...RateLimitOption) Middleware {
	allOpts := append([]RateLimitOption{
		WithRateLimitKeyFunc(func(r *http.Request) string {
			return r.URL.Path
		}),
	}, opts...)
	return RateLimit(rate, burst, allOpts...)
}

// RateLimitByClient returns rate limiting middleware that applies per-client
// limits. The clientIDFunc should extract a unique client identifier from the
// request, such as an API key or the remote address.
func RateLimitByClient(rate int, burst int, clientIDFunc func(*http.Request) string, opts ...RateLimitOption) Middleware {
	allOpts := append([]RateLimitOption{
		WithRateLimitKeyFunc(clientIDFunc),
	}, opts...)
	return RateLimit(rate, burst, allOpts...)
}
