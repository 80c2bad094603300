package body

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rpkak/webtools/filter"
	"github.com/rpkak/webtools/httperr"
	"github.com/rpkak/webtools/routing"
)

// Option configures a parser middleware.
type Option func(*config)

type config struct {
	filter   filter.Filter
	renderer httperr.Renderer
	maxBytes int64
}

// WithFilter sets a shape filter for the decoded JSON value. A value the
// filter rejects is a 400 whose message is the filter's located reason.
func WithFilter(f filter.Filter) Option {
	return func(c *config) {
		c.filter = f
	}
}

// WithRenderer sets the renderer for parser errors. The default is compact
// JSON.
func WithRenderer(r httperr.Renderer) Option {
	return func(c *config) {
		c.renderer = r
	}
}

// WithMaxBytes caps the declared body size; larger bodies are rejected with
// a 413 before anything is read. Zero means no cap.
func WithMaxBytes(n int64) Option {
	return func(c *config) {
		c.maxBytes = n
	}
}

// JSON returns middleware that reads and decodes a JSON request body before
// the wrapped handler runs.
//
// A request without a Content-Type is a 400 ("Body required"); one whose
// content-type lacks the json subtype token is a 415; an undecodable body is
// a 422. With WithFilter the decoded value must additionally pass the filter.
// On success the raw bytes and the decoded value are stored in the request
// context (RawContent, Content) and the handler runs.
//
// The body is read exactly once, bounded by the declared Content-Length.
// Numbers decode as json.Number so filters can distinguish ints from floats.
func JSON(opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contentType := r.Header.Get("Content-Type")
			if contentType == "" {
				httperr.Respond(w, httperr.NewBadRequest("Body required"), cfg.renderer)
				return
			}
			if !routing.HasSubtypeToken(contentType, "json") {
				httperr.Respond(w, httperr.NewUnsupportedMediaType("Only json content is allowed."), cfg.renderer)
				return
			}

			raw, e := readDeclared(r, cfg.maxBytes)
			if e != nil {
				httperr.Respond(w, e, cfg.renderer)
				return
			}

			value, e := Decode(raw)
			if e != nil {
				httperr.Respond(w, e, cfg.renderer)
				return
			}

			if cfg.filter != nil {
				if ok, reason := cfg.filter.Check(value); !ok {
					httperr.Respond(w, httperr.NewBadRequest(reason), cfg.renderer)
					return
				}
			}

			ctx := WithContent(WithRawContent(r.Context(), raw), value)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Decode parses raw JSON into the generic value tree filters operate on.
// Numbers stay json.Number; trailing non-whitespace input is an error.
func Decode(raw []byte) (any, *httperr.Error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, httperr.NewUnprocessableEntity("Invalid JSON")
	}
	if dec.More() {
		return nil, httperr.NewUnprocessableEntity("Invalid JSON")
	}
	return value, nil
}

// readDeclared reads up to the request's declared content length, once.
// An unknown length reads as empty, matching the declared-length contract.
func readDeclared(r *http.Request, maxBytes int64) ([]byte, *httperr.Error) {
	length := r.ContentLength
	if length < 0 {
		length = 0
	}
	if maxBytes > 0 && length > maxBytes {
		return nil, httperr.NewPayloadTooLarge("Body exceeds the allowed size")
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, length))
	if err != nil {
		return nil, httperr.NewBadRequest("Body not readable")
	}
	return raw, nil
}
