package body

import (
	"bytes"
	"encoding/xml"
	"io"
	"net/http"

	"github.com/rpkak/webtools/httperr"
	"github.com/rpkak/webtools/routing"
)

// XML returns middleware that reads an XML request body and verifies it is
// well formed before the wrapped handler runs.
//
// The status taxonomy mirrors JSON: 400 without a Content-Type, 415 without
// the xml subtype token, 422 for malformed XML. The raw bytes are stored in
// the request context (RawContent); handlers decode them into their own
// types with encoding/xml.
func XML(opts ...Option) func(http.Handler) http.Handler {
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
			if !routing.HasSubtypeToken(contentType, "xml") {
				httperr.Respond(w, httperr.NewUnsupportedMediaType("Only xml content is allowed."), cfg.renderer)
				return
			}

			raw, e := readDeclared(r, cfg.maxBytes)
			if e != nil {
				httperr.Respond(w, e, cfg.renderer)
				return
			}

			if !wellFormed(raw) {
				httperr.Respond(w, httperr.NewUnprocessableEntity("Invalid XML"), cfg.renderer)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithRawContent(r.Context(), raw)))
		})
	}
}

// wellFormed scans the document once to confirm it parses.
func wellFormed(raw []byte) bool {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	sawElement := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return sawElement
		}
		if err != nil {
			return false
		}
		if _, ok := tok.(xml.StartElement); ok {
			sawElement = true
		}
	}
}
