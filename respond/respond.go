// Package respond provides small helpers for writing common HTTP responses.
package respond

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as a JSON response body with the given status code.
// Encoding failures after the header has been written cannot be reported
// to the client; the error is returned for logging.
func JSON(w http.ResponseWriter, code int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(v)
}

// Text writes s as a plain text response body with the given status code.
func Text(w http.ResponseWriter, code int, s string) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, err := w.Write([]byte(s))
	return err
}

// HTML writes s as an HTML response body with the given status code.
// The caller is responsible for escaping.
func HTML(w http.ResponseWriter, code int, s string) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, err := w.Write([]byte(s))
	return err
}

// NoContent writes a 204 response with no body.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Redirect writes a redirect to url with the given 3xx status code.
func Redirect(w http.ResponseWriter, r *http.Request, url string, code int) {
	http.Redirect(w, r, url, code)
}
