// Package testutil provides helpers for testing HTTP handlers built with
// this module.
//
// Example usage:
//
//	func TestCreate(t *testing.T) {
//	    req := testutil.JSONRequest(t, http.MethodPost, "/create", map[string]any{"id": 5})
//	    res := testutil.Do(handler, req)
//	    require.Equal(t, http.StatusOK, res.Code)
//	}
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// Request builds a test request with an optional plain text body and
// Content-Type header. An empty contentType leaves the header unset.
func Request(method, target, contentType, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

// JSONRequest builds a test request whose body is v encoded as JSON, with
// the Content-Type header set to application/json.
func JSONRequest(t testing.TB, method, target string, v any) *http.Request {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("encoding request body: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// Do serves req against handler and returns the recorded response.
func Do(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// DecodeJSON decodes the recorded response body into a generic value,
// failing the test if the body is not valid JSON.
func DecodeJSON(t testing.TB, rec *httptest.ResponseRecorder) any {
	t.Helper()

	var v any
	dec := json.NewDecoder(rec.Body)
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	return v
}
