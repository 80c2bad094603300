package routing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(method, path, contentType string) *http.Request {
	r := httptest.NewRequest(method, "http://example.com"+path, nil)
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	return r
}

func TestPathRule(t *testing.T) {
	pattern := MustPattern("/id/", Int, "/options")

	t.Run("matches and captures", func(t *testing.T) {
		r := newRequest(http.MethodGet, "/id/7/options", "")
		assert.True(t, Path.Check(r, pattern))

		args, ok := Path.(Capturer).Capture(r, pattern)
		require.True(t, ok)
		assert.Equal(t, []any{7}, args)
	})

	t.Run("mismatch", func(t *testing.T) {
		r := newRequest(http.MethodGet, "/id/x/options", "")
		assert.False(t, Path.Check(r, pattern))
	})

	t.Run("raises 404", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, Path.Err(pattern).Code)
	})
}

func TestMethodRule(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		r := newRequest(http.MethodGet, "/", "")
		assert.True(t, Method.Check(r, "GET"))
	})

	t.Run("case sensitive", func(t *testing.T) {
		r := newRequest(http.MethodGet, "/", "")
		assert.False(t, Method.Check(r, "get"))
	})

	t.Run("raises 405", func(t *testing.T) {
		assert.Equal(t, http.StatusMethodNotAllowed, Method.Err("GET").Code)
	})
}

func TestContentTypeRule(t *testing.T) {
	tests := []struct {
		name        string
		expected    any
		contentType string
		want        bool
	}{
		{"nil requires absent header", nil, "", true},
		{"nil rejects present header", nil, "application/json", false},
		{"concrete value rejects absent header", "json", "", false},
		{"token matches plain subtype", "json", "application/json", true},
		{"token matches structured suffix", "json", "application/vnd.api+json", true},
		{"token rejects other subtype", "json", "application/xml", false},
		{"token rejects type component", "application", "application/json", false},
		{"exact value matches", "application/json", "application/json", true},
		{"exact value rejects parameters", "application/json", "application/json; charset=utf-8", false},
		{"exact value rejects other type", "application/json", "text/json", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRequest(http.MethodPost, "/", tt.contentType)
			assert.Equal(t, tt.want, ContentType.Check(r, tt.expected))
		})
	}

	t.Run("raises 415", func(t *testing.T) {
		assert.Equal(t, http.StatusUnsupportedMediaType, ContentType.Err("json").Code)
	})
}

func TestHasSubtypeToken(t *testing.T) {
	assert.True(t, HasSubtypeToken("hello/foo+json+bar", "json"))
	assert.False(t, HasSubtypeToken("application", "application"))
	assert.False(t, HasSubtypeToken("application/foo", "fo"))
}
