package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// captureLogger records log entries for assertions.
type captureLogger struct {
	infos  []capturedEntry
	errors []capturedEntry
}

type capturedEntry struct {
	msg    string
	fields []Field
}

func (l *captureLogger) Info(msg string, fields ...Field) {
	l.infos = append(l.infos, capturedEntry{msg: msg, fields: fields})
}

func (l *captureLogger) Error(msg string, fields ...Field) {
	l.errors = append(l.errors, capturedEntry{msg: msg, fields: fields})
}

func (l *captureLogger) Debug(msg string, fields ...Field) {}
func (l *captureLogger) Warn(msg string, fields ...Field)  {}

func fieldValue(fields []Field, key string) any {
	for _, f := range fields {
		if f.Key == key {
			return f.Value
		}
	}
	return nil
}

func TestLogging(t *testing.T) {
	t.Run("logs completed requests at info level", func(t *testing.T) {
		logger := &captureLogger{}
		handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte("ok"))
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/create", nil))

		require.Len(t, logger.infos, 1)
		entry := logger.infos[0]
		assert.Equal(t, "request completed", entry.msg)
		assert.Equal(t, "POST", fieldValue(entry.fields, "method"))
		assert.Equal(t, "/create", fieldValue(entry.fields, "path"))
		assert.Equal(t, http.StatusCreated, fieldValue(entry.fields, "status"))
		assert.Equal(t, 2, fieldValue(entry.fields, "size"))
	})

	t.Run("logs server errors at error level", func(t *testing.T) {
		logger := &captureLogger{}
		handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Empty(t, logger.infos)
		require.Len(t, logger.errors, 1)
		assert.Equal(t, "request failed", logger.errors[0].msg)
	})

	t.Run("includes the request id when present", func(t *testing.T) {
		logger := &captureLogger{}
		handler := Chain(
			RequestIDWithGenerator(func() string { return "fixed-id" }),
			Logging(logger),
		)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		require.Len(t, logger.infos, 1)
		assert.Equal(t, "fixed-id", fieldValue(logger.infos[0].fields, "request_id"))
	})

	t.Run("a silent handler logs 200", func(t *testing.T) {
		logger := &captureLogger{}
		handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		require.Len(t, logger.infos, 1)
		assert.Equal(t, http.StatusOK, fieldValue(logger.infos[0].fields, "status"))
	})
}

func TestZapLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := NewZapLogger(zap.New(core))

	handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/index", nil))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "request completed", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/index", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
}
