package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimit(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("allows requests within the burst", func(t *testing.T) {
		handler := RateLimit(100, 5)(okHandler)

		for i := 0; i < 5; i++ {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("rejects requests over the limit with 429", func(t *testing.T) {
		handler := RateLimit(1, 1)(okHandler)

		first := httptest.NewRecorder()
		handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, first.Code)

		second := httptest.NewRecorder()
		handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
	})

	t.Run("per-client keys are limited independently", func(t *testing.T) {
		handler := RateLimitByClient(1, 1, func(r *http.Request) string {
			return r.Header.Get("X-Api-Key")
		})(okHandler)

		alice := httptest.NewRequest(http.MethodGet, "/", nil)
		alice.Header.Set("X-Api-Key", "alice")
		bob := httptest.NewRequest(http.MethodGet, "/", nil)
		bob.Header.Set("X-Api-Key", "bob")

		aliceRec := httptest.NewRecorder()
		handler.ServeHTTP(aliceRec, alice)
		assert.Equal(t, http.StatusOK, aliceRec.Code)

		// Alice is exhausted, Bob is not.
		aliceAgain := httptest.NewRecorder()
		handler.ServeHTTP(aliceAgain, alice)
		assert.Equal(t, http.StatusTooManyRequests, aliceAgain.Code)

		bobRec := httptest.NewRecorder()
		handler.ServeHTTP(bobRec, bob)
		assert.Equal(t, http.StatusOK, bobRec.Code)
	})

	t.Run("logs rejected requests", func(t *testing.T) {
		logger := &captureWarnLogger{}
		handler := RateLimit(1, 1, WithRateLimitLogger(logger))(okHandler)

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, logger.warns, 1)
	})
}

// captureWarnLogger records warn entries only.
type captureWarnLogger struct {
	warns []string
}

func (l *captureWarnLogger) Info(msg string, fields ...Field)  {}
func (l *captureWarnLogger) Error(msg string, fields ...Field) {}
func (l *captureWarnLogger) Debug(msg string, fields ...Field) {}
func (l *captureWarnLogger) Warn(msg string, fields ...Field) {
	l.warns = append(l.warns, msg)
}
