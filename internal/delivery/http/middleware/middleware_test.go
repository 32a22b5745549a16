package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"candidate-intake/internal/delivery/http/middleware"
	"candidate-intake/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func get(r http.Handler, header, value string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := newEngine(middleware.RequestID())

	t.Run("Should generate an id", func(t *testing.T) {
		w := get(r, "", "")
		assert.Len(t, w.Header().Get(middleware.RequestIDHeader), 36)
	})

	t.Run("Should echo a caller supplied id", func(t *testing.T) {
		w := get(r, middleware.RequestIDHeader, "req-123")
		assert.Equal(t, "req-123", w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestRateLimitInMemory(t *testing.T) {
	r := newEngine(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(2, time.Minute, nil, nil)))

	assert.Equal(t, http.StatusOK, get(r, "", "").Code)
	w := get(r, "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = get(r, "", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimitUsesInjectedLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit := security.NewSecurityLogger(zap.New(core), "candidate-intake", "test")
	r := newEngine(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(1, time.Minute, nil, audit)))

	get(r, "", "")
	assert.Equal(t, http.StatusTooManyRequests, get(r, "", "").Code)

	entries := logs.FilterMessage(string(security.EventRateLimitTriggered)).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "ip", entries[0].ContextMap()["subject_type"])
}

func TestRateLimitCustomRejection(t *testing.T) {
	cfg := middleware.DefaultRateLimitConfig(1, time.Minute, nil, nil)
	cfg.OnLimit = func(c *gin.Context) {
		c.String(http.StatusTeapot, "slow down")
	}
	r := newEngine(middleware.RateLimitMiddleware(cfg))

	get(r, "", "")
	w := get(r, "", "")
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "slow down", w.Body.String())
}

func TestRateLimitKeysAreIndependent(t *testing.T) {
	cfg := middleware.DefaultRateLimitConfig(1, time.Minute, nil, nil)
	cfg.KeyFunc = func(c *gin.Context) string { return c.GetHeader("X-Client") }
	r := newEngine(middleware.RateLimitMiddleware(cfg))

	assert.Equal(t, http.StatusOK, get(r, "X-Client", "a").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "X-Client", "a").Code)
	assert.Equal(t, http.StatusOK, get(r, "X-Client", "b").Code)
}

func TestSecurityHeaders(t *testing.T) {
	w := get(newEngine(middleware.SecurityHeadersMiddleware()), "", "")
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestCORS(t *testing.T) {
	r := newEngine(middleware.CORSMiddleware([]string{"http://localhost:3000"}))

	w := get(r, "Origin", "http://localhost:3000")
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	w = get(r, "Origin", "http://evil.example")
	assert.Equal(t, http.StatusForbidden, w.Code)
}
