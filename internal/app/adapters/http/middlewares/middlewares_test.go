package middlewares

import (
	"bytes"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"wordscan/pkg/logger"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", append(handlers, func(c *gin.Context) { c.Status(http.StatusOK) })...)
	return r
}

func do(r http.Handler, header string) int {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestAuth(t *testing.T) {
	m := New(logger.New(logger.Options{Stdout: &bytes.Buffer{}}))

	tests := []struct {
		name     string
		expected string
		header   string
		code     int
	}{
		{name: "valid", expected: "secret", header: "Bearer secret", code: http.StatusOK},
		{name: "wrong token", expected: "secret", header: "Bearer nope", code: http.StatusUnauthorized},
		{name: "no scheme", expected: "secret", header: "secret", code: http.StatusUnauthorized},
		{name: "missing", expected: "secret", code: http.StatusUnauthorized},
		{name: "open", expected: "", code: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, do(newEngine(m.Auth(tt.expected)), tt.header))
		})
	}
}

func TestRateLimit(t *testing.T) {
	m := New(logger.New(logger.Options{Stdout: &bytes.Buffer{}}))
	r := newEngine(m.RateLimit(2, time.Hour))

	assert.Equal(t, http.StatusOK, do(r, ""))
	assert.Equal(t, http.StatusOK, do(r, ""))
	assert.Equal(t, http.StatusTooManyRequests, do(r, ""))
}

func TestLimitFor(t *testing.T) {
	tests := []struct {
		name     string
		requests int
		per      time.Duration
		expected rate.Limit
	}{
		{name: "per second", requests: 20, per: time.Second, expected: 20},
		{name: "per minute", requests: 3, per: time.Minute, expected: 0.05},
		{name: "window shorter than requests in ns", requests: 3, per: 2 * time.Nanosecond, expected: 1.5e9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := limitFor(tt.requests, tt.per)
			assert.NotEqual(t, rate.Inf, got)
			assert.InDelta(t, float64(tt.expected), float64(got), 1e-9*float64(tt.expected))
		})
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	m := New(logger.New(logger.Options{Stdout: &bytes.Buffer{}}))
	r := newEngine(m.RateLimit(0, 0))

	for range 10 {
		assert.Equal(t, http.StatusOK, do(r, ""))
	}
}
