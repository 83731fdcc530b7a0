package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/micronlogivdev/iftaway/internal/config"
	"github.com/micronlogivdev/iftaway/internal/middleware"
	"github.com/micronlogivdev/iftaway/internal/store"
)

// allowOnce lets the first request per key through
type allowOnce struct {
	mu   sync.Mutex
	seen map[string]int
}

func (l *allowOnce) Allow(_ context.Context, key string, cfg *middleware.RateLimitConfig) (*middleware.RateLimitResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seen[key]++
	return &middleware.RateLimitResult{
		Allowed:   l.seen[key] == 1,
		Remaining: 0,
		ResetAt:   time.Now().Add(time.Minute).Unix(),
		Limit:     cfg.Limit,
	}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
		RateLimit: config.RateLimitConfig{
			Enabled: true,
			Rules: []config.RateLimitRule{
				{Path: "/api/login", Limit: 1, Window: time.Minute, Algorithm: middleware.FixedWindow},
			},
		},
	}
}

func newTestServer(t *testing.T, limiter middleware.RateLimiter) (*Server, *store.MockStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMockStore(gomock.NewController(t))
	srv := NewServer(testConfig(), st, limiter, nil, nil)
	srv.Setup()
	t.Cleanup(func() { srv.Shutdown(context.Background()) })
	return srv, st
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	w := httptest.NewRecorder()
	srv.GetRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "local", body["events"])
	assert.NotContains(t, body, "nats")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	paths := []string{"/api/me", "/api/entries", "/api/trucks", "/api/reports/ifta", "/api/dashboard", "/ws/entries"}
	for _, path := range paths {
		w := httptest.NewRecorder()
		srv.GetRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	w := httptest.NewRecorder()
	srv.GetRouter().ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/entries", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoginIsRateLimited(t *testing.T) {
	srv, st := newTestServer(t, &allowOnce{seen: map[string]int{}})
	st.EXPECT().GetUserByEmail(gomock.Any(), "a@example.com").Return(nil, store.ErrNotFound)

	login := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/login",
			strings.NewReader(`{"email":"a@example.com","password":"secret123"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.GetRouter().ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusUnauthorized, login().Code)

	w := login()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimitDisabled(t *testing.T) {
	srv := NewServer(testConfig(), nil, &allowOnce{seen: map[string]int{}}, nil, nil)
	srv.config.RateLimit.Enabled = false

	assert.Nil(t, srv.rateLimit("/api/login"))
}
