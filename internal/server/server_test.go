package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"agencysite/internal/config"
	"agencysite/internal/httpx"
	"agencysite/internal/testutil"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Addr = "127.0.0.1:0"
	return cfg
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger, _ := test.NewNullLogger()
	limiter := httpx.NewRateLimitMiddleware(100, 100)
	t.Cleanup(limiter.Stop)

	router, err := NewRouter(testConfig(t), testutil.Catalog(t), logger, prometheus.NewRegistry(), limiter)
	require.NoError(t, err)
	return router
}

func TestRouter(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name        string
		method      string
		path        string
		wantStatus  int
		contentType string
	}{
		{"home", http.MethodGet, "/", http.StatusOK, "text/html"},
		{"trailing slash", http.MethodGet, "/services/", http.StatusOK, "text/html"},
		{"service detail", http.MethodGet, "/services/s1", http.StatusOK, "text/html"},
		{"missing project", http.MethodGet, "/portfolio/nope", http.StatusNotFound, "text/html"},
		{"unknown page", http.MethodGet, "/nowhere", http.StatusNotFound, "text/html"},
		{"health", http.MethodGet, "/health", http.StatusOK, "application/json"},
		{"stylesheet", http.MethodGet, "/static/site.css", http.StatusOK, "text/css"},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK, "text/plain"},
		{"api site", http.MethodGet, "/api/v1/site", http.StatusOK, "application/json"},
		{"api related", http.MethodGet, "/api/v1/content/blog/b1/related", http.StatusOK, "application/json"},
		{"api unknown kind", http.MethodGet, "/api/v1/content/widgets", http.StatusNotFound, "application/json"},
		{"api unknown route", http.MethodGet, "/api/v1/nope", http.StatusNotFound, "application/json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), tt.contentType),
				"content type %q", w.Header().Get("Content-Type"))
			assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
			assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		})
	}
}

func TestRouter_APIContact(t *testing.T) {
	router := newTestRouter(t)

	body := map[string]string{
		"name":    "Priya Sharma",
		"email":   "priya@example.com",
		"subject": "Hello",
		"message": "Looking for a new website this quarter.",
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/api/v1/contact", body))

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, true, resp.Body["success"])
}

func TestRouter_RelatedOrder(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/content/blog/b1/related", nil))

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, resp.Code)
	items, ok := resp.Body["data"].([]any)
	require.True(t, ok)

	var ids []string
	for _, item := range items {
		ids = append(ids, item.(map[string]any)["id"].(string))
	}
	assert.Equal(t, []string{"b2", "b4", "b3"}, ids)
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	logger, _ := test.NewNullLogger()
	srv, err := New(testConfig(t), testutil.Catalog(t), logger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
