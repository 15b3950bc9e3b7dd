package middleware

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/darzi-app/darzi/internal/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestIdentityRequired(t *testing.T) {
	router := gin.New()
	router.Use(IdentityRequired())
	var storedID string
	router.GET("/", func(c *gin.Context) {
		if v, ok := c.Get(UserIDContextKey); ok {
			storedID = v.(string)
		}
		c.Status(http.StatusOK)
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", resp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "alice")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with identity, got %d", resp.Code)
	}
	if storedID != "alice" {
		t.Fatalf("expected user id alice, got %q", storedID)
	}
}

func TestRoleRequired(t *testing.T) {
	router := gin.New()
	router.Use(RoleRequired("admin"))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without role, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-Role", "tailor")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 with wrong role, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-Role", "admin")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with admin role, got %d", resp.Code)
	}
}

func TestDecompressRequest(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte(`{"category_id":"shirt"}`))
	_ = gz.Close()

	router := gin.New()
	router.Use(DecompressRequest())
	var body string
	router.POST("/", func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		body = string(raw)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body != `{"category_id":"shirt"}` {
		t.Fatalf("decompressed body = %q", body)
	}
}

func TestDecompressRequestRejectsJunk(t *testing.T) {
	router := gin.New()
	router.Use(DecompressRequest())
	router.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for junk gzip, got %d", resp.Code)
	}
}

func TestDecompressRequestPassthrough(t *testing.T) {
	router := gin.New()
	router.Use(DecompressRequest())
	var body string
	router.POST("/", func(c *gin.Context) {
		raw, _ := io.ReadAll(c.Request.Body)
		body = string(raw)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("plain"))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK || body != "plain" {
		t.Fatalf("passthrough broke the body: %d %q", resp.Code, body)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log entry: %v", err)
	}
	if entry["method"] != http.MethodGet || entry["path"] != "/ping" {
		t.Fatalf("log entry = %v", entry)
	}
	if entry["status"] != float64(http.StatusNoContent) {
		t.Fatalf("logged status = %v", entry["status"])
	}
}

func TestRequestMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	router := gin.New()
	router.Use(RequestMetrics(m))
	router.GET("/jobs/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/jobs/JOB1", nil))

	counter := m.HTTPRequests.WithLabelValues(http.MethodGet, "/jobs/:id", "200")
	if got := testutil.ToFloat64(counter); got != 1 {
		t.Fatalf("counter = %v, want 1", got)
	}

	// Unregistered paths fall into a shared bucket rather than exploding
	// label cardinality.
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	unmatched := m.HTTPRequests.WithLabelValues(http.MethodGet, "unmatched", "404")
	if got := testutil.ToFloat64(unmatched); got != 1 {
		t.Fatalf("unmatched counter = %v, want 1", got)
	}
}
