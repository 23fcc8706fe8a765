package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dukerupert/tenancy/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/health", "/health"},
		{"/api/invoices", "/api/invoices"},
		{"/api/invoices/0b6c7f8e-2f0a-4c1e-9a43-5b7f7f3b8d21", "/api/invoices/:id"},
		{"/api/invoices/0b6c7f8e-2f0a-4c1e-9a43-5b7f7f3b8d21/status", "/api/invoices/:id/status"},
		{"/api/contributions/0b6c7f8e-2f0a-4c1e-9a43-5b7f7f3b8d21/status", "/api/contributions/:id/status"},
		{"/api/pay/AbCdEfGhJk", "/api/pay/:payment_id"},
		{"/api/quickbooks/callback", "/api/quickbooks/callback"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizePath(tt.path))
		})
	}
}

func TestMetrics_Middleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsWithRegisterer("", reg)

	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	}))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/pay/AbCdEfGhJk", nil)
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	got := testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodPost, "/api/pay/:payment_id", "201"))
	assert.Equal(t, float64(3), got)
}

func TestRequestID(t *testing.T) {
	var fromDomain, fromMiddleware string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromDomain = domain.RequestIDFromContext(r.Context())
		fromMiddleware = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
	req.Header.Set(RequestIDHeader, "lb-123")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "lb-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "lb-123", fromDomain)
	assert.Equal(t, "lb-123", fromMiddleware)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/invoices", nil))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)

	for _, forged := range []string{"abc\r\nX-Injected: 1", "id with spaces", strings.Repeat("a", 65)} {
		req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
		req.Header[RequestIDHeader] = []string{forged}
		w = httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Len(t, w.Header().Get(RequestIDHeader), 36, forged)
		assert.NotEqual(t, forged, fromMiddleware)
	}
}

func TestMaxBodySize(t *testing.T) {
	h := MaxBodySize(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(`{"recipient_name":"Dana Ruiz"}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), domain.ETOOLARGE)

	req = httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(`{}`))
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTimeout(t *testing.T) {
	unblock := make(chan struct{})
	h := Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-unblock
		_, _ = w.Write([]byte("late"))
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/invoices", nil))
	close(unblock)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Request timeout")
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{
		RequestsPerSecond: 0.001,
		BurstSize:         2,
		CleanupInterval:   time.Minute,
	})
	t.Cleanup(rl.Stop)

	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/pay/AbCdEfGhJk", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	require.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// A different client has its own bucket.
	req := httptest.NewRequest(http.MethodPost, "/api/pay/AbCdEfGhJk", nil)
	req.Header.Set("X-Real-IP", "198.51.100.7")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPayRateLimiter_KeyedByPaymentLink(t *testing.T) {
	cfg := PayRateLimiterConfig()
	cfg.BurstSize = 2
	rl := NewRateLimiter(cfg)
	t.Cleanup(rl.Stop)

	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	pay := func(link, ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/pay/"+link, nil)
		req.SetPathValue("paymentId", link)
		req.Header.Set("X-Real-IP", ip)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w
	}

	// Rotating addresses does not reset the bucket for a link.
	assert.Equal(t, http.StatusOK, pay("AbCdEfGhJk", "203.0.113.1").Code)
	assert.Equal(t, http.StatusOK, pay("AbCdEfGhJk", "203.0.113.2").Code)
	w := pay("AbCdEfGhJk", "203.0.113.3")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "5", w.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, pay("ZyXwVuTsRq", "203.0.113.3").Code)
}

func TestPaymentLinkKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.RemoteAddr = "192.0.2.1:54321"
	assert.Equal(t, "192.0.2.1", PaymentLinkKey(req))

	req.SetPathValue("paymentId", "AbCdEfGhJk")
	assert.Equal(t, "link:AbCdEfGhJk", PaymentLinkKey(req))
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:54321"
	assert.Equal(t, "192.0.2.1", GetClientIP(req))

	req.Header.Set("X-Forwarded-For", " 203.0.113.9 ,10.0.0.1")
	assert.Equal(t, "203.0.113.9", GetClientIP(req))
}

func TestSecurityHeaders(t *testing.T) {
	h := SecurityHeaders(DefaultSecurityHeadersConfig())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/invoices", nil))

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "max-age=31536000; includeSubDomains", w.Header().Get("Strict-Transport-Security"))
}
