package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{200, "2xx"},
		{302, "3xx"},
		{401, "4xx"},
		{500, "5xx"},
		{99, "unknown"},
		{600, "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyStatus(tt.code))
	}
}

func TestMetrics_SyncCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordSync("products", 3)
	m.RecordSync("products", 2)
	m.RecordSyncFailure("orders", "upstream")

	body := scrape(t, m)
	assert.Contains(t, body, `shopify_synced_records_total{resource="products"} 5`)
	assert.Contains(t, body, `shopify_sync_failures_total{reason="upstream",resource="orders"} 1`)
}

func TestMetrics_MiddlewareUsesRoutePattern(t *testing.T) {
	m := New(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/42", nil))

	assert.Contains(t, scrape(t, m), `http_requests_total{method="GET",route="/items/{id}",status="4xx"} 1`)
}

func TestMetrics_RecordRequest(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordRequest("POST", "/webhooks/orders-create", 200, 10*time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `http_requests_total{method="POST",route="/webhooks/orders-create",status="2xx"} 1`)
	assert.Contains(t, body, `http_request_duration_seconds_count{method="POST",route="/webhooks/orders-create",status="2xx"} 1`)
}
