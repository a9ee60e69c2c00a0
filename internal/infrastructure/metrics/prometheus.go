package metrics

import (
	"net/http"
	"strconv"
	"time"

	"shopify-sync/internal/ports"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the service
type Metrics struct {
	gatherer            prometheus.Gatherer
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	syncedRecordsTotal  *prometheus.CounterVec
	syncFailuresTotal   *prometheus.CounterVec
}

// New registers the collectors on reg
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Histogram of HTTP request durations.",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
			},
			[]string{"method", "route", "status"},
		),
		syncedRecordsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shopify_synced_records_total",
				Help: "Records fetched from Shopify by resource.",
			},
			[]string{"resource"},
		),
		syncFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shopify_sync_failures_total",
				Help: "Failed sync calls by resource and reason.",
			},
			[]string{"resource", "reason"},
		),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.syncedRecordsTotal,
		m.syncFailuresTotal,
	)
	return m
}

// RecordSync counts the records of a successful sync
func (m *Metrics) RecordSync(resource string, records int) {
	m.syncedRecordsTotal.WithLabelValues(resource).Add(float64(records))
}

// RecordSyncFailure counts a failed sync
func (m *Metrics) RecordSyncFailure(resource string, reason string) {
	m.syncFailuresTotal.WithLabelValues(resource, reason).Inc()
}

// RecordRequest records metrics for an HTTP request
func (m *Metrics) RecordRequest(method, route string, statusCode int, duration time.Duration) {
	status := classifyStatus(statusCode)
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Middleware records every request under its chi route pattern
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		m.RecordRequest(r.Method, route, rw.status, time.Since(start))
	})
}

// responseWriter keeps the status code written by the handler
type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func classifyStatus(statusCode int) string {
	if statusCode < 100 || statusCode >= 600 {
		return "unknown"
	}
	return strconv.Itoa(statusCode/100) + "xx"
}

var _ ports.SyncMetrics = (*Metrics)(nil)
