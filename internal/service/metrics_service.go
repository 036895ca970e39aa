package service

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService owns the Prometheus registry and the collectors the
// API reports on.
type MetricsService struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	cacheOperations     *prometheus.CounterVec
	cacheReadDuration   prometheus.Histogram
	cacheWriteDuration  prometheus.Histogram
	dbQueryDuration     *prometheus.HistogramVec
	goroutines          prometheus.GaugeFunc
}

// NewMetricsService builds a registry with all collectors registered.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	s := &MetricsService{
		registry: registry,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, path and status.",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and path.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		cacheOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache lookups by outcome.",
		}, []string{"result"}),
		cacheReadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cache_read_duration_seconds",
			Help:    "Cache read latency.",
			Buckets: prometheus.DefBuckets,
		}),
		cacheWriteDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cache_write_duration_seconds",
			Help:    "Cache write latency.",
			Buckets: prometheus.DefBuckets,
		}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency by operation.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		goroutines: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "goroutines_count",
			Help: "Number of running goroutines.",
		}, func() float64 { return float64(runtime.NumGoroutine()) }),
	}

	registry.MustRegister(
		s.httpRequestsTotal,
		s.httpRequestDuration,
		s.cacheOperations,
		s.cacheReadDuration,
		s.cacheWriteDuration,
		s.dbQueryDuration,
		s.goroutines,
	)
	return s
}

// Handler exposes the registry over HTTP.
func (s *MetricsService) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest records one completed HTTP request.
func (s *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	s.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	s.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordCacheOperation counts a cache lookup as a hit or a miss.
func (s *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	result := "miss"
	if hit {
		result = "hit"
	}
	s.cacheOperations.WithLabelValues(result).Inc()
	s.cacheReadDuration.Observe(duration.Seconds())
}

// ObserveCacheWrite records the latency of one cache write.
func (s *MetricsService) ObserveCacheWrite(duration time.Duration) {
	s.cacheWriteDuration.Observe(duration.Seconds())
}

// ObserveDBQuery records the latency of one database operation.
func (s *MetricsService) ObserveDBQuery(operation string, duration time.Duration) {
	s.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
