package metrics

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	cacheHitsTotal      *prometheus.CounterVec
	cacheMissesTotal    *prometheus.CounterVec
	cacheRefreshesTotal *prometheus.CounterVec
	staleFetchesTotal   *prometheus.CounterVec
	pipelineDuration    *prometheus.HistogramVec
	workingSetSize      prometheus.Gauge
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "algee",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "algee",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "algee",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	cacheHitsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "algee",
			Subsystem: "results_cache",
			Name:      "hits_total",
			Help:      "Total result queries served from the cached working set.",
		},
		[]string{"service"},
	)
	cacheMissesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "algee",
			Subsystem: "results_cache",
			Name:      "misses_total",
			Help:      "Total result queries that required a backend round trip.",
		},
		[]string{"service"},
	)
	cacheRefreshesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "algee",
			Subsystem: "results_cache",
			Name:      "refreshes_total",
			Help:      "Total explicit working-set refreshes.",
		},
		[]string{"service"},
	)
	staleFetchesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "algee",
			Subsystem: "results_cache",
			Name:      "stale_fetches_discarded_total",
			Help:      "Total backend responses discarded because a newer fetch superseded them.",
		},
		[]string{"service"},
	)
	pipelineDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "algee",
			Subsystem: "results_cache",
			Name:      "pipeline_duration_seconds",
			Help:      "Duration of the filter-sort-paginate-summarize pipeline.",
			Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05},
		},
		[]string{"service"},
	)
	workingSetSize := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "algee",
			Subsystem: "results_cache",
			Name:      "working_set_size",
			Help:      "Number of results currently held in the cached working set.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		cacheHitsTotal,
		cacheMissesTotal,
		cacheRefreshesTotal,
		staleFetchesTotal,
		pipelineDuration,
		workingSetSize,
	)

	return &HTTPServerMetrics{
		registry:            registry,
		requestTotal:        requestTotal,
		requestDuration:     requestDuration,
		requestInFlight:     requestInFlight,
		cacheHitsTotal:      cacheHitsTotal,
		cacheMissesTotal:    cacheMissesTotal,
		cacheRefreshesTotal: cacheRefreshesTotal,
		staleFetchesTotal:   staleFetchesTotal,
		pipelineDuration:    pipelineDuration,
		workingSetSize:      workingSetSize,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := normalizePath(r.URL.Path)
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

// normalizePath collapses resource identifiers so per-client and per-batch
// routes do not explode label cardinality.
func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/v1/clients/"):
		rest := strings.TrimPrefix(path, "/v1/clients/")
		if idx := strings.Index(rest, "/"); idx >= 0 {
			return "/v1/clients/{client_id}" + rest[idx:]
		}
		return "/v1/clients/{client_id}"
	case strings.HasPrefix(path, "/v1/batches/"):
		rest := strings.TrimPrefix(path, "/v1/batches/")
		if idx := strings.Index(rest, "/"); idx >= 0 {
			return "/v1/batches/{batch_id}" + rest[idx:]
		}
		return "/v1/batches/{batch_id}"
	case strings.HasPrefix(path, "/v1/admin/"):
		return normalizeAdminPath(path)
	default:
		return path
	}
}

func normalizeAdminPath(path string) string {
	rest := strings.TrimPrefix(path, "/v1/admin/")
	idx := strings.Index(rest, "/")
	if idx < 0 {
		return path
	}
	return "/v1/admin/" + rest[:idx] + "/{id}"
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Flush() {
	flusher, ok := w.ResponseWriter.(http.Flusher)
	if ok {
		flusher.Flush()
	}
}

func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not implement http.Hijacker")
	}
	return hijacker.Hijack()
}

func (w *statusRecorder) Push(target string, opts *http.PushOptions) error {
	pusher, ok := w.ResponseWriter.(http.Pusher)
	if !ok {
		return http.ErrNotSupported
	}
	return pusher.Push(target, opts)
}
