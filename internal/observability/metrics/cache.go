package metrics

import "time"

// CacheObserver binds the results-cache instrumentation to a service name so
// the use case layer can report without knowing about prometheus labels.
type CacheObserver struct {
	metrics *HTTPServerMetrics
	service string
}

func (m *HTTPServerMetrics) CacheObserver(service string) *CacheObserver {
	return &CacheObserver{metrics: m, service: service}
}

func (o *CacheObserver) CacheHit() {
	o.metrics.cacheHitsTotal.WithLabelValues(o.service).Inc()
}

func (o *CacheObserver) CacheMiss() {
	o.metrics.cacheMissesTotal.WithLabelValues(o.service).Inc()
}

func (o *CacheObserver) CacheRefresh() {
	o.metrics.cacheRefreshesTotal.WithLabelValues(o.service).Inc()
}

func (o *CacheObserver) FetchDiscarded() {
	o.metrics.staleFetchesTotal.WithLabelValues(o.service).Inc()
}

func (o *CacheObserver) ObservePipeline(elapsed time.Duration) {
	o.metrics.pipelineDuration.WithLabelValues(o.service).Observe(elapsed.Seconds())
}

func (o *CacheObserver) WorkingSetSize(size int) {
	o.metrics.workingSetSize.Set(float64(size))
}
