package providers

import (
	"dbb/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncMessagesSent(kind string)
	IncSendFailures(kind string)
	ObserveStoreSaveDuration(duration time.Duration)
	SetSubscribersTotal(count int)
}

type MetricsProvider struct {
	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	cacheHits         prometheus.Counter
	cacheMisses       prometheus.Counter
	messagesSent      *prometheus.CounterVec
	sendFailures      *prometheus.CounterVec
	storeSaveDuration prometheus.Histogram
	subscribersTotal  prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncMessagesSent(kind string) {
	m.messagesSent.WithLabelValues(kind).Inc()
}

func (m *MetricsProvider) IncSendFailures(kind string) {
	m.sendFailures.WithLabelValues(kind).Inc()
}

func (m *MetricsProvider) ObserveStoreSaveDuration(duration time.Duration) {
	m.storeSaveDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) SetSubscribersTotal(count int) {
	m.subscribersTotal.Set(float64(count))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dbb_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dbb_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dbb_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dbb_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		messagesSent: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dbb_messages_sent_total",
			Help: "Total number of messages delivered, by kind",
		}, []string{"kind"}),

		sendFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dbb_send_failures_total",
			Help: "Total number of failed message deliveries, by kind",
		}, []string{"kind"}),

		storeSaveDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "dbb_store_save_duration_seconds",
			Help:    "Duration of store save operations in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		subscribersTotal: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "dbb_subscribers_total",
			Help: "Current number of subscribed users",
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncMessagesSent(_ string)                         {}
func (n *noopMetrics) IncSendFailures(_ string)                         {}
func (n *noopMetrics) ObserveStoreSaveDuration(_ time.Duration)         {}
func (n *noopMetrics) SetSubscribersTotal(_ int)                        {}
