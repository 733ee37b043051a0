package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "astralnexus"

// Metrics owns a private registry so tests and multiple instances never
// collide on the global one.
type Metrics struct {
	registry           *prometheus.Registry
	requests           *prometheus.CounterVec
	requestDurations   *prometheus.HistogramVec
	submissions        *prometheus.CounterVec
	submissionDuration *prometheus.HistogramVec
	broadcastRetries   prometheus.Counter
	nonceEvents        *prometheus.CounterVec
}

func New(namespace string) *Metrics {
	if namespace == "" {
		namespace = defaultNamespace
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests processed by the gateway.",
		}, []string{"route", "method", "status"}),
		requestDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Contract write submissions by terminal outcome.",
		}, []string{"contract", "method", "outcome"}),
		submissionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "submission_duration_seconds",
			Help:      "Time from building a transaction to its terminal outcome.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120, 300},
		}, []string{"outcome"}),
		broadcastRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "broadcast_retries_total",
			Help:      "Broadcast attempts repeated after a network error.",
		}),
		nonceEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nonce_events_total",
			Help:      "Nonce releases, abandons and conflicts.",
		}, []string{"event"}),
	}

	m.registry.MustRegister(
		m.requests,
		m.requestDurations,
		m.submissions,
		m.submissionDuration,
		m.broadcastRetries,
		m.nonceEvents,
	)

	return m
}

func (m *Metrics) ObserveRequest(route, method string, status int, duration time.Duration) {
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.requestDurations.WithLabelValues(route, method).Observe(duration.Seconds())
}

func (m *Metrics) ObserveSubmission(contract, method, outcome string, duration time.Duration) {
	m.submissions.WithLabelValues(contract, method, outcome).Inc()
	m.submissionDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

func (m *Metrics) BroadcastRetried() {
	m.broadcastRetries.Inc()
}

func (m *Metrics) NonceEvent(event string) {
	m.nonceEvents.WithLabelValues(event).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
