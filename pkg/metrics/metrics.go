package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "fundilink"

// Metrics records HTTP traffic and fundi workflow events.
// A nil *Metrics or one built without a registerer is a no-op.
type Metrics struct {
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	applications *prometheus.CounterVec
	decisions    *prometheus.CounterVec
}

// New registers the metrics on the provided registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
	applications := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fundi_applications_total",
		Help:      "Fundi application submissions by outcome.",
	}, []string{"outcome"})
	decisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fundi_decisions_total",
		Help:      "Verification decisions by resulting status.",
	}, []string{"status"})
	reg.MustRegister(requests, duration, applications, decisions)
	return &Metrics{
		requests:     requests,
		duration:     duration,
		applications: applications,
		decisions:    decisions,
	}
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	route = normalizeLabel(route)
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// IncApplication counts an intake attempt, e.g. "submitted" or "duplicate".
func (m *Metrics) IncApplication(outcome string) {
	if m == nil || m.applications == nil {
		return
	}
	m.applications.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncDecision counts a recorded verification decision.
func (m *Metrics) IncDecision(status string) {
	if m == nil || m.decisions == nil {
		return
	}
	m.decisions.WithLabelValues(normalizeLabel(status)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
