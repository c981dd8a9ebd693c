package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRequest("POST", "/api/v1/fundi/apply", 201, 30*time.Millisecond)
	m.ObserveRequest("POST", "/api/v1/fundi/apply", 201, 10*time.Millisecond)
	m.ObserveRequest("GET", "", 404, time.Millisecond)
	m.IncApplication("submitted")
	m.IncApplication("duplicate")
	m.IncDecision("VERIFIED")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("POST", "/api/v1/fundi/apply", "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unknown", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.applications.WithLabelValues("submitted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.applications.WithLabelValues("duplicate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.decisions.WithLabelValues("VERIFIED")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.decisions.WithLabelValues("REJECTED")))

	count, err := testutil.GatherAndCount(reg, "fundilink_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveRequest("GET", "/health", 200, time.Millisecond)
	m.IncApplication("submitted")
	m.IncDecision("REJECTED")

	unregistered := New(nil)
	unregistered.ObserveRequest("GET", "/health", 200, time.Millisecond)
	unregistered.IncApplication("submitted")
	unregistered.IncDecision("REJECTED")
}
