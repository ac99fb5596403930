package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_RecordRequestIncrementsOneBucket(t *testing.T) {
	t.Parallel()

	r := NewRecorder("api")

	r.RecordRequest("GET", "/items", "200", 0.012)

	assert.Equal(t, float64(1), testutil.ToFloat64(r.requestCount.WithLabelValues("GET", "/items", "200")))
	assert.Equal(t, float64(0), testutil.ToFloat64(r.requestCount.WithLabelValues("GET", "/items", "500")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.requestLatency), "exactly one histogram series")

	r.RecordRequest("GET", "/items", "200", 0.034)
	assert.Equal(t, float64(2), testutil.ToFloat64(r.requestCount.WithLabelValues("GET", "/items", "200")))
}

func TestRecorder_FreeFormLabelValues(t *testing.T) {
	t.Parallel()

	r := NewRecorder("api")

	assert.NotPanics(t, func() {
		r.RecordRequest("", "/weird path/with spaces", "not-a-status", -1)
	})
}

func TestRecorder_HandlerServesExposition(t *testing.T) {
	t.Parallel()

	r := NewRecorder("api")
	r.RecordRequest("GET", "/items", "200", 0.01)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "api_requests_total")
	assert.Contains(t, body, `api_requests_total{endpoint="/items",method="GET",status="200"} 1`)
	assert.Contains(t, body, "api_request_latency_seconds_bucket")
	assert.True(t, strings.Contains(rec.Header().Get("Content-Type"), "text/plain"),
		"exposition content type, got %q", rec.Header().Get("Content-Type"))
}

func TestRecorder_TaskMetrics(t *testing.T) {
	t.Parallel()

	r := NewRecorder("worker")
	r.EnableTaskMetrics("worker")

	r.IncActiveTasks()
	r.IncActiveTasks()
	r.RecordTaskProcessed("completed")

	assert.Equal(t, float64(2), testutil.ToFloat64(r.activeTasks))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.tasksProcessed.WithLabelValues("completed")))
}

func TestRecorder_TaskMetricsNoopWhenDisabled(t *testing.T) {
	t.Parallel()

	r := NewRecorder("api")

	assert.NotPanics(t, func() {
		r.IncActiveTasks()
		r.RecordTaskProcessed("pending")
	})
}

func TestRecorder_IsolatedRegistries(t *testing.T) {
	t.Parallel()

	a := NewRecorder("api")
	b := NewRecorder("api")

	a.RecordRequest("GET", "/items", "200", 0.01)

	assert.Equal(t, float64(0), testutil.ToFloat64(b.requestCount.WithLabelValues("GET", "/items", "200")),
		"recorders must not share state")
}
