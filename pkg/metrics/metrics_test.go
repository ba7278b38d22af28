package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNilMetricsAreNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTP(http.MethodGet, "/healthcheck", 200, time.Millisecond)
		m.CacheLookup("campaigns", true)
		m.CacheInvalidated(3)
		m.BackendRequest(http.MethodGet, 0)
		m.Command("create", nil)
		m.SchedulerRun("dashboard_refresh", errors.New("x"))
	})
	assert.Nil(t, m.Registry())
}

func TestCounters(t *testing.T) {
	m := New()

	m.CacheLookup("analytics", false)
	m.CacheLookup("analytics", false)
	m.CacheLookup("analytics", true)
	m.BackendRequest(http.MethodGet, 0)
	m.Command("create", errors.New("falhou"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("analytics", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("analytics", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.backendRequests.WithLabelValues(http.MethodGet, "transport_error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.commands.WithLabelValues("create", "error")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveHTTP(http.MethodPost, "/v1/forecast", 200, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "campaign_console_http_requests_total")
}
