package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findFamily(t *testing.T, r *Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := r.Gatherer().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}
	t.Fatalf("metric family %s not found", name)
	return nil
}

func labelValue(m *dto.Metric, name string) string {
	for _, l := range m.GetLabel() {
		if l.GetName() == name {
			return l.GetValue()
		}
	}
	return ""
}

func TestRegistry_TicketCounters(t *testing.T) {
	r := NewRegistry()
	r.TicketCreated("bug")
	r.TicketCreated("bug")
	r.TicketCreated("task")
	r.TicketNumberConflict()

	created := findFamily(t, r, "setracker_tickets_created_total")
	counts := map[string]float64{}
	for _, m := range created.GetMetric() {
		counts[labelValue(m, "type")] = m.GetCounter().GetValue()
	}
	assert.Equal(t, map[string]float64{"bug": 2, "task": 1}, counts)

	conflicts := findFamily(t, r, "setracker_tickets_number_conflicts_total")
	require.Len(t, conflicts.GetMetric(), 1)
	assert.Equal(t, float64(1), conflicts.GetMetric()[0].GetCounter().GetValue())
}

func TestRegistry_ObserveHTTP(t *testing.T) {
	r := NewRegistry()
	r.ObserveHTTP(http.MethodGet, "/api/tickets/:number", http.StatusOK, 20*time.Millisecond)

	requests := findFamily(t, r, "setracker_http_requests_total")
	require.Len(t, requests.GetMetric(), 1)
	m := requests.GetMetric()[0]
	assert.Equal(t, "GET", labelValue(m, "method"))
	assert.Equal(t, "/api/tickets/:number", labelValue(m, "route"))
	assert.Equal(t, "200", labelValue(m, "status"))

	duration := findFamily(t, r, "setracker_http_request_duration_seconds")
	assert.Equal(t, uint64(1), duration.GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestRegistry_HandlerServesExposition(t *testing.T) {
	r := NewRegistry()
	r.TicketCreated("feature")

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `setracker_tickets_created_total{type="feature"} 1`)
}
