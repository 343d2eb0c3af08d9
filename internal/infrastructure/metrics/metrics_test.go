package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	m := New("test")

	m.ObserveRequest("GET", "/tickets/:id", 200, 15*time.Millisecond)
	m.ObserveRequest("GET", "/tickets/:id", 200, 5*time.Millisecond)
	m.RecordTicketOperation("status_changed")
	m.RecordNotification("StatusChanged", true)
	m.RecordNotification("StatusChanged", false)
	m.RecordLogin("success")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/tickets/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TicketOperations.WithLabelValues("status_changed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues("StatusChanged", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoginAttempts.WithLabelValues("success")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/", 200, time.Millisecond)
		m.RecordTicketOperation("created")
		m.RecordNotification("CommentAdded", true)
		m.RecordLogin("failure")
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New("incidentdesk")
	m.RecordTicketOperation("created")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `incidentdesk_ticket_operations_total{operation="created"} 1`)
}
