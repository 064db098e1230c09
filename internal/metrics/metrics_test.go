package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordResponseDecorated(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewServeMetrics(reg)

	m.RecordResponse(http.MethodGet, http.StatusOK, 0.01, "text/css; charset=utf-8", true)
	m.RecordResponse(http.MethodGet, http.StatusOK, 0.02, "image/png", true)
	m.RecordResponse(http.MethodGet, http.StatusOK, 0.01, "image/png", true)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheableResponses.WithLabelValues("text/css")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.CacheableResponses.WithLabelValues("image/png")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.PassthroughResponses))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, "2xx")))
}

func TestRecordResponsePassthrough(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewServeMetrics(reg)

	m.RecordResponse(http.MethodGet, http.StatusNotFound, 0.001, "", false)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.PassthroughResponses))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, "4xx")))
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status   int
		expected string
	}{
		{200, "2xx"},
		{204, "2xx"},
		{301, "3xx"},
		{404, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, statusLabel(tt.status))
	}
}

func TestMetricsServerEndpoints(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewServeMetrics(reg)
	m.RecordResponse(http.MethodGet, http.StatusOK, 0.01, "text/css", true)

	srv := NewMetricsServer(0, reg, zerolog.Nop())

	// Exercise the handler directly rather than binding a port.
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "staticserve_cacheable_responses_total")

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rec = httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	require.NoError(t, srv.Shutdown(context.Background()))
}
