package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetricsApp(t *testing.T) (*fiber.App, *PrometheusMiddleware, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(m.Handler())
	app.Get("/api/events/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Delete("/api/gallery/*", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Post("/api/graamys/results", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	})
	app.Get("/metrics", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app, m, reg
}

// histogramSamples returns the observation count of the latency histogram
// series carrying exactly the given labels.
func histogramSamples(t *testing.T, reg *prometheus.Registry, labels map[string]string) uint64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range mfs {
		if mf.GetName() != "http_request_duration_seconds" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			if labelsMatch(metric.GetLabel(), labels) {
				return metric.GetHistogram().GetSampleCount()
			}
		}
	}
	return 0
}

func labelsMatch(pairs []*dto.LabelPair, want map[string]string) bool {
	if len(pairs) != len(want) {
		return false
	}
	for _, p := range pairs {
		if want[p.GetName()] != p.GetValue() {
			return false
		}
	}
	return true
}

func TestPrometheusMiddleware(t *testing.T) {
	app, m, reg := newMetricsApp(t)

	tests := []struct {
		method string
		target string
		route  string
		status int
	}{
		{http.MethodGet, "/api/events/diwali-2026", "/api/events/:id", http.StatusOK},
		{http.MethodDelete, "/api/gallery/gallery/a.png", "/api/gallery/*", http.StatusNoContent},
		{http.MethodPost, "/api/graamys/results", "/api/graamys/results", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.route, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCount.WithLabelValues(tt.method, tt.route, strconv.Itoa(tt.status))))
			assert.Equal(t, uint64(1), histogramSamples(t, reg, map[string]string{
				"method": tt.method,
				"path":   tt.route,
			}))
		})
	}
}

func TestPrometheusMiddleware_RouteLabelsBoundCardinality(t *testing.T) {
	app, m, reg := newMetricsApp(t)

	for _, id := range []string{"a", "b", "c"} {
		app.Test(httptest.NewRequest(http.MethodGet, "/api/events/"+id, nil))
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.requestCount.WithLabelValues(http.MethodGet, "/api/events/:id", "200")))
	assert.Equal(t, uint64(3), histogramSamples(t, reg, map[string]string{"method": http.MethodGet, "path": "/api/events/:id"}))
	assert.Equal(t, 1, testutil.CollectAndCount(m.requestDuration))
	assert.Zero(t, histogramSamples(t, reg, map[string]string{"method": http.MethodGet, "path": "/api/events/a"}))
}

func TestPrometheusMiddleware_SkipsMetricsEndpoint(t *testing.T) {
	app, m, _ := newMetricsApp(t)

	app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Zero(t, testutil.CollectAndCount(m.requestCount))
	assert.Zero(t, testutil.CollectAndCount(m.requestDuration))
}

func TestNewPrometheusMiddleware_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	_, err = NewPrometheusMiddleware(reg)
	assert.Error(t, err)
}
