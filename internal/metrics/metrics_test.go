package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"hortifruti/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatherValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	total := 0.0
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
	}
	return total
}

func Test_Collector(t *testing.T) {
	t.Run("should count refresh cycles", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		collector := metrics.NewCollector(reg)

		collector.RecordRefreshSuccess()
		collector.RecordRefreshSuccess()
		collector.RecordRefreshFailure()

		assert.Equal(t, 2.0, gatherValue(t, reg, "hortifruti_refresh_success_total"))
		assert.Equal(t, 1.0, gatherValue(t, reg, "hortifruti_refresh_fail_total"))
	})

	t.Run("should count new deliveries in batches", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		collector := metrics.NewCollector(reg)

		collector.RecordNewDeliveries(3)
		collector.RecordNewDeliveries(1)

		assert.Equal(t, 4.0, gatherValue(t, reg, "hortifruti_new_deliveries_total"))
	})

	t.Run("should count transitions and logins by label", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		collector := metrics.NewCollector(reg)

		collector.RecordTransition("StartRoute")
		collector.RecordTransition("Complete")
		collector.RecordLogin("success")
		collector.RecordLogin("failure")

		assert.Equal(t, 2.0, gatherValue(t, reg, "hortifruti_transitions_total"))
		assert.Equal(t, 2.0, gatherValue(t, reg, "hortifruti_logins_total"))
	})
}

func Test_Handler(t *testing.T) {
	t.Run("should expose registered counters in the scrape output", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		collector := metrics.NewCollector(reg)
		collector.RecordRefreshSuccess()

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest("GET", "/metrics", nil)
		metrics.Handler(reg).ServeHTTP(recorder, request)

		body, err := io.ReadAll(recorder.Result().Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "hortifruti_refresh_success_total 1")
	})
}
