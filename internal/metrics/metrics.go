// Package metrics collects and exposes Prometheus metrics for the panel.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records panel activity counters. Application services depend on
// the interface so tests can pass a registry-free collector.
type Collector interface {
	RecordRefreshSuccess()
	RecordRefreshFailure()
	RecordNewDeliveries(count int)
	RecordTransition(transition string)
	RecordLogin(outcome string)
}

// PrometheusCollector registers and increments the panel's counters.
type PrometheusCollector struct {
	refreshSuccess prometheus.Counter
	refreshFail    prometheus.Counter
	newDeliveries  prometheus.Counter
	transitions    *prometheus.CounterVec
	logins         *prometheus.CounterVec
}

// NewCollector creates a collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		refreshSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hortifruti_refresh_success_total",
			Help: "Completed delivery refresh cycles.",
		}),
		refreshFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hortifruti_refresh_fail_total",
			Help: "Failed delivery refresh cycles.",
		}),
		newDeliveries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hortifruti_new_deliveries_total",
			Help: "Newly assigned deliveries detected by refresh.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hortifruti_transitions_total",
			Help: "Delivery status transitions submitted, by transition.",
		}, []string{"transition"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hortifruti_logins_total",
			Help: "Login attempts, by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		c.refreshSuccess,
		c.refreshFail,
		c.newDeliveries,
		c.transitions,
		c.logins,
	)

	return c
}

// RecordRefreshSuccess counts a completed refresh cycle.
func (c *PrometheusCollector) RecordRefreshSuccess() {
	c.refreshSuccess.Inc()
}

// RecordRefreshFailure counts a refresh cycle that ended in an error.
func (c *PrometheusCollector) RecordRefreshFailure() {
	c.refreshFail.Inc()
}

// RecordNewDeliveries counts newly assigned deliveries detected by a refresh.
func (c *PrometheusCollector) RecordNewDeliveries(count int) {
	c.newDeliveries.Add(float64(count))
}

// RecordTransition counts a submitted status transition.
func (c *PrometheusCollector) RecordTransition(transition string) {
	c.transitions.WithLabelValues(transition).Inc()
}

// RecordLogin counts a login attempt outcome ("success" or "failure").
func (c *PrometheusCollector) RecordLogin(outcome string) {
	c.logins.WithLabelValues(outcome).Inc()
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Noop is a Collector that records nothing. Useful in tests.
type Noop struct{}

func (Noop) RecordRefreshSuccess()            {}
func (Noop) RecordRefreshFailure()            {}
func (Noop) RecordNewDeliveries(count int)    {}
func (Noop) RecordTransition(transition string) {}
func (Noop) RecordLogin(outcome string)       {}
