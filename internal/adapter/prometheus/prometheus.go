package prometheus

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusAdapter holds the HTTP and dashboard metrics.
type PrometheusAdapter struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	submissions     *prometheus.CounterVec
	exports         *prometheus.CounterVec
	logins          *prometheus.CounterVec
	idleTransitions *prometheus.CounterVec
}

// NewPrometheusAdapter registers the metrics with reg. The process uses
// prometheus.DefaultRegisterer, tests a fresh registry.
func NewPrometheusAdapter(reg prometheus.Registerer) *PrometheusAdapter {
	p := &PrometheusAdapter{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webike_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "webike_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webike_maintenance_submissions_total",
				Help: "Maintenance form submissions by outcome",
			},
			[]string{"outcome"},
		),
		exports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webike_exports_total",
				Help: "Generated exports by kind",
			},
			[]string{"kind"},
		),
		logins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webike_logins_total",
				Help: "Login attempts by outcome",
			},
			[]string{"outcome"},
		),
		idleTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webike_idle_transitions_total",
				Help: "Idle monitor state transitions by target state",
			},
			[]string{"state"},
		),
	}

	reg.MustRegister(
		p.requestsTotal,
		p.requestDuration,
		p.submissions,
		p.exports,
		p.logins,
		p.idleTransitions,
	)

	return p
}

func (p *PrometheusAdapter) RecordMetrics(c *gin.Context, start time.Time) {
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	status := strconv.Itoa(c.Writer.Status())

	p.requestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
	p.requestDuration.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
}

func (p *PrometheusAdapter) RecordSubmission(outcome string) {
	p.submissions.WithLabelValues(outcome).Inc()
}

func (p *PrometheusAdapter) RecordExport(kind string) {
	p.exports.WithLabelValues(kind).Inc()
}

func (p *PrometheusAdapter) RecordLogin(outcome string) {
	p.logins.WithLabelValues(outcome).Inc()
}

func (p *PrometheusAdapter) RecordIdleTransition(state string) {
	p.idleTransitions.WithLabelValues(state).Inc()
}
