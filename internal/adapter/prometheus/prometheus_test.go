package prometheus

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) (*PrometheusAdapter, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewPrometheusAdapter(reg), reg
}

func getCounterValue(c prometheus.Counter) float64 {
	m := &dto.Metric{}
	c.Write(m)
	return m.GetCounter().GetValue()
}

func TestRecordMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	p, reg := newTestAdapter(t)

	r := gin.New()
	r.GET("/inventory/:chassis", func(c *gin.Context) {
		start := time.Now()
		defer func() {
			p.RecordMetrics(c, start)
		}()
		c.Status(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/inventory/ABC", nil))

	assert.Equal(t, 1.0, getCounterValue(p.requestsTotal.WithLabelValues("GET", "/inventory/:chassis", "404")))

	families, err := reg.Gather()
	require.NoError(t, err)
	var found bool
	for _, f := range families {
		if f.GetName() == "webike_http_request_duration_seconds" {
			found = true
			assert.Equal(t, uint64(1), f.GetMetric()[0].GetHistogram().GetSampleCount())
		}
	}
	assert.True(t, found)
}

func TestDomainCounters(t *testing.T) {
	p, _ := newTestAdapter(t)

	p.RecordSubmission("success")
	p.RecordSubmission("success")
	p.RecordSubmission("invalid")
	p.RecordExport("records_csv")
	p.RecordLogin("invalid_credentials")
	p.RecordIdleTransition("warning")

	assert.Equal(t, 2.0, getCounterValue(p.submissions.WithLabelValues("success")))
	assert.Equal(t, 1.0, getCounterValue(p.submissions.WithLabelValues("invalid")))
	assert.Equal(t, 1.0, getCounterValue(p.exports.WithLabelValues("records_csv")))
	assert.Equal(t, 1.0, getCounterValue(p.logins.WithLabelValues("invalid_credentials")))
	assert.Equal(t, 1.0, getCounterValue(p.idleTransitions.WithLabelValues("warning")))
}

func TestNewPrometheusAdapter_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheusAdapter(reg)
	assert.Panics(t, func() { NewPrometheusAdapter(reg) })
}
