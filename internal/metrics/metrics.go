package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roomdesigner_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "roomdesigner_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	storeMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roomdesigner_store_mutations_total",
		Help: "Design store mutations by operation and result",
	}, []string{"op", "result"})

	renderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "roomdesigner_plan_render_duration_seconds",
		Help:    "Duration of 2D plan renders by output format",
		Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
	}, []string{"format"})

	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roomdesigner_login_attempts_total",
		Help: "Login attempts by result",
	}, []string{"result"})

	designsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "roomdesigner_designs",
		Help: "Number of designs held by the store",
	})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveMutation counts a store mutation. A nil err is recorded as "ok".
func ObserveMutation(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	storeMutations.WithLabelValues(op, result).Inc()
}

func ObserveRender(format string, duration time.Duration) {
	renderDuration.WithLabelValues(format).Observe(duration.Seconds())
}

func ObserveLogin(ok bool) {
	if ok {
		loginAttempts.WithLabelValues("success").Inc()
		return
	}
	loginAttempts.WithLabelValues("failure").Inc()
}

// SetDesigns sets the design gauge to a specific count.
func SetDesigns(count int) {
	designsTotal.Set(float64(count))
}
