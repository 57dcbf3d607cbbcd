package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Business metrics
	registrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sparcom_registrations_total",
			Help: "Total number of user registrations",
		},
	)

	loginsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sparcom_logins_total",
			Help: "Total number of successful logins",
		},
	)

	loginsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sparcom_logins_failed_total",
			Help: "Total number of failed login attempts",
		},
	)

	eventsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sparcom_events_created_total",
			Help: "Total number of events created",
		},
	)

	applicationsSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sparcom_role_applications_total",
			Help: "Total number of role applications submitted",
		},
	)

	dependencyHealth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_health",
			Help: "Health status of dependencies (1 = healthy, 0 = unhealthy)",
		},
		[]string{"dependency"},
	)
)

// RecordHTTPRequest records per-request metrics. endpoint is the route
// pattern, not the raw path, to keep cardinality bounded.
func RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

func RecordRegistration() { registrationsTotal.Inc() }

func RecordLogin() { loginsTotal.Inc() }

func RecordLoginFailed() { loginsFailed.Inc() }

func RecordEventCreated() { eventsCreatedTotal.Inc() }

func RecordApplicationSubmitted() { applicationsSubmittedTotal.Inc() }

// SetDependencyHealth flags a dependency up or down.
func SetDependencyHealth(dependency string, healthy bool) {
	value := 0.0
	if healthy {
		value = 1.0
	}
	dependencyHealth.WithLabelValues(dependency).Set(value)
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
