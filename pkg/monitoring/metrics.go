package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector owns a registry so that several collectors can coexist in tests
type MetricsCollector struct {
	registry *prometheus.Registry

	httpRequestsTotal     *prometheus.CounterVec
	httpRequestDuration   *prometheus.HistogramVec
	identityResolutions   *prometheus.CounterVec
	appointmentTransition *prometheus.CounterVec
	remoteErrors          *prometheus.CounterVec
}

func NewMetricsCollector(serviceName string) *MetricsCollector {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &MetricsCollector{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "endpoint", "status_code"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "Duration of HTTP requests in seconds",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: constLabels,
			},
			[]string{"method", "endpoint"},
		),
		identityResolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "identity_resolutions_total",
				Help:        "Identity resolutions by role and outcome",
				ConstLabels: constLabels,
			},
			[]string{"role", "outcome"},
		),
		appointmentTransition: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "appointment_transitions_total",
				Help:        "Appointment bookings and cancellations by outcome",
				ConstLabels: constLabels,
			},
			[]string{"action", "outcome"},
		),
		remoteErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "remote_store_errors_total",
				Help:        "Failed calls to the remote store by table and kind",
				ConstLabels: constLabels,
			},
			[]string{"table", "kind"},
		),
	}

	m.registry.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.identityResolutions,
		m.appointmentTransition,
		m.remoteErrors,
	)

	return m
}

// RecordHTTPRequest records HTTP request metrics
func (m *MetricsCollector) RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordResolution records the outcome of an identity resolution
func (m *MetricsCollector) RecordResolution(role, outcome string) {
	m.identityResolutions.WithLabelValues(role, outcome).Inc()
}

// RecordTransition records a booking or cancellation attempt
func (m *MetricsCollector) RecordTransition(action, outcome string) {
	m.appointmentTransition.WithLabelValues(action, outcome).Inc()
}

// RecordRemoteError records a failed remote store call
func (m *MetricsCollector) RecordRemoteError(table, kind string) {
	m.remoteErrors.WithLabelValues(table, kind).Inc()
}

// Registry exposes the underlying registry
func (m *MetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the Prometheus metrics HTTP handler
func (m *MetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// HTTPMiddleware records request metrics. routeName maps a request to a
// low cardinality endpoint label.
func (m *MetricsCollector) HTTPMiddleware(routeName func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapper := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapper, r)

			m.RecordHTTPRequest(r.Method, routeName(r), strconv.Itoa(wrapper.statusCode), time.Since(start))
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
