package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the API's Prometheus collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	ClientsCreated     prometheus.Counter
	ClientsDeactivated prometheus.Counter
	PoliciesCreated    prometheus.Counter
	PoliciesCanceled   prometheus.Counter
	PoliciesExpired    prometheus.Counter
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "intia_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "intia_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route"}),
		ClientsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "intia_clients_created_total",
			Help: "Total number of clients created",
		}),
		ClientsDeactivated: f.NewCounter(prometheus.CounterOpts{
			Name: "intia_clients_deactivated_total",
			Help: "Total number of clients soft deleted",
		}),
		PoliciesCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "intia_policies_created_total",
			Help: "Total number of policies created",
		}),
		PoliciesCanceled: f.NewCounter(prometheus.CounterOpts{
			Name: "intia_policies_canceled_total",
			Help: "Total number of policies canceled through the API",
		}),
		PoliciesExpired: f.NewCounter(prometheus.CounterOpts{
			Name: "intia_policies_expired_total",
			Help: "Total number of policies moved to EXPIRED by the sweeper",
		}),
	}
}

// ObserveRequest records one served HTTP request.
// Call with time.Now() taken before the handler ran.
func (m *Metrics) ObserveRequest(method, route, status string, start time.Time) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncClientsCreated() {
	if m != nil {
		m.ClientsCreated.Inc()
	}
}

func (m *Metrics) IncClientsDeactivated() {
	if m != nil {
		m.ClientsDeactivated.Inc()
	}
}

func (m *Metrics) IncPoliciesCreated() {
	if m != nil {
		m.PoliciesCreated.Inc()
	}
}

func (m *Metrics) IncPoliciesCanceled() {
	if m != nil {
		m.PoliciesCanceled.Inc()
	}
}

// AddPoliciesExpired records n policies expired in one sweep
func (m *Metrics) AddPoliciesExpired(n int64) {
	if m != nil && n > 0 {
		m.PoliciesExpired.Add(float64(n))
	}
}
