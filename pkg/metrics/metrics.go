package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the gateway.
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// LeadsCreated is labeled by outcome: created, validation_failed,
	// remote_api_error, persistence_error, notification_error, ...
	LeadsCreated *prometheus.CounterVec
	// StatusLookups is labeled by result: found, not_found, invalid.
	StatusLookups *prometheus.CounterVec
	// Notifications is labeled by template kind and success.
	Notifications *prometheus.CounterVec
	// RemoteCalls is labeled by loan API endpoint and status class.
	RemoteCalls *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
// A nil reg registers with the default registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "leadgw_http_requests_total",
			Help: "Total HTTP requests processed, labeled by status code",
		}, []string{"method", "endpoint", "status"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "leadgw_http_request_duration_seconds",
			Help:    "Latency distribution of HTTP requests",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "endpoint"}),
		LeadsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "leadgw_lead_create_total",
			Help: "Lead creation attempts by outcome",
		}, []string{"outcome"}),
		StatusLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "leadgw_status_lookups_total",
			Help: "Lead status lookups by result",
		}, []string{"result"}),
		Notifications: f.NewCounterVec(prometheus.CounterOpts{
			Name: "leadgw_notifications_total",
			Help: "WhatsApp notifications by template kind and success",
		}, []string{"kind", "success"}),
		RemoteCalls: f.NewCounterVec(prometheus.CounterOpts{
			Name: "leadgw_loan_api_calls_total",
			Help: "Signed loan API calls by endpoint and status",
		}, []string{"endpoint", "status"}),
	}
}

// NewNop returns collectors registered with a throwaway registry, for tests.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
