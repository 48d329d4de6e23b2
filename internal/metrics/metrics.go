package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application. A nil *Metrics
// records nothing, which keeps unit tests free of registry collisions.
type Metrics struct {
	AuthFailures    *prometheus.CounterVec
	CatalogRequests prometheus.Counter
	StoreErrors     prometheus.Counter
}

// New creates and registers all metrics on the default registry. Call once
// per process.
func New() *Metrics {
	return &Metrics{
		AuthFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "notification_types_auth_failures_total",
			Help: "Total number of rejected authentication attempts by reason",
		}, []string{"reason"}),
		CatalogRequests: promauto.NewCounter(prometheus.CounterOpts{
			Name: "notification_types_catalog_requests_total",
			Help: "Total number of catalog list requests served",
		}),
		StoreErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "notification_types_store_errors_total",
			Help: "Total number of record store failures",
		}),
	}
}

func (m *Metrics) IncAuthFailure(reason string) {
	if m == nil {
		return
	}
	m.AuthFailures.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncCatalogRequest() {
	if m == nil {
		return
	}
	m.CatalogRequests.Inc()
}

func (m *Metrics) IncStoreError() {
	if m == nil {
		return
	}
	m.StoreErrors.Inc()
}
