// pix-broker/pkg/metrics/metrics.go
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pix",
			Name:      "requests_total",
			Help:      "Total checkout requests per service",
		},
		[]string{"service", "status", "method"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pix",
			Name:      "request_duration_seconds",
			Help:      "Checkout request duration per service",
			Buckets: []float64{
				0.01, 0.02, 0.03, 0.05, 0.08, 0.12,
				0.2, 0.3, 0.5, 0.8, 1.2, 2, 3, 5,
			},
		},
		[]string{"service", "status"},
	)

	GatewayChargesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pix",
			Name:      "gateway_charges_total",
			Help:      "PIX charge attempts per payment provider",
		},
		[]string{"gateway", "status"},
	)
)

func init() {
	prometheus.MustRegister(RequestsTotal, RequestDuration, GatewayChargesTotal)
}

// Helper biar rapi dipanggil dari handler
func IncRequest(service, status, method string) {
	RequestsTotal.WithLabelValues(service, status, method).Inc()
}

func ObserveDuration(service, status string, seconds float64) {
	RequestDuration.WithLabelValues(service, status).Observe(seconds)
}

func IncGatewayCharge(gateway, status string) {
	GatewayChargesTotal.WithLabelValues(gateway, status).Inc()
}
