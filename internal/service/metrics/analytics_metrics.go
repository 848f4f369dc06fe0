package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	DashboardLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "finadvisor",
			Subsystem: "dashboard",
			Name:      "latency_seconds",
			Help:      "Latency of dashboard endpoints",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	DashboardErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "finadvisor",
			Subsystem: "dashboard",
			Name:      "errors_total",
			Help:      "Errors by dashboard endpoint and error code",
		},
		[]string{"endpoint", "code"},
	)

	RateWarnings = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "finadvisor",
			Subsystem: "dashboard",
			Name:      "rate_fallbacks_total",
			Help:      "Dashboards shown in USD because the exchange rate was unavailable",
		},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(DashboardLatency, DashboardErrors, RateWarnings)
	})
}
