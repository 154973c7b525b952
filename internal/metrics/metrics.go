package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "animals_registry"

	LabelMethod = "method"
	LabelRoute  = "route"
	LabelStatus = "status"
	LabelResult = "result"

	ResultOK          = "ok"
	ResultNoDatabase  = "no_database"
	ResultUnknownData = "unknown_class"
	ResultError       = "error"
)

// HTTP
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de requests HTTP por método, ruta y status.",
		},
		[]string{LabelMethod, LabelRoute, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latencia de requests HTTP.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{LabelMethod, LabelRoute},
	)
)

// Mammals
var (
	RefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mammals_refresh_total",
			Help:      "Refresh del set de mamíferos por resultado.",
		},
		[]string{LabelResult},
	)

	MammalsInSet = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mammals_in_set",
			Help:      "Cantidad de mamíferos tras el último refresh exitoso.",
		},
	)
)

// RecordRefresh registra el resultado de un refresh; count solo aplica si ok.
func RecordRefresh(result string, count int) {
	RefreshTotal.WithLabelValues(result).Inc()
	if result == ResultOK {
		MammalsInSet.Set(float64(count))
	}
}
