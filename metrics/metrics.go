package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "colorswatch", Name: "http_requests_total", Help: "Handled HTTP requests by route, method and status."},
		[]string{"route", "method", "status"},
	)
	ColorMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "colorswatch", Name: "color_mutations_total", Help: "Color create/delete attempts by action and outcome."},
		[]string{"action", "outcome"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(ColorMutations)
}
