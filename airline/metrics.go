// SPDX-License-Identifier: MIT

package airline

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query outcome labels.
const (
	resultFound   = "found"
	resultNoRoute = "no_route"
	resultError   = "error"
)

var (
	// routeQueryTotal counts route queries by mode ("cheapest", "legs",
	// "reachable") and result.
	routeQueryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skyroute_route_queries_total",
		Help: "Total route queries by mode and result",
	}, []string{"mode", "result"})

	routeQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "skyroute_route_query_duration_seconds",
		Help:    "Route query duration",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
	}, []string{"mode"})

	routeLegs = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "skyroute_route_legs",
		Help:    "Number of legs in returned itineraries",
		Buckets: []float64{1, 2, 3, 4, 6, 8},
	})
)

// observe records one finished query.
func observe(mode string, start time.Time, err error) {
	routeQueryDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
	switch {
	case err == nil:
		routeQueryTotal.WithLabelValues(mode, resultFound).Inc()
	case isNoRoute(err):
		routeQueryTotal.WithLabelValues(mode, resultNoRoute).Inc()
	default:
		routeQueryTotal.WithLabelValues(mode, resultError).Inc()
	}
}
