package api

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "tsp_http_request_duration_seconds",
			Help: "Duration of HTTP requests by path and method",
		},
		[]string{"path", "method"},
	)
	solverDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "tsp_solver_duration_seconds",
			Help: "Wall-clock time spent inside each solving algorithm",
		},
		[]string{"algorithm"},
	)
	sessionsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tsp_sessions_created_total",
			Help: "Total number of game instances generated",
		},
	)
)

func init() {
	prometheus.MustRegister(requestDuration, solverDuration, sessionsCreated)
}
