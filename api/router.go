package api

import (
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Hirushan-N/tsp-frontend/engine"
	"github.com/Hirushan-N/tsp-frontend/store"
)

// Deps bundles everything the HTTP layer needs from the engine.
type Deps struct {
	Generator *engine.Generator
	Sessions  *store.Store
	Evaluator *engine.Evaluator
	Instance  InstanceConfig
	StartTime time.Time
}

// NewRouter creates and configures a new router with all API endpoints
func NewRouter(deps Deps) *mux.Router {
	r := mux.NewRouter()

	// Prometheus scrape endpoint, outside the rate-limited subrouter
	r.Handle("/metrics", promhttp.Handler())

	api := r.PathPrefix("/api").Subrouter()
	api.Use(Instrument)
	api.Use(RateLimit)

	// Game endpoints
	api.HandleFunc("/instance", NewInstanceHandler(deps.Generator, deps.Sessions, deps.Instance)).Methods("POST")
	api.HandleFunc("/evaluate", EvaluateHandler(deps.Sessions, deps.Evaluator)).Methods("POST")
	api.HandleFunc("/complexity", ComplexityHandler).Methods("GET")

	// Operational endpoint
	api.HandleFunc("/health", HealthHandler(deps.Sessions, deps.StartTime)).Methods("GET")

	return r
}
