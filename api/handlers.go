package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Hirushan-N/tsp-frontend/engine"
	"github.com/Hirushan-N/tsp-frontend/store"
	"github.com/Hirushan-N/tsp-frontend/types"
)

// InstanceConfig carries the generator parameters for new games.
type InstanceConfig struct {
	PoolSize int
	MinDist  int
	MaxDist  int
}

// NewInstanceHandler generates a fresh distance instance, stores it under
// a new session, and returns the full matrix so the frontend can render
// the map.
func NewInstanceHandler(gen *engine.Generator, sessions *store.Store, cfg InstanceConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		model, home, err := gen.NewInstance(cfg.PoolSize, cfg.MinDist, cfg.MaxDist)
		if err != nil {
			slog.Error("instance generation failed", "err", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		sess := sessions.Create(model, home)
		sessionsCreated.Inc()
		slog.Info("instance created", "session_id", sess.ID, "home", home, "cities", len(model.Cities))

		writeJSON(w, http.StatusOK, InstanceResponse{
			SessionID:      sess.ID,
			Cities:         model.Cities,
			HomeCity:       home,
			DistanceMatrix: model.Matrix,
		})
	}
}

// EvaluateHandler judges a submitted route against the exact optimum and
// every heuristic for the instance the session refers to.
func EvaluateHandler(sessions *store.Store, eval *engine.Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EvaluateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		sess, err := sessions.Get(req.SessionID)
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}

		report, err := eval.Evaluate(sess, req.Route)
		if err != nil {
			if errors.Is(err, engine.ErrInvalidRoute) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			slog.Error("evaluation failed", "session_id", sess.ID, "err", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		algorithms := make(map[string]AlgorithmReport, len(report.Algorithms))
		for name, res := range report.Algorithms {
			solverDuration.WithLabelValues(name).Observe(res.Duration.Seconds())
			algorithms[name] = AlgorithmReport{
				Route:      res.Route,
				Distance:   res.Distance,
				DurationMs: durationMs(res.Duration),
			}
		}
		slog.Info("route evaluated",
			"session_id", sess.ID,
			"correct", report.Correct,
			"your_distance", report.UserDistance,
			"optimal_distance", report.OptimalDistance,
		)

		writeJSON(w, http.StatusOK, EvaluateResponse{
			Correct:         report.Correct,
			Message:         resultMessage(report),
			YourRoute:       report.UserRoute,
			YourDistance:    report.UserDistance,
			OptimalRoute:    report.OptimalRoute,
			OptimalDistance: report.OptimalDistance,
			Algorithms:      algorithms,
		})
	}
}

// ComplexityHandler returns the static complexity notes per algorithm.
func ComplexityHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, engine.Complexity())
}

// HealthHandler reports process uptime and the number of live sessions.
func HealthHandler(sessions *store.Store, start time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			UptimeSeconds: time.Since(start).Seconds(),
			Sessions:      sessions.Len(),
		})
	}
}

func resultMessage(report types.EvaluationReport) string {
	if report.Correct {
		return fmt.Sprintf("Correct! Your route matches the optimal distance of %d.", report.OptimalDistance)
	}
	return fmt.Sprintf("Not optimal: your route covers %d, the optimum is %d.",
		report.UserDistance, report.OptimalDistance)
}

func durationMs(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
