package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/Hirushan-N/tsp-frontend/api"
	"github.com/Hirushan-N/tsp-frontend/engine"
	"github.com/Hirushan-N/tsp-frontend/store"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "err", err)
	}

	port := envInt("PORT", 8080)
	instance := api.InstanceConfig{
		PoolSize: envInt("POOL_SIZE", 10),
		MinDist:  envInt("DIST_MIN", 50),
		MaxDist:  envInt("DIST_MAX", 100),
	}
	budget := envInt("SEARCH_BUDGET", 1000)

	gen := engine.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
	sessions := store.New()
	eval := engine.NewEvaluator(
		engine.NearestNeighbor{},
		engine.MSTPrim{},
		engine.NewRandomSearch(budget, rand.New(rand.NewSource(time.Now().UnixNano()+1))),
	)

	router := api.NewRouter(api.Deps{
		Generator: gen,
		Sessions:  sessions,
		Evaluator: eval,
		Instance:  instance,
		StartTime: time.Now(),
	})

	addr := fmt.Sprintf(":%d", port)
	slog.Info("starting route optimization server",
		"addr", addr,
		"pool_size", instance.PoolSize,
		"distance_range", fmt.Sprintf("[%d,%d]", instance.MinDist, instance.MaxDist),
		"search_budget", budget,
	)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("server exited", "err", err)
		os.Exit(1)
	}
}

// envInt reads an integer environment variable, falling back to the
// default on absence or a malformed value.
func envInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("ignoring malformed environment value", "key", key, "value", raw)
		return def
	}
	return v
}
