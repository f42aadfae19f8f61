package types

import "time"

// AlgorithmResult is one solver's answer for a single evaluation: the tour
// it produced, the tour's total distance, and the wall-clock time spent
// inside the solving step only.
type AlgorithmResult struct {
	Route    []string
	Distance int
	Duration time.Duration
}

// EvaluationReport compares a submitted route against the exact optimum
// and every registered heuristic on the same instance. Correct is true
// whenever the submitted distance equals the optimal distance, regardless
// of city order, so alternate optimal tours count.
type EvaluationReport struct {
	UserRoute       []string
	UserDistance    int
	UserDuration    time.Duration
	OptimalRoute    []string
	OptimalDistance int
	Correct         bool
	Algorithms      map[string]AlgorithmResult
}
