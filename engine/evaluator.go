package engine

import (
	"fmt"
	"time"

	"github.com/Hirushan-N/tsp-frontend/types"
)

// Evaluator judges a submitted route against the exact optimum and a set
// of registered heuristics, all over the same instance. It holds no
// per-call state, so one Evaluator serves concurrent requests.
type Evaluator struct {
	exact      Solver
	heuristics []Solver
}

// NewEvaluator returns an Evaluator backed by the brute-force exact solver
// plus the given heuristics.
func NewEvaluator(heuristics ...Solver) *Evaluator {
	return &Evaluator{exact: BruteForce{}, heuristics: heuristics}
}

// Evaluate validates the submitted route, then runs the exact solver and
// every heuristic over the cities the route selected, timing each solving
// step. Validation failures surface before any solver runs; a solver
// failure aborts the whole call, so a report always covers every
// algorithm. Correctness is distance equality with the optimum, so an
// alternate optimal ordering still counts as correct.
func (e *Evaluator) Evaluate(sess types.Session, route []string) (types.EvaluationReport, error) {
	selected, err := validateRoute(sess.Model, sess.HomeCity, route)
	if err != nil {
		return types.EvaluationReport{}, err
	}

	report := types.EvaluationReport{
		UserRoute:  route,
		Algorithms: make(map[string]types.AlgorithmResult, len(e.heuristics)+1),
	}

	start := time.Now()
	report.UserDistance = sess.Model.RouteDistance(route)
	report.UserDuration = time.Since(start)

	optimal, err := e.run(e.exact, sess, selected, &report)
	if err != nil {
		return types.EvaluationReport{}, err
	}
	report.OptimalRoute = optimal.Route
	report.OptimalDistance = optimal.Distance

	for _, h := range e.heuristics {
		if _, err := e.run(h, sess, selected, &report); err != nil {
			return types.EvaluationReport{}, err
		}
	}

	report.Correct = report.UserDistance == report.OptimalDistance
	return report, nil
}

func (e *Evaluator) run(s Solver, sess types.Session, selected []string, report *types.EvaluationReport) (types.AlgorithmResult, error) {
	start := time.Now()
	route, dist, err := s.Solve(sess.Model, sess.HomeCity, selected)
	elapsed := time.Since(start)
	if err != nil {
		return types.AlgorithmResult{}, fmt.Errorf("%s: %w", s.Name(), err)
	}
	result := types.AlgorithmResult{Route: route, Distance: dist, Duration: elapsed}
	report.Algorithms[s.Name()] = result
	return result, nil
}

// validateRoute checks the tour rules for a submission: it must start and
// end at home, reference only cities of the model, visit at least one
// non-home city, and repeat no city besides the mandatory home endpoints.
// It returns the selected cities in submission order.
func validateRoute(model types.DistanceModel, home string, route []string) ([]string, error) {
	if len(route) < 2 || route[0] != home || route[len(route)-1] != home {
		return nil, fmt.Errorf("%w: route must start and end at home city %s", ErrInvalidRoute, home)
	}

	middle := route[1 : len(route)-1]
	if len(middle) == 0 {
		return nil, fmt.Errorf("%w: no cities selected", ErrInvalidRoute)
	}

	seen := make(map[string]bool, len(middle))
	selected := make([]string, 0, len(middle))
	for _, city := range middle {
		if city == home {
			return nil, fmt.Errorf("%w: home city %s may only appear at the endpoints", ErrInvalidRoute, home)
		}
		if !model.Contains(city) {
			return nil, fmt.Errorf("%w: unknown city %s", ErrInvalidRoute, city)
		}
		if seen[city] {
			return nil, fmt.Errorf("%w: city %s visited twice", ErrInvalidRoute, city)
		}
		seen[city] = true
		selected = append(selected, city)
	}
	if len(selected) > MaxSelected {
		return nil, fmt.Errorf("%w: at most %d cities can be solved exactly, got %d",
			ErrInvalidRoute, MaxSelected, len(selected))
	}

	return selected, nil
}
