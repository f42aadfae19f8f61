package engine

import (
	"sort"

	"github.com/Hirushan-N/tsp-frontend/types"
)

// Solver is one tour-construction algorithm. Solve returns a closed tour
// that starts and ends at home and visits every selected city exactly
// once, together with the tour's total distance. Implementations must be
// deterministic for a given selection (random search is deterministic for
// a given seed). The Evaluator treats solvers as an open collection, so
// adding an algorithm means registering another implementation, not
// touching the evaluation flow.
type Solver interface {
	Name() string
	Solve(model types.DistanceModel, home string, selected []string) ([]string, int, error)
}

// orderedSelection copies the selection and sorts it by city pool order,
// the canonical enumeration order shared by every solver's tie-break.
func orderedSelection(selected []string) []string {
	out := make([]string, len(selected))
	copy(out, selected)
	sort.Slice(out, func(i, j int) bool {
		return types.PoolIndex(out[i]) < types.PoolIndex(out[j])
	})
	return out
}

// buildTour assembles the closed route home -> seq... -> home.
func buildTour(home string, seq []string) []string {
	tour := make([]string, 0, len(seq)+2)
	tour = append(tour, home)
	tour = append(tour, seq...)
	tour = append(tour, home)
	return tour
}

// tourDistance computes the length of the closed tour home -> seq -> home
// without materializing the route slice.
func tourDistance(model types.DistanceModel, home string, seq []string) int {
	total := model.Distance(home, seq[0])
	for i := 1; i < len(seq); i++ {
		total += model.Distance(seq[i-1], seq[i])
	}
	total += model.Distance(seq[len(seq)-1], home)
	return total
}
