package engine

import (
	"fmt"

	"github.com/Hirushan-N/tsp-frontend/types"
)

// NearestNeighbor greedily walks from home to the closest unvisited
// selected city until none remain, then returns home. Ties go to the city
// earliest in pool order. O(k^2) in the selection size.
type NearestNeighbor struct{}

// Name implements Solver.
func (NearestNeighbor) Name() string { return "nearest_neighbor" }

// Solve implements Solver.
func (NearestNeighbor) Solve(model types.DistanceModel, home string, selected []string) ([]string, int, error) {
	if len(selected) == 0 {
		return nil, 0, fmt.Errorf("%w: no cities selected", ErrInvalidRoute)
	}

	remaining := orderedSelection(selected)
	visited := make([]bool, len(remaining))
	seq := make([]string, 0, len(remaining))
	current := home

	for len(seq) < len(remaining) {
		next := -1
		for i, city := range remaining {
			if visited[i] {
				continue
			}
			// Strict less keeps the earliest pool-order city on ties,
			// because remaining is already in pool order.
			if next < 0 || model.Distance(current, city) < model.Distance(current, remaining[next]) {
				next = i
			}
		}
		visited[next] = true
		seq = append(seq, remaining[next])
		current = remaining[next]
	}

	return buildTour(home, seq), tourDistance(model, home, seq), nil
}
