package engine

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/Hirushan-N/tsp-frontend/types"
)

// RandomSearch samples a fixed number of random permutations of the
// selection and keeps the best tour found. It is a Monte-Carlo baseline
// with no optimality guarantee; a fixed seed reproduces the exact sample
// sequence, which is what the tests rely on.
type RandomSearch struct {
	budget int
	mu     sync.Mutex // evaluations may run concurrently over one rng
	rng    *rand.Rand
}

// NewRandomSearch returns a sampler drawing budget permutations per solve
// from the given random source.
func NewRandomSearch(budget int, rng *rand.Rand) *RandomSearch {
	return &RandomSearch{budget: budget, rng: rng}
}

// Name implements Solver.
func (s *RandomSearch) Name() string { return "random_search" }

// Solve implements Solver.
func (s *RandomSearch) Solve(model types.DistanceModel, home string, selected []string) ([]string, int, error) {
	if s.budget <= 0 {
		return nil, 0, fmt.Errorf("%w: got %d", ErrSearchBudget, s.budget)
	}
	if len(selected) == 0 {
		return nil, 0, fmt.Errorf("%w: no cities selected", ErrInvalidRoute)
	}

	perm := orderedSelection(selected)
	bestDist := math.MaxInt
	var bestSeq []string

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < s.budget; i++ {
		s.rng.Shuffle(len(perm), func(a, b int) {
			perm[a], perm[b] = perm[b], perm[a]
		})
		if d := tourDistance(model, home, perm); d < bestDist {
			bestDist = d
			bestSeq = append(bestSeq[:0:0], perm...)
		}
	}

	return buildTour(home, bestSeq), bestDist, nil
}
