package engine

import (
	"fmt"
	"math"

	"github.com/Hirushan-N/tsp-frontend/types"
)

// MaxSelected caps the exact solver's input. 8 cities mean at most
// 8! = 40320 permutations, which keeps a brute-force solve interactive.
const MaxSelected = 8

// BruteForce enumerates every permutation of the selected cities and keeps
// the shortest closed tour. The first minimal permutation encountered in
// enumeration order wins ties, so the result is deterministic.
type BruteForce struct{}

// Name implements Solver.
func (BruteForce) Name() string { return "bruteforce" }

// Solve implements Solver by exhaustive permutation search. A selection of
// one city yields the unique out-and-back tour; an empty or oversized
// selection is rejected before any enumeration starts.
func (BruteForce) Solve(model types.DistanceModel, home string, selected []string) ([]string, int, error) {
	if len(selected) == 0 {
		return nil, 0, fmt.Errorf("%w: no cities selected", ErrInvalidRoute)
	}
	if len(selected) > MaxSelected {
		return nil, 0, fmt.Errorf("%w: at most %d cities can be solved exactly, got %d",
			ErrInvalidRoute, MaxSelected, len(selected))
	}

	perm := orderedSelection(selected)
	bestDist := math.MaxInt
	var bestSeq []string

	var permute func(k int)
	permute = func(k int) {
		if k == len(perm) {
			if d := tourDistance(model, home, perm); d < bestDist {
				bestDist = d
				bestSeq = append(bestSeq[:0:0], perm...)
			}
			return
		}
		for i := k; i < len(perm); i++ {
			perm[k], perm[i] = perm[i], perm[k]
			permute(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	permute(0)

	return buildTour(home, bestSeq), bestDist, nil
}
