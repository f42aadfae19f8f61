package engine

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/Hirushan-N/tsp-frontend/types"
)

// Generator produces fresh random distance instances over the city pool.
// All randomness flows through the injected *rand.Rand, so tests can pin a
// seed and production can seed from the clock.
type Generator struct {
	mu  sync.Mutex // *rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

// NewGenerator returns a Generator drawing from the given random source.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewInstance builds a symmetric distance matrix over the first poolSize
// cities of types.CityPool, with every off-diagonal entry drawn uniformly
// from [minDist, maxDist], and picks a home city uniformly at random. Each
// call returns fresh storage; no slice is shared across calls.
func (g *Generator) NewInstance(poolSize, minDist, maxDist int) (types.DistanceModel, string, error) {
	if poolSize < 2 || poolSize > len(types.CityPool) {
		return types.DistanceModel{}, "", fmt.Errorf("%w: pool size %d must be between 2 and %d",
			ErrConfiguration, poolSize, len(types.CityPool))
	}
	if minDist < 0 || minDist > maxDist {
		return types.DistanceModel{}, "", fmt.Errorf("%w: distance range [%d, %d]",
			ErrConfiguration, minDist, maxDist)
	}

	cities := make([]string, poolSize)
	copy(cities, types.CityPool[:poolSize])

	matrix := make([][]int, poolSize)
	for i := range matrix {
		matrix[i] = make([]int, poolSize)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Fill the upper triangle and mirror it; the diagonal stays zero.
	for i := 0; i < poolSize; i++ {
		for j := i + 1; j < poolSize; j++ {
			d := minDist + g.rng.Intn(maxDist-minDist+1)
			matrix[i][j] = d
			matrix[j][i] = d
		}
	}
	home := cities[g.rng.Intn(poolSize)]

	return types.DistanceModel{Cities: cities, Matrix: matrix}, home, nil
}
