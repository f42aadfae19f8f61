package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/Hirushan-N/tsp-frontend/types"
)

// MSTPrim approximates the optimal tour by building a minimum spanning
// tree over home plus the selected cities with Prim's algorithm, rooted at
// home, then walking the tree pre-order and closing the cycle back home.
// With an adjacency-matrix Prim this is O(k^2) in the selection size.
//
// Tie-break rule: Prim adds the lowest-index vertex among equal-cost
// candidates, and a vertex's children are visited in ascending order of
// (edge weight, pool order). Vertex index order is home first, then the
// selection in pool order, so the tour is fully deterministic.
type MSTPrim struct{}

// Name implements Solver.
func (MSTPrim) Name() string { return "mst_prim" }

// Solve implements Solver.
func (MSTPrim) Solve(model types.DistanceModel, home string, selected []string) ([]string, int, error) {
	if len(selected) == 0 {
		return nil, 0, fmt.Errorf("%w: no cities selected", ErrInvalidRoute)
	}

	vertices := append([]string{home}, orderedSelection(selected)...)
	n := len(vertices)
	dist := func(i, j int) int { return model.Distance(vertices[i], vertices[j]) }

	// Array-based Prim rooted at vertex 0 (home). minEdge[v] is the
	// cheapest known edge connecting v to the tree, parent[v] its tree
	// endpoint.
	inTree := make([]bool, n)
	minEdge := make([]int, n)
	parent := make([]int, n)
	for v := range minEdge {
		minEdge[v] = math.MaxInt
		parent[v] = -1
	}
	minEdge[0] = 0

	for range vertices {
		next := -1
		for v := 0; v < n; v++ {
			if !inTree[v] && (next < 0 || minEdge[v] < minEdge[next]) {
				next = v
			}
		}
		inTree[next] = true
		for v := 0; v < n; v++ {
			if !inTree[v] && dist(next, v) < minEdge[v] {
				minEdge[v] = dist(next, v)
				parent[v] = next
			}
		}
	}

	children := make([][]int, n)
	for v := 1; v < n; v++ {
		children[parent[v]] = append(children[parent[v]], v)
	}
	for v := range children {
		v := v
		sort.Slice(children[v], func(i, j int) bool {
			a, b := children[v][i], children[v][j]
			if dist(v, a) != dist(v, b) {
				return dist(v, a) < dist(v, b)
			}
			return a < b
		})
	}

	// Pre-order walk from home; skipping back-edges turns the tree walk
	// into a Hamiltonian cycle approximation.
	seq := make([]string, 0, n-1)
	var walk func(v int)
	walk = func(v int) {
		if v != 0 {
			seq = append(seq, vertices[v])
		}
		for _, c := range children[v] {
			walk(c)
		}
	}
	walk(0)

	return buildTour(home, seq), tourDistance(model, home, seq), nil
}
