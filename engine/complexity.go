package engine

// Complexity returns the static per-algorithm complexity notes shown to
// the player. The map is built fresh per call so callers cannot corrupt
// the table.
func Complexity() map[string]string {
	return map[string]string{
		"bruteforce":       "O(k!) time: enumerates every permutation of the k selected cities, guaranteeing the optimum but only tractable for k <= 8.",
		"nearest_neighbor": "O(k^2) time: repeatedly steps to the closest unvisited city. Fast, with no optimality guarantee.",
		"mst_prim":         "O(k^2) time: builds a minimum spanning tree with Prim's algorithm and walks it pre-order. A 2-approximation when distances obey the triangle inequality.",
		"random_search":    "O(b*k) time for a budget of b samples: draws random permutations and keeps the best. A Monte-Carlo baseline; quality is probabilistic.",
	}
}
