package types

// CityPool is the fixed alphabet of city names an instance can draw from.
// Pool position is the canonical ordering used for every deterministic
// tie-break in the solvers.
var CityPool = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

// PoolIndex returns the position of a city in CityPool, or -1 for a name
// that is not part of the pool.
func PoolIndex(city string) int {
	for i, c := range CityPool {
		if c == city {
			return i
		}
	}
	return -1
}

// DistanceModel is a set of cities plus a symmetric travel-distance matrix
// over them. Matrix[i][j] is the distance between Cities[i] and Cities[j];
// the diagonal is zero. A model is never mutated after generation, so it
// can be read by concurrent evaluations without locking.
type DistanceModel struct {
	Cities []string
	Matrix [][]int
}

// Index returns the matrix index of a city, or -1 if the city is not part
// of this model.
func (m DistanceModel) Index(city string) int {
	for i, c := range m.Cities {
		if c == city {
			return i
		}
	}
	return -1
}

// Contains reports whether the city belongs to this model.
func (m DistanceModel) Contains(city string) bool {
	return m.Index(city) >= 0
}

// Distance returns the travel distance between two cities of the model.
// Both cities must belong to the model; callers validate membership first.
func (m DistanceModel) Distance(a, b string) int {
	return m.Matrix[m.Index(a)][m.Index(b)]
}

// RouteDistance sums the edge weights of consecutive city pairs along a
// route. A route with fewer than two cities has distance zero.
func (m DistanceModel) RouteDistance(route []string) int {
	total := 0
	for i := 1; i < len(route); i++ {
		total += m.Distance(route[i-1], route[i])
	}
	return total
}
