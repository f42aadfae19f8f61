package engine_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hirushan-N/tsp-frontend/engine"
	"github.com/Hirushan-N/tsp-frontend/types"
)

func newTestEvaluator() *engine.Evaluator {
	return engine.NewEvaluator(
		engine.NearestNeighbor{},
		engine.MSTPrim{},
		engine.NewRandomSearch(200, rand.New(rand.NewSource(13))),
	)
}

func sessionOver(model types.DistanceModel, home string) types.Session {
	return types.Session{ID: "test-session", Model: model, HomeCity: home, CreatedAt: time.Now()}
}

func TestEvaluate_OptimalSubmission(t *testing.T) {
	sess := sessionOver(triangleModel(), "A")

	report, err := newTestEvaluator().Evaluate(sess, []string{"A", "B", "C", "A"})
	require.NoError(t, err)

	assert.True(t, report.Correct)
	assert.Equal(t, 225, report.UserDistance)
	assert.Equal(t, 225, report.OptimalDistance)

	for _, name := range []string{"bruteforce", "nearest_neighbor", "mst_prim", "random_search"} {
		res, ok := report.Algorithms[name]
		require.True(t, ok, "missing algorithm %s", name)
		assert.NotEmpty(t, res.Route)
		assert.GreaterOrEqual(t, res.Duration, time.Duration(0))
		assert.LessOrEqual(t, report.OptimalDistance, res.Distance)
	}
}

func TestEvaluate_AlternateOptimalIsCorrect(t *testing.T) {
	// A-C-B-A also sums to 225 even though the exact solver returns
	// A-B-C-A: equal distance counts as correct.
	sess := sessionOver(triangleModel(), "A")

	report, err := newTestEvaluator().Evaluate(sess, []string{"A", "C", "B", "A"})
	require.NoError(t, err)

	assert.True(t, report.Correct)
	assert.NotEqual(t, report.UserRoute, report.OptimalRoute)
}

func TestEvaluate_SuboptimalSubmission(t *testing.T) {
	sess := sessionOver(diamondModel(), "A")

	report, err := newTestEvaluator().Evaluate(sess, []string{"A", "C", "B", "D", "A"})
	require.NoError(t, err)

	assert.False(t, report.Correct)
	assert.Equal(t, 80, report.UserDistance)
	assert.Equal(t, 60, report.OptimalDistance)
}

func TestEvaluate_SubsetSelection(t *testing.T) {
	// Leaving C out of the submission means the optimum is computed over
	// {B, D} only.
	sess := sessionOver(diamondModel(), "A")

	report, err := newTestEvaluator().Evaluate(sess, []string{"A", "B", "D", "A"})
	require.NoError(t, err)

	assert.Equal(t, 10+20+30, report.UserDistance)
	assert.True(t, report.Correct)
	require.Len(t, report.OptimalRoute, 4)
}

func TestEvaluate_ExactSolversOwnRouteIsCorrect(t *testing.T) {
	model, home, err := engine.NewGenerator(rand.New(rand.NewSource(21))).NewInstance(7, 50, 100)
	require.NoError(t, err)

	var selected []string
	for _, city := range model.Cities {
		if city != home {
			selected = append(selected, city)
		}
	}
	optimal, _, err := engine.BruteForce{}.Solve(model, home, selected)
	require.NoError(t, err)

	report, err := newTestEvaluator().Evaluate(sessionOver(model, home), optimal)
	require.NoError(t, err)
	assert.True(t, report.Correct)
}

func TestEvaluate_InvalidRoutes(t *testing.T) {
	sess := sessionOver(triangleModel(), "A")

	tests := []struct {
		name  string
		route []string
	}{
		{"nil route", nil},
		{"too short", []string{"A"}},
		{"wrong start", []string{"B", "C", "A"}},
		{"wrong end", []string{"A", "B", "C"}},
		{"no cities selected", []string{"A", "A"}},
		{"duplicate city", []string{"A", "B", "B", "A"}},
		{"home in the middle", []string{"A", "B", "A", "C", "A"}},
		{"unknown city", []string{"A", "B", "Z", "A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestEvaluator().Evaluate(sess, tt.route)
			assert.ErrorIs(t, err, engine.ErrInvalidRoute)
		})
	}
}

func TestEvaluate_FailsAtomically(t *testing.T) {
	// A misconfigured random search must fail the whole call instead of
	// returning a partial report.
	eval := engine.NewEvaluator(engine.NewRandomSearch(0, rand.New(rand.NewSource(1))))

	report, err := eval.Evaluate(sessionOver(triangleModel(), "A"), []string{"A", "B", "C", "A"})
	assert.ErrorIs(t, err, engine.ErrSearchBudget)
	assert.Empty(t, report.Algorithms)
}
