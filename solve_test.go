package allometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/allometry"
)

func mustEquation(t *testing.T, f allometry.Form, c allometry.Coefficients) *allometry.Equation {
	t.Helper()
	eq, err := allometry.NewEquation(f, c)
	require.NoError(t, err)
	return eq
}

// roundTrip checks that inverting f(x) with the given policy recovers x.
func roundTrip(t *testing.T, eq *allometry.Equation, policy allometry.RootPolicy, xs ...float64) {
	t.Helper()
	s := allometry.DefaultSolver()
	s.Policy = policy
	for _, x := range xs {
		y, err := eq.Evaluate(x)
		require.NoError(t, err, "%s at x=%g", eq, x)
		got, err := s.Invert(eq, y)
		require.NoError(t, err, "%s at y=%g", eq, y)
		assert.InDelta(t, x, got, 1e-6*math.Max(1, math.Abs(x)), "%s x=%g", eq, x)
	}
}

// ============================================================
// Round trips
// ============================================================

func TestRoundTrip_Injective(t *testing.T) {
	cases := []struct {
		form   allometry.Form
		coeffs allometry.Coefficients
		xs     []float64
	}{
		{allometry.Linear, allometry.Coef(1, 2), []float64{-3, 0, 5.5}},
		{allometry.Cubic, allometry.Coef(1, 2, 0.1, 0.01), []float64{-5, 0, 3, 12}},
		{allometry.ExPow1, allometry.Coef(0.5, 0.1, 0.2), []float64{-2, 0, 10}},
		{allometry.ExPow2, allometry.Coef(0.5, 0.1, 0.4), []float64{0.25, 4, 30}},
		{allometry.ExPow3, allometry.Coef(0.5, 0.1, 0.04), []float64{-1, 3, 20}},
		{allometry.LogLog1, allometry.Coef(0.28858, 1.74158, 0.03472), []float64{1, 15, 80}},
		{allometry.LogLog2, allometry.Coef(-1.27832, 5.54199, 0.05757), []float64{2, 25, 100}},
		{allometry.LogLog3, allometry.Coef(-1.68905, 5.95471, 0.00136), []float64{2, 25, 100}},
		{allometry.LogLog4, allometry.Coef(0.3, 1.5, 0.0002), []float64{1, 10, 60}},
	}
	for _, tc := range cases {
		t.Run(tc.form.String(), func(t *testing.T) {
			roundTrip(t, mustEquation(t, tc.form, tc.coeffs), allometry.SmallestRoot, tc.xs...)
		})
	}
}

func TestRoundTrip_QuadraticSmallestRoot(t *testing.T) {
	// ACRU dbh -> age is concave; the smaller root is the measured one.
	eq := mustEquation(t, allometry.Quadratic, allometry.Coef(0.19481, 0.65916, -0.00084))
	roundTrip(t, eq, allometry.SmallestRoot, 5, 20, 60)
}

func TestRoundTrip_QuarticBranches(t *testing.T) {
	// Minimum at x = -1: the left branch holds the smallest root, the
	// right branch the smallest non-negative one.
	eq := mustEquation(t, allometry.Quartic, allometry.Coef(1, 2, 0, 0, 0.5))
	roundTrip(t, eq, allometry.SmallestRoot, -2, -3)
	roundTrip(t, eq, allometry.SmallestNonNegativeRoot, 0.5, 2)
}

func TestRoundTrip_ExPow4Branches(t *testing.T) {
	// Vertex at x = -5.
	eq := mustEquation(t, allometry.ExPow4, allometry.Coef(0.2, 0.05, 0.01))
	roundTrip(t, eq, allometry.SmallestRoot, -8, -20)
	roundTrip(t, eq, allometry.SmallestNonNegativeRoot, 3, 10)
}

// ============================================================
// Closed forms
// ============================================================

func TestSolveInverse_Linear(t *testing.T) {
	// ACRU age -> dbh.
	x, err := allometry.SolveInverse(allometry.Linear, allometry.Coef(-0.28784, 1.61264), 13.16)
	require.NoError(t, err)
	assert.InDelta(t, (13.16+0.28784)/1.61264, x, 1e-12)
}

func TestSolveInverse_LinearZeroSlope(t *testing.T) {
	_, err := allometry.SolveInverse(allometry.Linear, allometry.Coef(2, 0), 3)
	assert.ErrorIs(t, err, allometry.ErrDomain)

	// y == a: infinitely many solutions, still degenerate.
	_, err = allometry.SolveInverse(allometry.Linear, allometry.Coef(2, 0), 2)
	assert.ErrorIs(t, err, allometry.ErrDomain)
}

func TestSolveInverse_QuadraticDegradesToLinear(t *testing.T) {
	x, err := allometry.SolveInverse(allometry.Quadratic, allometry.Coef(1, 2, 0), 7)
	require.NoError(t, err)
	assert.InDelta(t, 3, x, 1e-12)
}

func TestSolveInverse_QuadraticNoRealRoot(t *testing.T) {
	_, err := allometry.SolveInverse(allometry.Quadratic, allometry.Coef(1, 0, 1), 0)
	assert.ErrorIs(t, err, allometry.ErrDomain)
}

func TestSolveInverse_QuadraticTwoRoots(t *testing.T) {
	// x^2 - 5x + 6 = 0 -> {2, 3}.
	eq := mustEquation(t, allometry.Quadratic, allometry.Coef(6, -5, 1))
	roots, err := allometry.DefaultSolver().Roots(eq, 0)
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.InDelta(t, 2, roots[0], 1e-12)
	assert.InDelta(t, 3, roots[1], 1e-12)

	x, err := eq.Invert(0)
	require.NoError(t, err)
	assert.InDelta(t, 2, x, 1e-12)
}

func TestSolveInverse_RootPolicy(t *testing.T) {
	// x^2 - 4 = 0 -> {-2, 2}.
	eq := mustEquation(t, allometry.Quadratic, allometry.Coef(-4, 0, 1))

	x, err := allometry.Solver{Policy: allometry.SmallestRoot}.Invert(eq, 0)
	require.NoError(t, err)
	assert.InDelta(t, -2, x, 1e-12)

	x, err = allometry.Solver{Policy: allometry.SmallestNonNegativeRoot}.Invert(eq, 0)
	require.NoError(t, err)
	assert.InDelta(t, 2, x, 1e-12)

	// Both roots negative: (x+1)(x+3).
	neg := mustEquation(t, allometry.Quadratic, allometry.Coef(3, 4, 1))
	_, err = allometry.Solver{Policy: allometry.SmallestNonNegativeRoot}.Invert(neg, 0)
	assert.ErrorIs(t, err, allometry.ErrDomain)
}

func TestSolveInverse_CubicThreeRoots(t *testing.T) {
	// (x-1)(x-2)(x-3) = x^3 - 6x^2 + 11x - 6.
	eq := mustEquation(t, allometry.Cubic, allometry.Coef(-6, 11, -6, 1))
	roots, err := allometry.DefaultSolver().Roots(eq, 0)
	require.NoError(t, err)
	require.Len(t, roots, 3)
	for i, want := range []float64{1, 2, 3} {
		assert.InDelta(t, want, roots[i], 1e-9)
	}
}

func TestSolveInverse_CubicDoubleRoot(t *testing.T) {
	// (x-1)^2 (x+2) = x^3 - 3x + 2.
	eq := mustEquation(t, allometry.Cubic, allometry.Coef(2, -3, 0, 1))
	roots, err := allometry.DefaultSolver().Roots(eq, 0)
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.InDelta(t, -2, roots[0], 1e-9)
	assert.InDelta(t, 1, roots[1], 1e-9)
}

func TestSolveInverse_QuarticNoRealRoot(t *testing.T) {
	_, err := allometry.SolveInverse(allometry.Quartic, allometry.Coef(1, 0, 0, 0, 1), 0)
	assert.ErrorIs(t, err, allometry.ErrDomain)
}

func TestSolveInverse_QuarticDegradesToCubic(t *testing.T) {
	x, err := allometry.SolveInverse(allometry.Quartic, allometry.Coef(0, 0, 0, 1, 0), 8)
	require.NoError(t, err)
	assert.InDelta(t, 2, x, 1e-9)
}

// ============================================================
// Transcendental forms
// ============================================================

func TestSolveInverse_NonPositiveObservation(t *testing.T) {
	for _, f := range []allometry.Form{allometry.LogLog1, allometry.LogLog3, allometry.ExPow1, allometry.ExPow2} {
		for _, y := range []float64{0, -1} {
			_, err := allometry.SolveInverse(f, allometry.Coef(1, 1, 1), y)
			assert.ErrorIs(t, err, allometry.ErrDomain, "%s y=%g", f, y)
		}
	}
}

func TestSolveInverse_LogLog1ZeroSlope(t *testing.T) {
	_, err := allometry.SolveInverse(allometry.LogLog1, allometry.Coef(1, 0, 1), 3)
	assert.ErrorIs(t, err, allometry.ErrDomain)
}

func TestSolveInverse_LogLogConstant(t *testing.T) {
	for _, f := range []allometry.Form{allometry.LogLog2, allometry.LogLog3, allometry.LogLog4} {
		eq := mustEquation(t, f, allometry.Coef(0, 0, 0))

		// y == e^a holds for every x.
		_, err := eq.Invert(1)
		assert.ErrorIs(t, err, allometry.ErrDomain, f.String())
		assert.ErrorContains(t, err, "infinitely many", f.String())

		roots, err := allometry.DefaultSolver().Roots(eq, 1)
		assert.ErrorIs(t, err, allometry.ErrDomain, f.String())
		assert.Empty(t, roots)

		_, err = eq.Invert(2)
		assert.ErrorIs(t, err, allometry.ErrDomain, f.String())
		assert.ErrorContains(t, err, "no solution", f.String())
	}
}

func TestSolveInverse_LogLogNoSolution(t *testing.T) {
	_, err := allometry.SolveInverse(allometry.LogLog3, allometry.Coef(0, 1, 0.001), 1e-40)
	assert.ErrorIs(t, err, allometry.ErrDomain)
}

func TestSolveInverse_ExPow2NegativeRootRejected(t *testing.T) {
	// 0.1u^2 + 0.2u + 0.5 = ln y has no u >= 0 when ln y < 0.5.
	_, err := allometry.SolveInverse(allometry.ExPow2, allometry.Coef(0.5, 0.1, 0.4), 1)
	assert.ErrorIs(t, err, allometry.ErrDomain)
}

func TestSolveInverse_NonFiniteObservation(t *testing.T) {
	_, err := allometry.SolveInverse(allometry.Linear, allometry.Coef(1, 1), math.Inf(1))
	assert.ErrorIs(t, err, allometry.ErrDomain)
}

// ============================================================
// Iteration cap
// ============================================================

func TestSolver_ConvergenceCap(t *testing.T) {
	eq := mustEquation(t, allometry.Cubic, allometry.Coef(1, 2, 0.1, 0.01))
	_, err := allometry.Solver{MaxIterations: 1}.Invert(eq, 56.68)
	assert.ErrorIs(t, err, allometry.ErrConvergence)
	assert.Equal(t, "convergence", allometry.KindOf(err))
}

func TestSolver_ZeroValueUsesDefaults(t *testing.T) {
	eq := mustEquation(t, allometry.Cubic, allometry.Coef(1, 2, 0.1, 0.01))
	x, err := allometry.Solver{}.Invert(eq, 56.68)
	require.NoError(t, err)
	assert.InDelta(t, 12, x, 1e-6)
}

func TestParseRootPolicy(t *testing.T) {
	p, err := allometry.ParseRootPolicy("nonneg")
	require.NoError(t, err)
	assert.Equal(t, allometry.SmallestNonNegativeRoot, p)
	assert.Equal(t, "nonneg", p.String())

	p, err = allometry.ParseRootPolicy("smallest")
	require.NoError(t, err)
	assert.Equal(t, allometry.SmallestRoot, p)

	_, err = allometry.ParseRootPolicy("largest")
	assert.Error(t, err)
}
