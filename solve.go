package allometry

import (
	"fmt"
	"math"
	"sort"
)

// ============================================================
// Root policy
// ============================================================

// RootPolicy picks one solution when an inversion has several real roots.
type RootPolicy int

const (
	// SmallestRoot selects the smallest real root.
	SmallestRoot RootPolicy = iota
	// SmallestNonNegativeRoot selects the smallest root >= 0, the only
	// physically meaningful candidates for tree measurements.
	SmallestNonNegativeRoot
)

// ParseRootPolicy accepts "smallest" and "nonneg".
func ParseRootPolicy(s string) (RootPolicy, error) {
	switch s {
	case "smallest", "":
		return SmallestRoot, nil
	case "nonneg", "smallest-nonnegative":
		return SmallestNonNegativeRoot, nil
	}
	return SmallestRoot, fmt.Errorf("unknown root policy %q", s)
}

func (p RootPolicy) String() string {
	if p == SmallestNonNegativeRoot {
		return "nonneg"
	}
	return "smallest"
}

// ============================================================
// Solver
// ============================================================

const (
	defaultMaxIterations = 200
	defaultTolerance     = 1e-12

	// loglog2..4 are scanned for sign changes on a log-spaced grid.
	scanMinExp  = -9
	scanMaxExp  = 9
	scanPerDec  = 100
	scanSamples = (scanMaxExp-scanMinExp)*scanPerDec + 1
)

// Solver inverts equations. The zero value uses the defaults.
type Solver struct {
	// MaxIterations caps every bracketed refinement.
	MaxIterations int
	// Tolerance is the relative step size at which a root is accepted.
	Tolerance float64
	Policy    RootPolicy
}

// DefaultSolver returns the settings used by SolveInverse and Equation.Invert.
func DefaultSolver() Solver {
	return Solver{MaxIterations: defaultMaxIterations, Tolerance: defaultTolerance, Policy: SmallestRoot}
}

func (s Solver) withDefaults() Solver {
	if s.MaxIterations <= 0 {
		s.MaxIterations = defaultMaxIterations
	}
	if s.Tolerance <= 0 {
		s.Tolerance = defaultTolerance
	}
	return s
}

// SolveInverse finds x such that f(x) = y with the default solver.
func SolveInverse(form Form, coeffs Coefficients, y float64) (float64, error) {
	eq, err := NewEquation(form, coeffs)
	if err != nil {
		return 0, err
	}
	return eq.Invert(y)
}

// Invert solves for the independent variable with the default solver.
func (e *Equation) Invert(y float64) (float64, error) {
	return DefaultSolver().Invert(e, y)
}

// Invert solves e for the independent variable given the observed y.
func (s Solver) Invert(e *Equation, y float64) (float64, error) {
	const op = "invert"
	s = s.withDefaults()
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, domainErr(op, e.form, "observation %g is not finite", y)
	}
	roots, err := s.roots(e, y)
	if err != nil {
		return 0, err
	}
	return s.pick(e.form, y, roots)
}

// Roots returns every real solution of f(x) = y in ascending order,
// before the root policy is applied.
func (s Solver) Roots(e *Equation, y float64) ([]float64, error) {
	s = s.withDefaults()
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return nil, domainErr("roots", e.form, "observation %g is not finite", y)
	}
	return s.roots(e, y)
}

func (s Solver) roots(e *Equation, y float64) ([]float64, error) {
	const op = "invert"
	if e.form.Polynomial() {
		p := e.coeffs.Values()
		p[0] -= y
		return s.polyRoots(e.form, p)
	}
	if !(y > 0) {
		return nil, domainErr(op, e.form, "ln(y) undefined for y=%g", y)
	}
	ly := math.Log(y)
	a, b, c := e.coeffs.At(0), e.coeffs.At(1), e.coeffs.At(2)
	half := c / 2

	switch e.form {
	case ExPow1:
		return s.polyRoots(e.form, []float64{a + half - ly, b})
	case ExPow3:
		return s.polyRoots(e.form, []float64{a - ly, b + half})
	case ExPow4:
		return s.polyRoots(e.form, []float64{a - ly, b, half})
	case ExPow2:
		// Quadratic in u = sqrt(x), u >= 0.
		us, err := s.polyRoots(e.form, []float64{a - ly, half, b})
		if err != nil {
			return nil, err
		}
		var xs []float64
		for _, u := range us {
			if u >= 0 {
				xs = append(xs, u*u)
			}
		}
		return xs, nil
	case LogLog1:
		// Linear in t = ln(ln(x+1)).
		ts, err := s.polyRoots(e.form, []float64{a + half - ly, b})
		if err != nil {
			return nil, err
		}
		var xs []float64
		for _, t := range ts {
			if x := math.Expm1(math.Exp(t)); x > 0 && !math.IsInf(x, 0) {
				xs = append(xs, x)
			}
		}
		return xs, nil
	case LogLog2, LogLog3, LogLog4:
		if b == 0 && c == 0 {
			if a != ly {
				return nil, domainErr(op, e.form, "degenerate equation has no solution")
			}
			return nil, domainErr(op, e.form, "degenerate equation has infinitely many solutions")
		}
		shape := e.form.shape()
		h := func(x float64) float64 {
			return a + b*math.Log(math.Log1p(x)) + growth(shape, x)*half - ly
		}
		dh := func(x float64) float64 {
			return b/((1+x)*math.Log1p(x)) + growthDeriv(shape, x)*half
		}
		return s.scanRoots(e.form, h, dh)
	}
	return nil, configErr(op, invalidForm, "unknown equation form %v", e.form)
}

func (s Solver) pick(f Form, y float64, roots []float64) (float64, error) {
	for _, r := range roots {
		if s.Policy == SmallestNonNegativeRoot && r < 0 {
			continue
		}
		return r, nil
	}
	if len(roots) > 0 {
		return 0, domainErr("invert", f, "no non-negative root for y=%g (smallest root %g)", y, roots[0])
	}
	return 0, domainErr("invert", f, "no real root for y=%g", y)
}

// ============================================================
// Polynomial roots
// ============================================================

// polyRoots returns the real roots of p[0] + p[1]x + ... in ascending
// order. Vanishing leading coefficients lower the degree.
func (s Solver) polyRoots(f Form, p []float64) ([]float64, error) {
	n := len(p) - 1
	for n >= 0 && p[n] == 0 {
		n--
	}
	p = p[:n+1]

	switch n {
	case -1, 0:
		if n == 0 && p[0] != 0 {
			return nil, domainErr("invert", f, "degenerate equation has no solution")
		}
		return nil, domainErr("invert", f, "degenerate equation has infinitely many solutions")
	case 1:
		return []float64{-p[0] / p[1]}, nil
	case 2:
		return quadraticRoots(p[0], p[1], p[2]), nil
	}

	// Real roots are separated by the critical points of p.
	crit, err := s.polyRoots(f, derivative(p))
	if err != nil {
		return nil, err
	}
	bound := cauchyBound(p)
	pts := make([]float64, 0, len(crit)+2)
	pts = append(pts, -bound)
	for _, c := range crit {
		if c > -bound && c < bound {
			pts = append(pts, c)
		}
	}
	pts = append(pts, bound)

	dp := derivative(p)
	eval := func(x float64) float64 { return horner(p, x) }
	deval := func(x float64) float64 { return horner(dp, x) }
	scale := 0.0
	for _, v := range p {
		scale = math.Max(scale, math.Abs(v))
	}

	var roots []float64
	for i := 0; i+1 < len(pts); i++ {
		lo, hi := pts[i], pts[i+1]
		flo, fhi := eval(lo), eval(hi)
		switch {
		case i > 0 && nearZero(flo, lo, n, scale, s.Tolerance):
			// Multiple root sitting on a critical point.
			roots = appendRoot(roots, lo, s.Tolerance)
		case flo == 0:
			roots = appendRoot(roots, lo, s.Tolerance)
		}
		if fhi == 0 || (flo < 0) == (fhi < 0) || flo == 0 {
			continue
		}
		r, ok := s.refine(eval, deval, lo, hi)
		if !ok {
			return nil, convergenceErr("invert", f, "no convergence in [%g, %g] after %d iterations", lo, hi, s.MaxIterations)
		}
		roots = appendRoot(roots, r, s.Tolerance)
	}
	sort.Float64s(roots)
	return roots, nil
}

// quadraticRoots solves c0 + c1 x + c2 x^2 = 0 (c2 != 0) without the
// cancellation of the textbook formula.
func quadraticRoots(c0, c1, c2 float64) []float64 {
	disc := c1*c1 - 4*c2*c0
	if disc < 0 {
		return nil
	}
	q := -0.5 * (c1 + math.Copysign(math.Sqrt(disc), c1))
	if q == 0 {
		return []float64{0}
	}
	r1, r2 := q/c2, c0/q
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	if r1 == r2 {
		return []float64{r1}
	}
	return []float64{r1, r2}
}

func derivative(p []float64) []float64 {
	d := make([]float64, len(p)-1)
	for i := 1; i < len(p); i++ {
		d[i-1] = float64(i) * p[i]
	}
	return d
}

// cauchyBound is a radius containing every root of p.
func cauchyBound(p []float64) float64 {
	n := len(p) - 1
	m := 0.0
	for i := 0; i < n; i++ {
		m = math.Max(m, math.Abs(p[i]/p[n]))
	}
	return 1 + m
}

func nearZero(v, x float64, degree int, scale, tol float64) bool {
	return math.Abs(v) <= tol*scale*math.Pow(math.Max(1, math.Abs(x)), float64(degree))
}

func appendRoot(roots []float64, r, tol float64) []float64 {
	for _, x := range roots {
		if math.Abs(x-r) <= tol*math.Max(1, math.Abs(r))*100 {
			return roots
		}
	}
	return append(roots, r)
}

// ============================================================
// Bracketed refinement
// ============================================================

// refine narrows a sign-change bracket [lo, hi] of f. Newton steps are
// taken when df is given and the step stays inside the bracket; otherwise
// the bracket is bisected.
func (s Solver) refine(f, df func(float64) float64, lo, hi float64) (float64, bool) {
	flo := f(lo)
	x := lo + (hi-lo)/2
	for i := 0; i < s.MaxIterations; i++ {
		fx := f(x)
		if fx == 0 {
			return x, true
		}
		if (fx < 0) == (flo < 0) {
			lo, flo = x, fx
		} else {
			hi = x
		}
		next := lo + (hi-lo)/2
		if df != nil {
			if d := df(x); d != 0 && !math.IsNaN(d) {
				if nx := x - fx/d; nx > lo && nx < hi {
					next = nx
				}
			}
		}
		if math.Abs(next-x) <= s.Tolerance*math.Max(1, math.Abs(x)) {
			return next, true
		}
		x = next
	}
	return x, false
}

// scanRoots finds sign changes of h over (0, 1e9] on a log-spaced grid and
// refines each one.
func (s Solver) scanRoots(f Form, h, dh func(float64) float64) ([]float64, error) {
	var roots []float64
	prevX := math.Pow(10, scanMinExp)
	prev := h(prevX)
	for k := 1; k < scanSamples; k++ {
		x := math.Pow(10, scanMinExp+float64(k)/scanPerDec)
		v := h(x)
		switch {
		case math.IsNaN(v) || math.IsNaN(prev):
		case prev == 0:
			roots = appendRoot(roots, prevX, s.Tolerance)
		case v != 0 && (prev < 0) != (v < 0):
			r, ok := s.refine(h, dh, prevX, x)
			if !ok {
				return nil, convergenceErr("invert", f, "no convergence in [%g, %g] after %d iterations", prevX, x, s.MaxIterations)
			}
			roots = appendRoot(roots, r, s.Tolerance)
		}
		prevX, prev = x, v
	}
	if prev == 0 {
		roots = appendRoot(roots, prevX, s.Tolerance)
	}
	sort.Float64s(roots)
	return roots, nil
}
