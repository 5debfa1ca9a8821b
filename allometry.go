// Package allometry predicts tree attributes from one another with
// per-species allometric regression equations.
//
// Design goals:
//   - Closed set of equation forms, exhaustively matched by both the
//     forward evaluator and the inverse solver
//   - Typed failures (config, lookup, domain, convergence), never NaN
//   - Bounded root finding: every numeric search has an iteration cap
//   - Build-then-freeze registry: lock-free concurrent reads
package allometry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ============================================================
// Forms: the closed set of equation shapes
// ============================================================

// Form tags the functional shape of an equation.
type Form int

const (
	invalidForm Form = iota
	Linear
	Quadratic
	Cubic
	Quartic
	LogLog1
	LogLog2
	LogLog3
	LogLog4
	ExPow1
	ExPow2
	ExPow3
	ExPow4
)

var formNames = [...]string{
	invalidForm: "invalid",
	Linear:      "linear",
	Quadratic:   "quadratic",
	Cubic:       "cubic",
	Quartic:     "quartic",
	LogLog1:     "loglog1",
	LogLog2:     "loglog2",
	LogLog3:     "loglog3",
	LogLog4:     "loglog4",
	ExPow1:      "expow1",
	ExPow2:      "expow2",
	ExPow3:      "expow3",
	ExPow4:      "expow4",
}

// formAliases are the abbreviated tags found in published coefficient tables.
var formAliases = map[string]Form{
	"lin":      Linear,
	"quad":     Quadratic,
	"cub":      Cubic,
	"quart":    Quartic,
	"loglogw1": LogLog1,
	"loglogw2": LogLog2,
	"loglogw3": LogLog3,
	"loglogw4": LogLog4,
}

// ParseForm resolves a canonical tag or a known alias. Matching is exact.
func ParseForm(tag string) (Form, error) {
	for f := Linear; f <= ExPow4; f++ {
		if formNames[f] == tag {
			return f, nil
		}
	}
	if f, ok := formAliases[tag]; ok {
		return f, nil
	}
	return invalidForm, configErr("parse form", invalidForm, "unknown equation form %q", tag)
}

// Forms lists every form in declaration order.
func Forms() []Form {
	out := make([]Form, 0, int(ExPow4))
	for f := Linear; f <= ExPow4; f++ {
		out = append(out, f)
	}
	return out
}

func (f Form) String() string {
	if f.valid() {
		return formNames[f]
	}
	return "Form(" + strconv.Itoa(int(f)) + ")"
}

func (f Form) valid() bool { return f >= Linear && f <= ExPow4 }

// Arity is the exact number of coefficients the form consumes.
func (f Form) Arity() int {
	switch f {
	case Linear:
		return 2
	case Quadratic:
		return 3
	case Cubic:
		return 4
	case Quartic:
		return 5
	case LogLog1, LogLog2, LogLog3, LogLog4, ExPow1, ExPow2, ExPow3, ExPow4:
		return 3
	}
	return 0
}

// Polynomial reports whether f is one of linear..quartic.
func (f Form) Polynomial() bool { return f >= Linear && f <= Quartic }

func (f Form) loglog() bool { return f >= LogLog1 && f <= LogLog4 }
func (f Form) expow() bool  { return f >= ExPow1 && f <= ExPow4 }

// shape selects the growth term g(x) shared by the loglog and expow
// families: 1 -> 1, 2 -> sqrt(x), 3 -> x, 4 -> x^2.
func (f Form) shape() int {
	switch {
	case f.loglog():
		return int(f-LogLog1) + 1
	case f.expow():
		return int(f-ExPow1) + 1
	}
	return 0
}

func growth(shape int, x float64) float64 {
	switch shape {
	case 2:
		return math.Sqrt(x)
	case 3:
		return x
	case 4:
		return x * x
	}
	return 1
}

func growthDeriv(shape int, x float64) float64 {
	switch shape {
	case 2:
		return 0.5 / math.Sqrt(x)
	case 3:
		return 1
	case 4:
		return 2 * x
	}
	return 0
}

// ============================================================
// Coefficients
// ============================================================

const maxCoefficients = 5

// Coefficients holds the positional parameters a..e of an equation.
// The zero value holds none. Values are copied in and out; a
// Coefficients is never mutated after construction.
type Coefficients struct {
	v [maxCoefficients]float64
	n int
}

// Coef builds a coefficient set from a, b and up to three more values.
// Supplying more than five values is reported by NewEquation.
func Coef(a, b float64, rest ...float64) Coefficients {
	return CoefficientsOf(append([]float64{a, b}, rest...))
}

// CoefficientsOf copies vals into a coefficient set.
func CoefficientsOf(vals []float64) Coefficients {
	var c Coefficients
	c.n = len(vals)
	copy(c.v[:], vals)
	return c
}

func (c Coefficients) Len() int { return c.n }

// At returns the i-th coefficient (0 is a). Out of range reads return 0.
func (c Coefficients) At(i int) float64 {
	if i < 0 || i >= c.n || i >= maxCoefficients {
		return 0
	}
	return c.v[i]
}

// Values returns a copy of the defined coefficients.
func (c Coefficients) Values() []float64 {
	n := c.n
	if n > maxCoefficients {
		n = maxCoefficients
	}
	out := make([]float64, n)
	copy(out, c.v[:n])
	return out
}

func (c Coefficients) String() string {
	parts := make([]string, 0, c.n)
	for i, v := range c.Values() {
		parts = append(parts, fmt.Sprintf("%c=%g", 'a'+i, v))
	}
	return strings.Join(parts, ", ")
}

// ============================================================
// Equation
// ============================================================

// Equation pairs a form with a coefficient set of matching arity.
type Equation struct {
	form   Form
	coeffs Coefficients
}

// NewEquation validates the form and the coefficient arity.
func NewEquation(form Form, coeffs Coefficients) (*Equation, error) {
	const op = "new equation"
	if !form.valid() {
		return nil, configErr(op, invalidForm, "unknown equation form %v", form)
	}
	if coeffs.Len() != form.Arity() {
		return nil, configErr(op, form, "needs %d coefficients, got %d", form.Arity(), coeffs.Len())
	}
	for i, v := range coeffs.Values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, configErr(op, form, "coefficient %c is not finite", 'a'+i)
		}
	}
	return &Equation{form: form, coeffs: coeffs}, nil
}

func (e *Equation) Form() Form                 { return e.form }
func (e *Equation) Coefficients() Coefficients { return e.coeffs }

func (e *Equation) String() string {
	return e.form.String() + "(" + e.coeffs.String() + ")"
}

// Formula renders y as a function of x with the coefficients substituted.
func (e *Equation) Formula() string {
	a, b, c := e.coeffs.At(0), e.coeffs.At(1), e.coeffs.At(2)
	g := [...]string{"", "1", "sqrt(x)", "x", "x^2"}[e.form.shape()]
	switch {
	case e.form.Polynomial():
		terms := make([]string, 0, e.coeffs.Len())
		for i, v := range e.coeffs.Values() {
			switch i {
			case 0:
				terms = append(terms, fmt.Sprintf("%g", v))
			case 1:
				terms = append(terms, fmt.Sprintf("%g*x", v))
			default:
				terms = append(terms, fmt.Sprintf("%g*x^%d", v, i))
			}
		}
		return strings.Join(terms, " + ")
	case e.form.loglog():
		return fmt.Sprintf("exp(%g + %g*ln(ln(x+1)) + %s*(%g/2))", a, b, g, c)
	default:
		return fmt.Sprintf("exp(%g + %g*x + %s*(%g/2))", a, b, g, c)
	}
}

// ============================================================
// Forward evaluation
// ============================================================

// Evaluate computes y = f(x) for an ad hoc form and coefficient set.
func Evaluate(form Form, coeffs Coefficients, x float64) (float64, error) {
	eq, err := NewEquation(form, coeffs)
	if err != nil {
		return 0, err
	}
	return eq.Evaluate(x)
}

// Evaluate computes the dependent variable from x.
func (e *Equation) Evaluate(x float64) (float64, error) {
	const op = "evaluate"
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, domainErr(op, e.form, "measurement %g is not finite", x)
	}
	a, b, c := e.coeffs.At(0), e.coeffs.At(1), e.coeffs.At(2)

	var y float64
	switch {
	case e.form.Polynomial():
		y = horner(e.coeffs.Values(), x)
	case e.form.loglog():
		// ln(ln(x+1)) needs ln(x+1) > 0.
		if !(x > 0) {
			return 0, domainErr(op, e.form, "ln(ln(x+1)) undefined for x=%g", x)
		}
		y = math.Exp(a + b*math.Log(math.Log1p(x)) + growth(e.form.shape(), x)*(c/2))
	case e.form.expow():
		if e.form == ExPow2 && x < 0 {
			return 0, domainErr(op, e.form, "sqrt(x) undefined for x=%g", x)
		}
		y = math.Exp(a + b*x + growth(e.form.shape(), x)*(c/2))
	default:
		return 0, configErr(op, invalidForm, "unknown equation form %v", e.form)
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, domainErr(op, e.form, "result for x=%g is not finite", x)
	}
	return y, nil
}

// horner evaluates p[0] + p[1]x + ... + p[n]x^n.
func horner(p []float64, x float64) float64 {
	var y float64
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}
	return y
}
