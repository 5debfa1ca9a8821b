package allometry

import (
	"errors"
	"fmt"
)

// ============================================================
// Error taxonomy
// ============================================================

// Sentinel error kinds. Every error returned by this package wraps exactly
// one of them, so callers can branch with errors.Is.
var (
	// ErrConfig reports a malformed equation definition: unknown form tag,
	// wrong coefficient arity, duplicate registration.
	ErrConfig = errors.New("config error")
	// ErrLookup reports a species or relationship that was never registered.
	ErrLookup = errors.New("lookup error")
	// ErrDomain reports a measurement outside the mathematical domain of a
	// form, or an inversion without a real solution.
	ErrDomain = errors.New("domain error")
	// ErrConvergence reports a numeric root search that ran out of iterations.
	ErrConvergence = errors.New("convergence error")
)

// Error carries the operation and form that failed alongside its kind.
type Error struct {
	Kind   error
	Op     string
	Form   Form
	Detail string
}

func (e *Error) Error() string {
	if e.Form.valid() {
		return fmt.Sprintf("allometry: %s %s: %v: %s", e.Op, e.Form, e.Kind, e.Detail)
	}
	return fmt.Sprintf("allometry: %s: %v: %s", e.Op, e.Kind, e.Detail)
}

func (e *Error) Unwrap() error { return e.Kind }

func configErr(op string, f Form, format string, args ...interface{}) error {
	return &Error{Kind: ErrConfig, Op: op, Form: f, Detail: fmt.Sprintf(format, args...)}
}

func lookupErr(op, format string, args ...interface{}) error {
	return &Error{Kind: ErrLookup, Op: op, Form: invalidForm, Detail: fmt.Sprintf(format, args...)}
}

func domainErr(op string, f Form, format string, args ...interface{}) error {
	return &Error{Kind: ErrDomain, Op: op, Form: f, Detail: fmt.Sprintf(format, args...)}
}

func convergenceErr(op string, f Form, format string, args ...interface{}) error {
	return &Error{Kind: ErrConvergence, Op: op, Form: f, Detail: fmt.Sprintf(format, args...)}
}

// KindOf names the error kind of err ("config", "lookup", "domain",
// "convergence"), or "" when err does not wrap one of the sentinels.
func KindOf(err error) string {
	switch {
	case errors.Is(err, ErrConfig):
		return "config"
	case errors.Is(err, ErrLookup):
		return "lookup"
	case errors.Is(err, ErrDomain):
		return "domain"
	case errors.Is(err, ErrConvergence):
		return "convergence"
	}
	return ""
}
