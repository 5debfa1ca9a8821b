package allometry

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// ============================================================
// Relationship keys and species
// ============================================================

// RelationshipKey names an equation within a species by its independent
// and dependent variables. Names are compared verbatim.
type RelationshipKey struct {
	Independent string
	Dependent   string
}

func (k RelationshipKey) String() string { return k.Independent + " -> " + k.Dependent }

// Species is a named collection of equations.
type Species struct {
	Code string
	Name string

	equations map[RelationshipKey]*Equation
}

// Equation returns the equation registered under key.
func (s *Species) Equation(key RelationshipKey) (*Equation, bool) {
	eq, ok := s.equations[key]
	return eq, ok
}

// Relationships lists the registered keys sorted by independent then
// dependent variable.
func (s *Species) Relationships() []RelationshipKey {
	keys := make([]RelationshipKey, 0, len(s.equations))
	for k := range s.equations {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Independent != keys[j].Independent {
			return keys[i].Independent < keys[j].Independent
		}
		return keys[i].Dependent < keys[j].Dependent
	})
	return keys
}

// ============================================================
// Registry
// ============================================================

// Registry maps species codes to their equations.
//
// A registry is built then frozen: AddSpecies, Register and Load must not
// run concurrently with anything else. After Freeze, every read method is
// safe for concurrent use without locking.
type Registry struct {
	species map[string]*Species
	solver  Solver
	frozen  atomic.Bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithSolver sets the solver used by Invert.
func WithSolver(s Solver) Option {
	return func(r *Registry) { r.solver = s.withDefaults() }
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{species: map[string]*Species{}, solver: DefaultSolver()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Solver returns the settings Invert uses.
func (r *Registry) Solver() Solver { return r.solver }

// Freeze ends the registration phase.
func (r *Registry) Freeze() { r.frozen.Store(true) }

func (r *Registry) Frozen() bool { return r.frozen.Load() }

// AddSpecies declares a species with a display name.
func (r *Registry) AddSpecies(code, name string) (*Species, error) {
	const op = "add species"
	if r.Frozen() {
		return nil, configErr(op, invalidForm, "registry is frozen")
	}
	if code == "" {
		return nil, configErr(op, invalidForm, "empty species code")
	}
	if _, ok := r.species[code]; ok {
		return nil, configErr(op, invalidForm, "species %q already registered", code)
	}
	sp := &Species{Code: code, Name: name, equations: map[RelationshipKey]*Equation{}}
	r.species[code] = sp
	return sp, nil
}

// Register stores one equation for a species, declaring the species on
// first use. Registering the same key twice is a config error.
func (r *Registry) Register(code, independent, dependent string, form Form, coeffs Coefficients) error {
	const op = "register"
	if r.Frozen() {
		return configErr(op, form, "registry is frozen")
	}
	eq, err := NewEquation(form, coeffs)
	if err != nil {
		return err
	}
	sp, ok := r.species[code]
	if !ok {
		if sp, err = r.AddSpecies(code, ""); err != nil {
			return err
		}
	}
	key := RelationshipKey{Independent: independent, Dependent: dependent}
	if _, dup := sp.equations[key]; dup {
		return configErr(op, form, "%s already has %s", code, key)
	}
	sp.equations[key] = eq
	return nil
}

// Species returns the species registered under code.
func (r *Registry) Species(code string) (*Species, bool) {
	sp, ok := r.species[code]
	return sp, ok
}

// Codes lists every species code in sorted order.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.species))
	for c := range r.species {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

func (r *Registry) Lookup(code, independent, dependent string) (*Equation, error) {
	const op = "lookup"
	sp, ok := r.species[code]
	if !ok {
		return nil, lookupErr(op, "unknown species %q", code)
	}
	key := RelationshipKey{Independent: independent, Dependent: dependent}
	eq, ok := sp.equations[key]
	if !ok {
		return nil, lookupErr(op, "species %q has no relationship %s", code, key)
	}
	return eq, nil
}

// Predict evaluates the dependent variable from a measurement of the
// independent one.
func (r *Registry) Predict(code, independent, dependent string, measurement float64) (float64, error) {
	eq, err := r.Lookup(code, independent, dependent)
	if err != nil {
		return 0, err
	}
	return eq.Evaluate(measurement)
}

// Invert estimates the independent variable from an observed dependent one.
// Under the default SmallestRoot policy polynomial equations often yield a
// negative root; build the registry WithSolver using
// SmallestNonNegativeRoot when only physical measurements are wanted.
func (r *Registry) Invert(code, independent, dependent string, measurement float64) (float64, error) {
	eq, err := r.Lookup(code, independent, dependent)
	if err != nil {
		return 0, err
	}
	return r.solver.Invert(eq, measurement)
}

// ============================================================
// Bulk loading
// ============================================================

// Record is one row of a coefficient table.
type Record struct {
	Species      string
	Name         string
	Independent  string
	Dependent    string
	Form         string
	Coefficients []float64
}

// Load registers records in order and stops at the first failure. A
// record's Name, when set, names its species on first appearance.
func (r *Registry) Load(records []Record) error {
	for i, rec := range records {
		if _, ok := r.species[rec.Species]; !ok && rec.Name != "" {
			if _, err := r.AddSpecies(rec.Species, rec.Name); err != nil {
				return fmt.Errorf("record %d (%s %s -> %s): %w", i, rec.Species, rec.Independent, rec.Dependent, err)
			}
		}
		form, err := ParseForm(rec.Form)
		if err == nil {
			err = r.Register(rec.Species, rec.Independent, rec.Dependent, form, CoefficientsOf(rec.Coefficients))
		}
		if err != nil {
			return fmt.Errorf("record %d (%s %s -> %s): %w", i, rec.Species, rec.Independent, rec.Dependent, err)
		}
	}
	return nil
}
