// Package pbf implements the Pseudo-Boolean Function algebra: multilinear
// polynomials over {0,1}-valued variables, with exact arithmetic,
// substitution, evaluation, degree/bounds analysis and discretization.
//
// A PBF is a mapping from finite term-sets (subsets of variables) to
// nonzero coefficients. The empty term-set is the constant term. Because
// x_j^2 = x_j for x_j in {0,1}, products collapse repeated variables via
// set union rather than accumulating exponents, so every term is
// multilinear by construction.
package pbf

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

type entry[V constraints.Integer] struct {
	vars  []V // canonical: sorted ascending, deduplicated
	coeff float64
}

// PBF is a multilinear polynomial over variables of type V (constrained to
// an integer type so that term-sets can be canonicalized and hashed
// cheaply; see term.go).
type PBF[V constraints.Integer] struct {
	terms map[string]*entry[V]
	// order records insertion order of term keys still present in terms.
	// It gives PBF a deterministic default iteration order without forcing
	// a sort on every read; SortedSupport additionally exposes a fully
	// sorted view for the stable-quadratization path.
	order []string
}

// New returns the zero PBF (no terms, constant 0).
func New[V constraints.Integer]() *PBF[V] {
	return &PBF[V]{terms: make(map[string]*entry[V])}
}

// Constant returns a PBF equal to the scalar c.
func Constant[V constraints.Integer](c float64) *PBF[V] {
	f := New[V]()
	f.Insert(nil, c)
	return f
}

// Variable returns the PBF representing a single Boolean variable v (i.e.
// the degree-1 monomial 1*v).
func Variable[V constraints.Integer](v V) *PBF[V] {
	f := New[V]()
	f.Insert([]V{v}, 1)
	return f
}

// Insert sets the coefficient of the term-set vars to c, deleting the term
// if c is zero. vars need not be pre-sorted or deduplicated.
func (f *PBF[V]) Insert(vars []V, c float64) {
	sorted := canonicalize(vars)
	k := termKey(sorted)
	if c == 0 {
		f.delete(k)
		return
	}
	if _, exists := f.terms[k]; !exists {
		f.order = append(f.order, k)
	}
	f.terms[k] = &entry[V]{vars: sorted, coeff: c}
}

// AddTerm accumulates c into the coefficient of vars, removing the term if
// the result is exactly zero.
func (f *PBF[V]) AddTerm(vars []V, c float64) {
	if c == 0 {
		return
	}
	sorted := canonicalize(vars)
	k := termKey(sorted)
	e, exists := f.terms[k]
	if !exists {
		f.terms[k] = &entry[V]{vars: sorted, coeff: c}
		f.order = append(f.order, k)
		return
	}
	e.coeff += c
	if e.coeff == 0 {
		f.delete(k)
	}
}

func (f *PBF[V]) delete(k string) {
	if _, ok := f.terms[k]; !ok {
		return
	}
	delete(f.terms, k)
	for i, o := range f.order {
		if o == k {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}

// Const returns the constant term's coefficient (0 if absent).
func (f *PBF[V]) Const() float64 {
	e, ok := f.terms[termKey[V](nil)]
	if !ok {
		return 0
	}
	return e.coeff
}

// NumTerms returns the number of nonzero terms, including the constant term
// if set.
func (f *PBF[V]) NumTerms() int {
	return len(f.terms)
}

// IsZero reports whether the PBF has no nonzero terms.
func (f *PBF[V]) IsZero() bool {
	return len(f.terms) == 0
}

// ForEach calls fn once per nonzero term in insertion order. fn must not
// mutate f.
func (f *PBF[V]) ForEach(fn func(vars []V, coeff float64)) {
	for _, k := range f.order {
		e := f.terms[k]
		fn(e.vars, e.coeff)
	}
}

// Term is an exported (vars, coeff) pair, used for sorted/stable
// iteration and for equality/diff comparisons via go-cmp.
type Term[V constraints.Integer] struct {
	Vars  []V
	Coeff float64
}

// Support returns every nonzero term in insertion order.
func (f *PBF[V]) Support() []Term[V] {
	out := make([]Term[V], 0, len(f.terms))
	f.ForEach(func(vars []V, c float64) {
		out = append(out, Term[V]{Vars: append([]V(nil), vars...), Coeff: c})
	})
	return out
}

// SortedSupport returns every nonzero term sorted lexicographically by
// term-set, then by coefficient — the visitation order required when
// StableQuadratization is enabled (see spec §5).
func (f *PBF[V]) SortedSupport() []Term[V] {
	out := f.Support()
	sort.Slice(out, func(i, j int) bool {
		if c := compareVars(out[i].Vars, out[j].Vars); c != 0 {
			return c < 0
		}
		return out[i].Coeff < out[j].Coeff
	})
	return out
}

func compareVars[V constraints.Integer](a, b []V) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Clone returns a deep copy of f.
func (f *PBF[V]) Clone() *PBF[V] {
	c := New[V]()
	f.ForEach(func(vars []V, coeff float64) {
		c.Insert(vars, coeff)
	})
	return c
}

// Equal reports exact coefficient-wise equality between f and g.
func (f *PBF[V]) Equal(g *PBF[V]) bool {
	if len(f.terms) != len(g.terms) {
		return false
	}
	for k, e := range f.terms {
		o, ok := g.terms[k]
		if !ok || o.coeff != e.coeff {
			return false
		}
	}
	return true
}

func (f *PBF[V]) String() string {
	if f.IsZero() {
		return "0"
	}
	terms := f.SortedSupport()
	var sb strings.Builder
	for i, t := range terms {
		if i > 0 {
			sb.WriteString(" + ")
		}
		if len(t.Vars) == 0 {
			fmt.Fprintf(&sb, "%g", t.Coeff)
			continue
		}
		fmt.Fprintf(&sb, "%g*", t.Coeff)
		for j, v := range t.Vars {
			if j > 0 {
				sb.WriteByte('.')
			}
			fmt.Fprintf(&sb, "x%d", int64(v))
		}
	}
	return sb.String()
}
