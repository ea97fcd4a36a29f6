// Package qubo is the external ingest/emit contract of the compiler (§6/§7):
// the source-model interface callers implement, the emitted target model,
// the shared attribute surface, and the error kinds the core can raise. It
// mirrors the role the teacher's frontend.API/frontend.Compiler split plays
// for its own callers — separating what a caller provides from what the
// compiler returns.
package qubo

import "github.com/toqubo/core/vmodel"

// VI re-exports vmodel.VI so callers implementing SourceModel never need to
// import vmodel directly.
type VI = vmodel.VI

// Domain re-exports vmodel.Domain, the bounded-interval bound type used by
// ZeroOne/Integer/Interval variable declarations.
type Domain = vmodel.Domain

// Sense is the optimization direction of a source model's objective.
type Sense int

const (
	Minimize Sense = iota
	Maximize
)

func (s Sense) String() string {
	if s == Maximize {
		return "maximize"
	}
	return "minimize"
}

// ConstraintKind tags the shape of a constraint's feasible set.
type ConstraintKind int

const (
	// Eq constrains an expression to equal a constant.
	Eq ConstraintKind = iota
	// LessEq constrains an expression to be at most a constant.
	LessEq
	// SOS1 constrains at most one of a set of (already-binary) variables to
	// be nonzero.
	SOS1
)

func (k ConstraintKind) String() string {
	switch k {
	case Eq:
		return "=="
	case LessEq:
		return "<="
	case SOS1:
		return "sos1"
	default:
		return "unknown"
	}
}

// Expr is a scalar affine-or-quadratic function of source variables:
// Constant + Σ Linear[v]*v + Σ Quadratic[{i,j}]*i*j, except that a diagonal
// entry Quadratic[{v,v}] follows the ½xᵀQx convention and contributes
// ½*Quadratic[{v,v}]*v*v.
type Expr struct {
	Constant  float64
	Linear    map[VI]float64
	Quadratic map[[2]VI]float64
}

// NewExpr returns the zero expression.
func NewExpr() *Expr {
	return &Expr{Linear: map[VI]float64{}, Quadratic: map[[2]VI]float64{}}
}

// AddConstant accumulates c into the expression's constant term.
func (e *Expr) AddConstant(c float64) *Expr {
	e.Constant += c
	return e
}

// AddLinear accumulates c*v into the expression.
func (e *Expr) AddLinear(v VI, c float64) *Expr {
	e.Linear[v] += c
	if e.Linear[v] == 0 {
		delete(e.Linear, v)
	}
	return e
}

// AddQuadratic accumulates c*x*y into the expression. The pair is stored in
// a canonical (lesser, greater) order so that AddQuadratic(x, y, c) and
// AddQuadratic(y, x, c) accumulate into the same entry.
func (e *Expr) AddQuadratic(x, y VI, c float64) *Expr {
	if y < x {
		x, y = y, x
	}
	key := [2]VI{x, y}
	e.Quadratic[key] += c
	if e.Quadratic[key] == 0 {
		delete(e.Quadratic, key)
	}
	return e
}

// Constraint is one named constraint of a source model. For Eq/LessEq, Expr
// and RHS carry the function and the bound; for SOS1, Vars carries the
// variable set and Expr/RHS are unused.
type Constraint struct {
	ID   string
	Kind ConstraintKind
	Expr *Expr
	RHS  float64
	Vars []VI
}

// SourceModel is the model-ingest contract (§6): everything the compiler
// needs to know about a caller's optimization model.
type SourceModel interface {
	// VariableIndices lists every source variable the model declares.
	VariableIndices() []VI
	// Bound returns the domain of v (its ZeroOne/Integer/Interval
	// declaration), or false if v has no declared bound.
	Bound(v VI) (Domain, bool)
	// ObjectiveSense reports whether Objective is to be minimized or
	// maximized.
	ObjectiveSense() Sense
	// Objective returns the scalar objective function.
	Objective() *Expr
	// Constraints lists every constraint of the model.
	Constraints() []Constraint
	// Supports reports whether the compiler can translate constraints of
	// kind. Never raises; callers must consult it before relying on a
	// ConstraintKind this compiler doesn't implement.
	Supports(kind ConstraintKind) bool
}
