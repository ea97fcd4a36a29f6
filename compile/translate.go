// Package compile implements the Constraint & Objective Translator (C4) and
// the Assembler/Quadratizer/Emitter (C5): turning a qubo.SourceModel into an
// assembled, quadratized, canonical qubo.Problem.
package compile

import (
	"fmt"

	"github.com/toqubo/core/pbf"
	"github.com/toqubo/core/qubo"
	"github.com/toqubo/core/vmodel"
)

// TranslateExpr substitutes every source variable in e with its expansion ξ
// (vm.ExpansionOf), accumulating the result via PBF arithmetic (spec §4.4).
// Quadratic diagonal terms (x==y within a pair) are halved, since a
// diagonal entry of a source quadratic function is read under the ½xᵀQx
// convention (see qubo.Expr); the halved term (c/2)·x·x is, for binary x,
// the same value as (c/2)·x.
func TranslateExpr(vm *vmodel.Model, e *qubo.Expr) (*pbf.PBF[vmodel.VI], error) {
	f := pbf.New[vmodel.VI]()
	if e.Constant != 0 {
		f.AddTerm(nil, e.Constant)
	}
	for v, c := range e.Linear {
		xi, err := vm.ExpansionOf(v)
		if err != nil {
			return nil, fmt.Errorf("compile: translating linear term over %s: %w", v, err)
		}
		f.AddAssign(xi.ScalarMul(c))
	}
	for pair, c := range e.Quadratic {
		x, y := pair[0], pair[1]
		xix, err := vm.ExpansionOf(x)
		if err != nil {
			return nil, fmt.Errorf("compile: translating quadratic term over %s: %w", x, err)
		}
		xiy, err := vm.ExpansionOf(y)
		if err != nil {
			return nil, fmt.Errorf("compile: translating quadratic term over %s: %w", y, err)
		}
		coeff := c
		if x == y {
			coeff = c / 2
		}
		f.MulAdd(xix.ScalarMul(coeff), xiy)
	}
	return f, nil
}
