package compile

import (
	"fmt"

	"github.com/toqubo/core/encoding"
	"github.com/toqubo/core/pbf"
	"github.com/toqubo/core/qubo"
	"github.com/toqubo/core/vmodel"
)

// TranslateConstraint builds the violation PBF g for c (spec §4.4): zero on
// feasible assignments, strictly positive on infeasible ones. For LessEq
// constraints it also allocates and registers the constraint's slack
// virtual variable and records its expansion in vm.Slack[c.ID].
func TranslateConstraint(vm *vmodel.Model, c qubo.Constraint) (*pbf.PBF[vmodel.VI], error) {
	switch c.Kind {
	case qubo.Eq:
		f, err := TranslateExpr(vm, c.Expr)
		if err != nil {
			return nil, err
		}
		diff := f.Sub(pbf.Constant[vmodel.VI](c.RHS))
		g, err := diff.Pow(2)
		if err != nil {
			return nil, err
		}
		return g, nil

	case qubo.LessEq:
		f, err := TranslateExpr(vm, c.Expr)
		if err != nil {
			return nil, err
		}
		slackUpper := c.RHS - f.LowerBound()
		domain := vmodel.Domain{A: 0, B: slackUpper, Integer: true}
		kind := vm.Attributes.DefaultVariableEncodingMethod
		slackVV, err := encoding.Encode(kind, domain, nil, vm.Attributes.DefaultVariableEncodingBits, vm.Attributes.DefaultVariableEncodingATol, vm.Allocator())
		if err != nil {
			return nil, fmt.Errorf("compile: encoding slack for constraint %q: %w", c.ID, err)
		}
		if err := vm.Register(slackVV); err != nil {
			return nil, err
		}
		// vm.Slack carries the slack's own encoding-validity penalty (s in
		// spec §3/§4.5), weighted separately by η; its value is folded into
		// the violation PBF directly via its expansion ξ below.
		if slackVV.Penalty != nil {
			vm.Slack[c.ID] = slackVV.Penalty
		}

		diff := f.Sub(pbf.Constant[vmodel.VI](c.RHS))
		diff.AddAssign(slackVV.Xi)
		g, err := diff.Pow(2)
		if err != nil {
			return nil, err
		}
		return g, nil

	case qubo.SOS1:
		g := pbf.New[vmodel.VI]()
		for i := 0; i < len(c.Vars); i++ {
			xii, err := vm.ExpansionOf(c.Vars[i])
			if err != nil {
				return nil, err
			}
			for j := i + 1; j < len(c.Vars); j++ {
				xij, err := vm.ExpansionOf(c.Vars[j])
				if err != nil {
					return nil, err
				}
				g.MulAdd(xii, xij)
			}
		}
		return g, nil

	default:
		return nil, &qubo.UnsupportedFeature{Kind: c.Kind.String()}
	}
}
