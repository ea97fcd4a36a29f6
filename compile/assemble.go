package compile

import (
	"github.com/toqubo/core/pbf"
	"github.com/toqubo/core/qubo"
	"github.com/toqubo/core/vmodel"
)

// Assemble builds the working Hamiltonian H = f + Σ ρ·g + Σ θ·h + Σ η·s
// (spec §4.5), reading f/g/h/s and their weights from vm, and stores the
// result on vm.H.
//
// Sense handling: when sense is Maximize, f alone is negated before being
// folded into H, rather than negating the fully assembled H around
// quadratization. The penalty terms ρ·g/θ·h/η·s are, by construction,
// already minimization-oriented (zero on valid states, strictly positive
// otherwise) independent of the objective's direction; negating them would
// give quadratization's auxiliary-forcing penalty (added in Quadratize, see
// quadratize.go) the wrong sign and break its positivity guarantee. Negating
// only f yields a single Hamiltonian whose minimum already corresponds to
// the maximizer of the original objective subject to satisfied constraints,
// so no further sign flip is needed after quadratization.
func Assemble(vm *vmodel.Model, sense qubo.Sense) (*pbf.PBF[vmodel.VI], error) {
	h := pbf.New[vmodel.VI]()
	if vm.Objective != nil {
		if sense == qubo.Maximize {
			h.AddAssign(vm.Objective.Neg())
		} else {
			h.AddAssign(vm.Objective)
		}
	}
	for id, g := range vm.ConstraintViolation {
		h.AddAssign(g.ScalarMul(vm.ConstraintWeight[id]))
	}
	for v, p := range vm.VariablePenalty {
		h.AddAssign(p.ScalarMul(vm.VariableWeight[v]))
	}
	for id, s := range vm.Slack {
		h.AddAssign(s.ScalarMul(vm.SlackWeight[id]))
	}
	vm.H = h
	return h, nil
}
