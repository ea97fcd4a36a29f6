package encoding

import (
	"github.com/toqubo/core/pbf"
	"github.com/toqubo/core/vmodel"
)

// OneHot expands an integer domain with one target per reachable value
// (M+1 = β-α+1 targets): ξ(y) = Σ_i (α+i) y_i, with the sum-to-one penalty
// h(y) = (Σ_i y_i - 1)^2, zero iff exactly one target is set.
func OneHot(domain vmodel.Domain, source *vmodel.VI, alloc vmodel.Allocator) (*vmodel.VirtualVariable, error) {
	if !domain.Integer {
		return nil, &vmodel.DomainError{Detail: "OneHot requires an integer domain"}
	}
	alpha, _, m, err := domain.Conventioned()
	if err != nil {
		return nil, err
	}
	n := int(m) + 1
	targets := alloc.Alloc(n)

	xi := pbf.New[vmodel.VI]()
	sum := pbf.New[vmodel.VI]()
	for i, t := range targets {
		xi.AddTerm([]vmodel.VI{t}, alpha+float64(i))
		sum.AddTerm([]vmodel.VI{t}, 1)
	}

	penalty := sum.Mul(sum)
	penalty.AddAssign(sum.ScalarMul(-2))
	penalty.AddTerm(nil, 1)

	return &vmodel.VirtualVariable{
		Kind:    vmodel.OneHot,
		Source:  source,
		Targets: targets,
		Xi:      xi,
		Penalty: penalty,
	}, nil
}
