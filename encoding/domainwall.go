package encoding

import (
	"github.com/toqubo/core/pbf"
	"github.com/toqubo/core/vmodel"
)

// DomainWall expands an integer domain with M = β-α unit-weight bits
// encoding M+1 levels: ξ(y) = α + Σ_{i=1}^{M} y_i, same expansion as
// UnaryInt, but constrained to the "domain wall" patterns — a monotone
// non-increasing prefix of ones followed by a suffix of zeros — via the
// penalty h(y) = Σ_{i=1}^{M-1} y_{i+1}(1-y_i), zero iff no 1 follows a 0.
// Every integer in [α, β] is reached by exactly one valid pattern (the
// prefix of length v-α), giving DomainWall the same coverage as OneHot at
// one fewer target, with a penalty of M-1 quadratic terms where OneHot's
// squared sum-to-one penalty has M(M+1)/2.
func DomainWall(domain vmodel.Domain, source *vmodel.VI, alloc vmodel.Allocator) (*vmodel.VirtualVariable, error) {
	if !domain.Integer {
		return nil, &vmodel.DomainError{Detail: "DomainWall requires an integer domain"}
	}
	alpha, _, m, err := domain.Conventioned()
	if err != nil {
		return nil, err
	}
	n := int(m)
	gamma := make([]float64, n)
	for i := range gamma {
		gamma[i] = 1
	}
	vv, err := Linear(gamma, alpha, source, alloc)
	if err != nil {
		return nil, err
	}
	vv.Kind = vmodel.DomainWall

	if n >= 2 {
		penalty := pbf.New[vmodel.VI]()
		for i := 0; i < n-1; i++ {
			yi, yi1 := vv.Targets[i], vv.Targets[i+1]
			penalty.AddTerm([]vmodel.VI{yi1}, 1)
			penalty.AddTerm([]vmodel.VI{yi, yi1}, -1)
		}
		vv.Penalty = penalty
	}
	return vv, nil
}
