package encoding

import "github.com/toqubo/core/vmodel"

// UnaryInt expands an integer domain with one unit-weight bit per reachable
// increment above α: ξ(y) = α + Σ_{i=1}^{M} y_i, M = β - α. No penalty: every
// target combination is a valid (possibly non-injective) encoding of some
// integer in [α, β].
func UnaryInt(domain vmodel.Domain, source *vmodel.VI, alloc vmodel.Allocator) (*vmodel.VirtualVariable, error) {
	if !domain.Integer {
		return nil, &vmodel.DomainError{Detail: "UnaryInt requires an integer domain"}
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
	vv.Kind = vmodel.UnaryInt
	return vv, nil
}

// UnaryReal expands a real domain [a,b] with n equal-weight bits, step
// (b-a)/n: ξ(y) = a + (b-a)/n * Σ y_i. No penalty.
func UnaryReal(domain vmodel.Domain, n int, source *vmodel.VI, alloc vmodel.Allocator) (*vmodel.VirtualVariable, error) {
	if n < 0 {
		return nil, &vmodel.DomainError{Detail: "negative bit budget"}
	}
	if n == 0 {
		vv, err := Linear(nil, domain.A, source, alloc)
		if err != nil {
			return nil, err
		}
		vv.Kind = vmodel.UnaryReal
		return vv, nil
	}
	step := (domain.B - domain.A) / float64(n)
	gamma := make([]float64, n)
	for i := range gamma {
		gamma[i] = step
	}
	vv, err := Linear(gamma, domain.A, source, alloc)
	if err != nil {
		return nil, err
	}
	vv.Kind = vmodel.UnaryReal
	return vv, nil
}
