package encoding

import (
	"math"

	"github.com/toqubo/core/vmodel"
)

// BinaryInt expands an integer domain with ceil(log2(M+1)) bits: weights
// double (1, 2, 4, ...) except the top bit, which is clipped to the
// remaining headroom so the expansion never overshoots β. ξ(y) = α + Σ γ_i
// y_i. No penalty.
func BinaryInt(domain vmodel.Domain, source *vmodel.VI, alloc vmodel.Allocator) (*vmodel.VirtualVariable, error) {
	if !domain.Integer {
		return nil, &vmodel.DomainError{Detail: "BinaryInt requires an integer domain"}
	}
	alpha, _, m, err := domain.Conventioned()
	if err != nil {
		return nil, err
	}
	if m == 0 {
		vv, err := Linear(nil, alpha, source, alloc)
		if err != nil {
			return nil, err
		}
		vv.Kind = vmodel.BinaryInt
		return vv, nil
	}
	n := int(math.Ceil(math.Log2(m + 1)))
	if n < 1 {
		n = 1
	}
	gamma := make([]float64, n)
	for i := 0; i < n-1; i++ {
		gamma[i] = math.Pow(2, float64(i))
	}
	gamma[n-1] = m - math.Pow(2, float64(n-1)) + 1
	vv, err := Linear(gamma, alpha, source, alloc)
	if err != nil {
		return nil, err
	}
	vv.Kind = vmodel.BinaryInt
	return vv, nil
}

// BinaryReal expands a real domain [a,b] with n bits, weights doubling and
// the whole expansion scaled so the maximum (all ones) lands exactly on b:
// ξ(y) = a + (b-a)/(2^n - 1) * Σ 2^i y_i. No penalty.
func BinaryReal(domain vmodel.Domain, n int, source *vmodel.VI, alloc vmodel.Allocator) (*vmodel.VirtualVariable, error) {
	if n < 0 {
		return nil, &vmodel.DomainError{Detail: "negative bit budget"}
	}
	if n == 0 {
		vv, err := Linear(nil, domain.A, source, alloc)
		if err != nil {
			return nil, err
		}
		vv.Kind = vmodel.BinaryReal
		return vv, nil
	}
	levels := math.Pow(2, float64(n)) - 1
	scale := (domain.B - domain.A) / levels
	gamma := make([]float64, n)
	for i := range gamma {
		gamma[i] = scale * math.Pow(2, float64(i))
	}
	vv, err := Linear(gamma, domain.A, source, alloc)
	if err != nil {
		return nil, err
	}
	vv.Kind = vmodel.BinaryReal
	return vv, nil
}
