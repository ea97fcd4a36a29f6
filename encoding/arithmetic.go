package encoding

import (
	"math"

	"github.com/toqubo/core/vmodel"
)

// Arithmetic expands an integer domain with a triangular-number bit budget:
// weights grow 1, 2, 3, ..., N-1, with the top weight clipped to the
// remaining headroom (γ_N = M - N(N-1)/2) so the expansion's maximum lands
// exactly on M = β - α, never above it. n is the smallest triangular root
// covering M. ξ(y) = α + Σ γ_i y_i. No penalty.
func Arithmetic(domain vmodel.Domain, source *vmodel.VI, alloc vmodel.Allocator) (*vmodel.VirtualVariable, error) {
	if !domain.Integer {
		return nil, &vmodel.DomainError{Detail: "Arithmetic requires an integer domain"}
	}
	alpha, _, m, err := domain.Conventioned()
	if err != nil {
		return nil, err
	}
	n := smallestTriangularRoot(m)
	gamma := make([]float64, n)
	for i := 0; i < n-1; i++ {
		gamma[i] = float64(i + 1)
	}
	if n > 0 {
		gamma[n-1] = m - float64(n*(n-1))/2
	}
	vv, err := Linear(gamma, alpha, source, alloc)
	if err != nil {
		return nil, err
	}
	vv.Kind = vmodel.Arithmetic
	return vv, nil
}

// ArithmeticReal expands a real domain [a,b] with n bits, weights growing
// 1, 2, ..., n and the whole expansion scaled so the maximum (all ones)
// lands exactly on b: ξ(y) = a + (b-a)/(n(n+1)/2) * Σ i*y_i. No penalty.
// n is normally sized by ArithmeticBitsForTolerance for a desired
// resolution (spec §3/§4.2).
func ArithmeticReal(domain vmodel.Domain, n int, source *vmodel.VI, alloc vmodel.Allocator) (*vmodel.VirtualVariable, error) {
	if n < 0 {
		return nil, &vmodel.DomainError{Detail: "negative bit budget"}
	}
	if n == 0 {
		vv, err := Linear(nil, domain.A, source, alloc)
		if err != nil {
			return nil, err
		}
		vv.Kind = vmodel.Arithmetic
		return vv, nil
	}
	triangular := float64(n*(n+1)) / 2
	scale := (domain.B - domain.A) / triangular
	gamma := make([]float64, n)
	for i := range gamma {
		gamma[i] = scale * float64(i+1)
	}
	vv, err := Linear(gamma, domain.A, source, alloc)
	if err != nil {
		return nil, err
	}
	vv.Kind = vmodel.Arithmetic
	return vv, nil
}

// smallestTriangularRoot returns the smallest n >= 0 with n(n+1)/2 >= m.
func smallestTriangularRoot(m float64) int {
	if m <= 0 {
		return 0
	}
	n := int(math.Ceil((math.Sqrt(8*m+1) - 1) / 2))
	for n > 0 && float64(n*(n-1))/2 >= m {
		n--
	}
	for float64(n*(n+1))/2 < m {
		n++
	}
	return n
}
