package encoding

import (
	"math"

	"github.com/toqubo/core/vmodel"
)

// UnaryBitsForTolerance returns the bit budget n = ceil(1 + |b-a|/(4*tol))
// guaranteeing a unary-real expansion resolves values to within tol (spec
// §3/§8).
func UnaryBitsForTolerance(domain vmodel.Domain, tol float64) (int, error) {
	if tol <= 0 {
		return 0, &vmodel.DomainError{Detail: "tolerance must be positive"}
	}
	span := math.Abs(domain.B - domain.A)
	return int(math.Ceil(1 + span/(4*tol))), nil
}

// BinaryBitsForTolerance returns the bit budget
// n = ceil(log2(1 + |b-a|/(4*tol))) guaranteeing a binary-real expansion
// resolves values to within tol (spec §3).
func BinaryBitsForTolerance(domain vmodel.Domain, tol float64) (int, error) {
	if tol <= 0 {
		return 0, &vmodel.DomainError{Detail: "tolerance must be positive"}
	}
	span := math.Abs(domain.B - domain.A)
	n := int(math.Ceil(math.Log2(1 + span/(4*tol))))
	if n < 1 {
		n = 1
	}
	return n, nil
}

// ArithmeticBitsForTolerance returns the bit budget
// n = ceil((1 + sqrt(3 + (b-a)/(2*tol)))/2) for a tolerance-driven
// arithmetic-progression expansion over a real domain (spec §3).
func ArithmeticBitsForTolerance(domain vmodel.Domain, tol float64) (int, error) {
	if tol <= 0 {
		return 0, &vmodel.DomainError{Detail: "tolerance must be positive"}
	}
	span := math.Abs(domain.B - domain.A)
	n := int(math.Ceil((1 + math.Sqrt(3+span/(2*tol))) / 2))
	if n < 1 {
		n = 1
	}
	return n, nil
}
