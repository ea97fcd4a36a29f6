// Package encoding implements the variable-encoding layer (C2): pluggable
// strategies that expand one bounded source variable into a set of binary
// target variables, each producing an expansion polynomial ξ and,
// optionally, a penalty polynomial h enforcing validity.
//
// Per spec §9 ("Dynamic dispatch on encoding"), encodings are a closed,
// tagged sum type (vmodel.EncodingKind) switched over by Encode, rather than
// open multi-method dispatch.
package encoding

import "github.com/toqubo/core/vmodel"

// Encode dispatches to the concrete encoder for kind. domain is used as-is
// for real-valued encodings; integer encodings apply the §4.2 conventioning
// rule. bits, when > 0, fixes the bit budget; otherwise tol drives the
// tolerance-based sizing formulas of spec §3 for the tolerance-parametrized
// encodings (UnaryReal, BinaryReal, and Arithmetic over a non-integer
// domain). source is nil for auxiliary variables.
func Encode(kind vmodel.EncodingKind, domain vmodel.Domain, source *vmodel.VI, bits int, tol float64, alloc vmodel.Allocator) (*vmodel.VirtualVariable, error) {
	switch kind {
	case vmodel.Mirror:
		return Mirror(source, alloc)
	case vmodel.UnaryInt:
		return UnaryInt(domain, source, alloc)
	case vmodel.UnaryReal:
		n := bits
		if n <= 0 {
			var err error
			n, err = UnaryBitsForTolerance(domain, tol)
			if err != nil {
				return nil, err
			}
		}
		return UnaryReal(domain, n, source, alloc)
	case vmodel.BinaryInt:
		return BinaryInt(domain, source, alloc)
	case vmodel.BinaryReal:
		n := bits
		if n <= 0 {
			var err error
			n, err = BinaryBitsForTolerance(domain, tol)
			if err != nil {
				return nil, err
			}
		}
		return BinaryReal(domain, n, source, alloc)
	case vmodel.Arithmetic:
		if domain.Integer {
			return Arithmetic(domain, source, alloc)
		}
		n := bits
		if n <= 0 {
			var err error
			n, err = ArithmeticBitsForTolerance(domain, tol)
			if err != nil {
				return nil, err
			}
		}
		return ArithmeticReal(domain, n, source, alloc)
	case vmodel.OneHot:
		return OneHot(domain, source, alloc)
	case vmodel.DomainWall:
		return DomainWall(domain, source, alloc)
	default:
		return nil, &vmodel.DomainError{Detail: "unsupported encoding kind"}
	}
}
