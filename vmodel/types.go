// Package vmodel implements the Virtual Model (C3): the registry binding
// source variables to their chosen encodings, and the data types shared by
// the encoder layer (C2) and the compiler (C4/C5) — variable indices,
// domains, encoding kinds, and the Virtual Variable record.
package vmodel

import "fmt"

// VI is an opaque handle identifying a source- or target-space variable.
// Equality is identity (plain integer comparison).
type VI int

func (v VI) String() string {
	return fmt.Sprintf("x%d", int(v))
}

// EncodingKind tags the variant of encoding a Virtual Variable uses. This is
// the tagged-sum-type re-architecture called for in spec §9 ("Dynamic
// dispatch on encoding"): a single closed enumeration switched over by
// encode(), rather than open multi-method dispatch.
type EncodingKind int

const (
	// Mirror is a one-to-one binary passthrough, used both for ZeroOne
	// source variables and for auxiliary binaries introduced during
	// quadratization.
	Mirror EncodingKind = iota
	// Linear is a raw affine expansion ξ(y) = α + Σ γ_i y_i with caller
	// supplied coefficients; every other non-Mirror encoding below reduces
	// to a Linear expansion, with a penalty attached where the encoding
	// calls for one (OneHot, DomainWall).
	Linear
	// UnaryInt expands an integer interval with no penalty.
	UnaryInt
	// UnaryReal expands a real interval with n bits, no penalty.
	UnaryReal
	// BinaryInt expands an integer interval with ceil(log2(M+1)) bits.
	BinaryInt
	// BinaryReal expands a real interval with n bits.
	BinaryReal
	// Arithmetic expands an integer interval with a triangular-number bit
	// budget.
	Arithmetic
	// OneHot expands an integer interval with one bit per value and a
	// sum-to-one penalty.
	OneHot
	// DomainWall expands an integer interval with n-1 bits encoding n
	// levels and a monotone-prefix penalty.
	DomainWall
)

func (k EncodingKind) String() string {
	switch k {
	case Mirror:
		return "mirror"
	case Linear:
		return "linear"
	case UnaryInt:
		return "unary-int"
	case UnaryReal:
		return "unary-real"
	case BinaryInt:
		return "binary-int"
	case BinaryReal:
		return "binary-real"
	case Arithmetic:
		return "arithmetic"
	case OneHot:
		return "one-hot"
	case DomainWall:
		return "domain-wall"
	default:
		return fmt.Sprintf("encoding(%d)", int(k))
	}
}

// Domain is a bounded interval [A, B] a source variable ranges over.
// Integer marks whether the variable is integer-valued (domain
// conventioning applies: α = ceil(min(A,B)), β = floor(max(A,B))).
type Domain struct {
	A, B    float64
	Integer bool
}

// Conventioned returns (α, β, M) for an integer domain after applying the
// conventioning rule of spec §4.2. It fails with DomainError if α > β.
func (d Domain) Conventioned() (alpha, beta, m float64, err error) {
	lo, hi := d.A, d.B
	if lo > hi {
		lo, hi = hi, lo
	}
	alpha = ceilFloat(lo)
	beta = floorFloat(hi)
	if alpha > beta {
		return 0, 0, 0, &DomainError{Detail: fmt.Sprintf("integer domain [%v,%v] is empty after conventioning", d.A, d.B)}
	}
	return alpha, beta, beta - alpha, nil
}

func ceilFloat(x float64) float64 {
	i := float64(int64(x))
	if x > i {
		return i + 1
	}
	return i
}

func floorFloat(x float64) float64 {
	i := float64(int64(x))
	if x < i {
		return i - 1
	}
	return i
}
