package qubo

import (
	"fmt"

	"github.com/toqubo/core/vmodel"
)

// DomainError re-exports vmodel.DomainError: an invalid domain/encoding
// parameter combination (tolerance <= 0, a negative bit budget, an integer
// domain with a > b after conventioning). Re-exported here, alongside
// CompilationFailure/ArithmeticFailure/UnsupportedFeature, so a caller
// handling the compiler's external error surface never needs to import
// vmodel directly.
type DomainError = vmodel.DomainError

// CompilationFailure reports any invariant violation detected during
// Compile (a missing bound, a degree-≥3 residue surviving quadratization,
// ...); an unsupported constraint kind is reported as UnsupportedFeature. Fatal: the Virtual Model transitions to
// Failed and no target objective is emitted.
type CompilationFailure struct {
	Reason string
}

func (e *CompilationFailure) Error() string {
	return fmt.Sprintf("qubo: compilation failed: %s", e.Reason)
}

// ArithmeticFailure reports a PBF arithmetic error (division by zero,
// negative exponent, scalar extraction from a non-constant polynomial)
// surfaced at the compiler boundary.
type ArithmeticFailure struct {
	Op string
}

func (e *ArithmeticFailure) Error() string {
	return fmt.Sprintf("qubo: arithmetic failure in %s", e.Op)
}

// UnsupportedFeature reports a constraint function/set pair the translator
// cannot handle. Surfaced proactively via SourceModel.Supports so a caller
// never needs to attempt it and hit this error.
type UnsupportedFeature struct {
	Kind string
}

func (e *UnsupportedFeature) Error() string {
	return fmt.Sprintf("qubo: unsupported constraint kind: %s", e.Kind)
}
