package compile

import (
	"math"

	"github.com/toqubo/core/pbf"
	"github.com/toqubo/core/vmodel"
)

// defaultPenalty implements the loose-bound sizing rule of spec §4.4:
// ρ = 1 + ⌈gap(f)⌉, which guarantees ρ·min_violation(g) > gap(f) whenever
// the violation PBF's minimum positive value is at least 1 (true for every
// violation PBF this module builds: integer-valued squared differences and
// {0,1}-valued SOS1 products).
func defaultPenalty(objective *pbf.PBF[vmodel.VI]) float64 {
	return 1 + math.Ceil(objective.Gap())
}

// ConstraintPenalty returns the ρ weight for constraint id: the caller's
// override if one was set via Attributes.SetConstraintEncodingPenalty,
// otherwise the default sizing rule against the objective.
func ConstraintPenalty(vm *vmodel.Model, id string, objective *pbf.PBF[vmodel.VI]) float64 {
	if rho, ok := vm.Attributes.ConstraintEncodingPenalty(id); ok {
		return rho
	}
	return defaultPenalty(objective)
}

// VariablePenalty returns the θ weight for source variable v's encoding
// penalty (one-hot/domain-wall), the caller's override if set, otherwise
// the default sizing rule.
func VariablePenalty(vm *vmodel.Model, v vmodel.VI, objective *pbf.PBF[vmodel.VI]) float64 {
	if theta, ok := vm.Attributes.VariableEncodingPenalty(v); ok {
		return theta
	}
	return defaultPenalty(objective)
}

// SlackPenalty returns the η weight for the slack of constraint id, the
// caller's override if set, otherwise the default sizing rule.
func SlackPenalty(vm *vmodel.Model, id string, objective *pbf.PBF[vmodel.VI]) float64 {
	if eta, ok := vm.Attributes.SlackVariableEncodingPenalty(id); ok {
		return eta
	}
	return defaultPenalty(objective)
}
