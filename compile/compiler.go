package compile

import (
	"fmt"
	"time"

	"github.com/toqubo/core/encoding"
	"github.com/toqubo/core/logger"
	"github.com/toqubo/core/qubo"
	"github.com/toqubo/core/vmodel"
)

// Compile runs the full pipeline against vm and src (spec §4.3-§4.5):
// encode every source variable, translate the objective and constraints
// into PBFs, size penalty weights, assemble the Hamiltonian, quadratize,
// and emit a canonical qubo.Problem. On any fatal error vm transitions to
// Failed and the error is returned; on success vm transitions to
// LocallyCompiled and its CompilationTime is recorded.
func Compile(vm *vmodel.Model, src qubo.SourceModel) (*qubo.Problem, error) {
	start := time.Now()
	vm.SetStatus(vmodel.InProgress)
	logger.Logger().Info().Msg("compile starting")

	if err := encodeVariables(vm, src); err != nil {
		return nil, fail(vm, err)
	}

	objective, err := TranslateExpr(vm, src.Objective())
	if err != nil {
		return nil, fail(vm, err)
	}
	vm.Objective = objective

	for _, c := range src.Constraints() {
		if !src.Supports(c.Kind) {
			return nil, fail(vm, &qubo.UnsupportedFeature{Kind: c.Kind.String()})
		}
		g, err := TranslateConstraint(vm, c)
		if err != nil {
			return nil, fail(vm, err)
		}
		vm.ConstraintViolation[c.ID] = g
	}

	for _, c := range src.Constraints() {
		vm.ConstraintWeight[c.ID] = ConstraintPenalty(vm, c.ID, objective)
		if _, hasSlack := vm.Slack[c.ID]; hasSlack {
			vm.SlackWeight[c.ID] = SlackPenalty(vm, c.ID, objective)
		}
	}
	for v := range vm.VariablePenalty {
		vm.VariableWeight[v] = VariablePenalty(vm, v, objective)
	}

	h, err := Assemble(vm, src.ObjectiveSense())
	if err != nil {
		return nil, fail(vm, err)
	}

	if vm.Attributes.Quadratize {
		h, err = Quadratize(vm, h)
		if err != nil {
			return nil, fail(vm, err)
		}
	}
	vm.H = h

	prob, err := Emit(vm, h)
	if err != nil {
		return nil, fail(vm, err)
	}

	vm.SetCompilationTime(time.Since(start))
	vm.SetStatus(vmodel.LocallyCompiled)
	logger.Logger().Info().Dur("elapsed", vm.CompilationTime()).Int("variables", prob.NumVariables).Msg("compile finished")
	return prob, nil
}

func fail(vm *vmodel.Model, err error) error {
	logger.Logger().Error().Err(err).Msg("compile failed")
	vm.Fail(err.Error())
	return err
}

// encodeVariables encodes every source variable declared by src, in the
// order src.VariableIndices() reports, registering each resulting virtual
// variable on vm and recording any encoding-validity penalty (one-hot,
// domain-wall) in vm.VariablePenalty.
func encodeVariables(vm *vmodel.Model, src qubo.SourceModel) error {
	for _, v := range src.VariableIndices() {
		domain, ok := src.Bound(v)
		if !ok {
			return &qubo.CompilationFailure{Reason: fmt.Sprintf("variable %s has no declared bound", v)}
		}
		kind := vm.Attributes.VariableEncodingMethod(v)
		bits := vm.Attributes.VariableEncodingBits(v)
		tol := vm.Attributes.VariableEncodingTolerance(v)

		vv, err := encoding.Encode(kind, domain, &v, bits, tol, vm.Allocator())
		if err != nil {
			return fmt.Errorf("compile: encoding variable %s: %w", v, err)
		}
		if err := vm.Register(vv); err != nil {
			return err
		}
		if vv.Penalty != nil {
			vm.VariablePenalty[v] = vv.Penalty
		}
	}
	return nil
}

// VerifyAssignment re-evaluates every constraint's violation PBF and every
// encoding's penalty PBF at a full target assignment, returning the first
// nonzero one as a CompilationFailure (§5.2 of SPEC_FULL.md), letting a
// caller sanity-check a sampler's bitstring against the original model
// without re-running the sampler.
func VerifyAssignment(vm *vmodel.Model, assignment map[vmodel.VI]int) error {
	for id, g := range vm.ConstraintViolation {
		val, err := g.EvaluateFull(assignment)
		if err != nil {
			return fmt.Errorf("compile: verifying constraint %q: %w", id, err)
		}
		if val != 0 {
			return &qubo.CompilationFailure{Reason: fmt.Sprintf("constraint %q violated (g=%v)", id, val)}
		}
	}
	for v, h := range vm.VariablePenalty {
		val, err := h.EvaluateFull(assignment)
		if err != nil {
			return fmt.Errorf("compile: verifying encoding penalty for %s: %w", v, err)
		}
		if val != 0 {
			return &qubo.CompilationFailure{Reason: fmt.Sprintf("encoding of %s invalid (h=%v)", v, val)}
		}
	}
	for id, s := range vm.Slack {
		val, err := s.EvaluateFull(assignment)
		if err != nil {
			return fmt.Errorf("compile: verifying slack encoding for %q: %w", id, err)
		}
		if val != 0 {
			return &qubo.CompilationFailure{Reason: fmt.Sprintf("slack encoding for %q invalid (h=%v)", id, val)}
		}
	}
	return nil
}
