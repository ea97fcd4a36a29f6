package compile

import (
	"sort"

	"github.com/toqubo/core/pbf"
	"github.com/toqubo/core/qubo"
	"github.com/toqubo/core/vmodel"
)

// Emit converts the quadratized Hamiltonian h into a canonical qubo.Problem
// (spec §4.5): constant terms accumulate into B; singleton terms become
// diagonal Q entries doubled per the symmetric convention (see
// qubo/problem.go); pair terms become symmetric off-diagonal Q entries. Any
// surviving term of degree >= 3 is a fatal compile failure reported as
// QuadratizationIncomplete.
//
// Target-variable indices are assigned in ascending VI order across every
// target ever registered on vm, matching the deterministic monotone
// allocation order required by spec §5.
func Emit(vm *vmodel.Model, h *pbf.PBF[vmodel.VI]) (*qubo.Problem, error) {
	var targets []vmodel.VI
	for _, vv := range vm.VirtualVariables() {
		targets = append(targets, vv.Targets...)
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })

	index := make(map[vmodel.VI]int, len(targets))
	for i, v := range targets {
		index[v] = i
	}

	prob := qubo.NewProblem(len(targets))
	var failure error
	h.ForEach(func(vars []vmodel.VI, c float64) {
		if failure != nil {
			return
		}
		switch len(vars) {
		case 0:
			prob.B += c
		case 1:
			i, ok := index[vars[0]]
			if !ok {
				failure = &qubo.CompilationFailure{Reason: "term references an unregistered variable"}
				return
			}
			prob.Q[i][i] += 2 * c
		case 2:
			i, ok1 := index[vars[0]]
			j, ok2 := index[vars[1]]
			if !ok1 || !ok2 {
				failure = &qubo.CompilationFailure{Reason: "term references an unregistered variable"}
				return
			}
			prob.Q[i][j] += c
			prob.Q[j][i] += c
		default:
			failure = &qubo.CompilationFailure{Reason: "QuadratizationIncomplete"}
		}
	})
	if failure != nil {
		return nil, failure
	}
	return prob, nil
}
