package compile

import (
	"math"

	"github.com/toqubo/core/encoding"
	"github.com/toqubo/core/pbf"
	"github.com/toqubo/core/vmodel"
)

// Quadratize reduces every term of h with degree ≥ 3 to degree ≤ 2 by
// Rosenberg substitution (spec §4.5): repeatedly pick a degree-≥3 term,
// introduce an auxiliary binary z standing in for the product of its first
// two variables x·y, rewrite every occurrence of {x,y} (anywhere in the
// polynomial, including already-quadratic terms — valid because the
// penalty below forces z = x·y at the optimum) to {z}, and add the penalty
// bound·(x·y − 2x·z − 2y·z + 3z), which is uniquely minimized at z = x·y.
// bound is sized against h's own gap, the same loose-bound technique used
// for constraint/variable penalties elsewhere in this package.
//
// Substitution pairs are cached so the same (x,y) product is represented by
// one auxiliary everywhere it recurs, rather than minting a fresh one per
// occurrence. When vm.Attributes.StableQuadratization is set, degree-≥3
// terms are visited in sorted order (term-set lexicographically, then
// coefficient) and auxiliaries are allocated in that order, guaranteeing
// reproducible output across repeated compiles of the same model.
func Quadratize(vm *vmodel.Model, h *pbf.PBF[vmodel.VI]) (*pbf.PBF[vmodel.VI], error) {
	result := h.Clone()
	bound := 1 + math.Ceil(h.Gap())
	pairAux := map[[2]vmodel.VI]vmodel.VI{}

	for {
		target := nextHighDegreeTerm(result, vm.Attributes.StableQuadratization)
		if target == nil {
			break
		}
		x, y := target[0], target[1]
		key := [2]vmodel.VI{x, y}

		z, cached := pairAux[key]
		if !cached {
			aux, err := encoding.MirrorAux(vm.Allocator())
			if err != nil {
				return nil, err
			}
			if err := vm.Register(aux); err != nil {
				return nil, err
			}
			z = aux.Targets[0]
			pairAux[key] = z

			result = substitutePair(result, x, y, z)
			result.AddTerm([]vmodel.VI{x, y}, bound)
			result.AddTerm([]vmodel.VI{x, z}, -2*bound)
			result.AddTerm([]vmodel.VI{y, z}, -2*bound)
			result.AddTerm([]vmodel.VI{z}, 3*bound)
		} else {
			result = substitutePair(result, x, y, z)
		}
	}
	return result, nil
}

// nextHighDegreeTerm returns the variable list of the first term with
// degree >= 3, or nil if none remain.
func nextHighDegreeTerm(f *pbf.PBF[vmodel.VI], stable bool) []vmodel.VI {
	var support []pbf.Term[vmodel.VI]
	if stable {
		support = f.SortedSupport()
	} else {
		support = f.Support()
	}
	for _, t := range support {
		if len(t.Vars) >= 3 {
			return t.Vars
		}
	}
	return nil
}

// substitutePair rewrites every term of f containing both x and y, replacing
// that pair with z; terms containing only one of x, y (or neither) are
// copied unchanged.
func substitutePair(f *pbf.PBF[vmodel.VI], x, y, z vmodel.VI) *pbf.PBF[vmodel.VI] {
	r := pbf.New[vmodel.VI]()
	f.ForEach(func(vars []vmodel.VI, c float64) {
		hasX, hasY := false, false
		rest := make([]vmodel.VI, 0, len(vars)+1)
		for _, v := range vars {
			switch v {
			case x:
				hasX = true
			case y:
				hasY = true
			default:
				rest = append(rest, v)
			}
		}
		if hasX && hasY {
			rest = append(rest, z)
		} else {
			if hasX {
				rest = append(rest, x)
			}
			if hasY {
				rest = append(rest, y)
			}
		}
		r.AddTerm(rest, c)
	})
	return r
}
