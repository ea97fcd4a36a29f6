package encoding

import (
	"github.com/toqubo/core/pbf"
	"github.com/toqubo/core/vmodel"
)

// Linear builds the raw affine expansion ξ(y) = α + Σ γ_i y_i against a
// freshly allocated target for each coefficient in gamma, with no penalty.
// Every non-Mirror encoding below reduces to a Linear expansion plus,
// where the encoding calls for one, a penalty polynomial.
func Linear(gamma []float64, alpha float64, source *vmodel.VI, alloc vmodel.Allocator) (*vmodel.VirtualVariable, error) {
	targets := alloc.Alloc(len(gamma))
	xi := pbf.New[vmodel.VI]()
	if alpha != 0 {
		xi.Insert(nil, alpha)
	}
	for i, g := range gamma {
		if g == 0 {
			continue
		}
		xi.AddTerm([]vmodel.VI{targets[i]}, g)
	}
	return &vmodel.VirtualVariable{
		Kind:    vmodel.Linear,
		Source:  source,
		Targets: targets,
		Xi:      xi,
	}, nil
}
