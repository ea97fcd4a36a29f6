package encoding

import (
	"github.com/toqubo/core/pbf"
	"github.com/toqubo/core/vmodel"
)

// Mirror returns a one-to-one binary passthrough ξ(y) = y: a single target,
// no penalty. Used both for ZeroOne source variables and, via MirrorAux, for
// the auxiliary binaries the quadratizer introduces.
func Mirror(source *vmodel.VI, alloc vmodel.Allocator) (*vmodel.VirtualVariable, error) {
	targets := alloc.Alloc(1)
	xi := pbf.New[vmodel.VI]()
	xi.Insert([]vmodel.VI{targets[0]}, 1)
	return &vmodel.VirtualVariable{
		Kind:    vmodel.Mirror,
		Source:  source,
		Targets: targets,
		Xi:      xi,
	}, nil
}

// MirrorAux mints a fresh auxiliary binary with no source and no penalty,
// the contract the quadratizer relies on when it introduces a substitution
// variable for a degree-reducing product (spec §4.2, "auxiliary binaries").
func MirrorAux(alloc vmodel.Allocator) (*vmodel.VirtualVariable, error) {
	return Mirror(nil, alloc)
}
