package pbf

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ApproxEqual reports whether f and g have the same support with
// coefficient-wise approximate equality, each within tol (absolute and
// relative, via cmpopts.EquateApprox). Terms present in one polynomial but
// not the other always fail the comparison, matching the exact-equality
// semantics except for the coefficient comparison itself.
func (f *PBF[V]) ApproxEqual(g *PBF[V], tol float64) bool {
	return cmp.Equal(f.SortedSupport(), g.SortedSupport(), cmpopts.EquateApprox(tol, tol))
}
