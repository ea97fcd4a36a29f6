package vmodel

import "github.com/toqubo/core/pbf"

// Allocator mints fresh target VIs in deterministic, monotone order. The
// quadratizer and the encoders both depend only on this interface, never on
// the Virtual Model's internal layout (spec §9, "Auxiliary allocation
// during quadratization").
type Allocator interface {
	Alloc(n int) []VI
}

// CountingAllocator is the default Allocator: it hands out VIs
// next, next+1, ... in order and advances next by n each call.
type CountingAllocator struct {
	next VI
}

// NewCountingAllocator returns an allocator that starts minting VIs at
// start.
func NewCountingAllocator(start VI) *CountingAllocator {
	return &CountingAllocator{next: start}
}

func (a *CountingAllocator) Alloc(n int) []VI {
	out := make([]VI, n)
	for i := 0; i < n; i++ {
		out[i] = a.next
		a.next++
	}
	return out
}

// VirtualVariable bundles an encoding choice, its optional source VI (absent
// for auxiliaries), its ordered target VIs, its expansion polynomial ξ, and
// its optional penalty polynomial h.
type VirtualVariable struct {
	Kind    EncodingKind
	Source  *VI // nil for auxiliaries
	Targets []VI
	Xi      *pbf.PBF[VI]
	Penalty *pbf.PBF[VI] // nil when the encoding has no penalty
}

// IsAuxiliary reports whether this virtual variable has no source (it was
// introduced by the quadratizer, not by a source-model variable).
func (vv *VirtualVariable) IsAuxiliary() bool {
	return vv.Source == nil
}
