package pbf

import (
	"encoding/binary"
	"sort"

	"golang.org/x/exp/constraints"
)

// canonicalize returns the sorted, deduplicated term-set for vars. Since
// x_j^2 = x_j on {0,1}, a repeated variable collapses into a single
// occurrence: terms are sets, not multisets.
func canonicalize[V constraints.Integer](vars []V) []V {
	if len(vars) == 0 {
		return nil
	}
	cp := append([]V(nil), vars...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	out := cp[:1]
	for _, v := range cp[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// termKey builds a canonical, content-addressed map key from an already
// canonicalized (sorted, deduplicated) term-set. It is a plain big-endian
// encoding rather than a block-oriented integer codec: term-sets are
// typically tiny (0-3 variables for most encodings, a handful for
// quadratization residues), well below the block sizes that a compressor
// such as ronanh/intcomp is designed for — see DESIGN.md for where that
// library is put to work instead (internal/fingerprint, which serializes
// much longer integer streams).
func termKey[V constraints.Integer](sorted []V) string {
	buf := make([]byte, 8*len(sorted))
	for i, v := range sorted {
		binary.BigEndian.PutUint64(buf[i*8:], uint64(int64(v)))
	}
	return string(buf)
}

// unionVars merges two canonical term-sets, producing a new canonical
// (sorted, deduplicated) term-set. This implements the multilinear
// reduction used by PBF multiplication: x_i * x_j collapses to x_i when
// i == j.
func unionVars[V constraints.Integer](a, b []V) []V {
	merged := make([]V, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	return canonicalize(merged)
}
