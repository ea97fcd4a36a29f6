// Package fingerprint gives a deterministic byte serialization of an
// assembled Hamiltonian, making the "byte-identical target objectives"
// determinism property of spec §8 mechanically testable.
package fingerprint

import (
	"bytes"
	"math"

	"github.com/icza/bitio"
	"github.com/ronanh/intcomp"

	"github.com/toqubo/core/pbf"
	"github.com/toqubo/core/vmodel"
)

// Of returns a deterministic fingerprint of h. Terms are visited via
// SortedSupport so two structurally-equal polynomials fingerprint
// identically regardless of insertion order; each term's variable indices
// are bit-packed with intcomp (the pack's integer-list compression
// library, used here for a canonical compact encoding of a VI term-set
// rather than its original wire-list role) through a bitio.Writer, the
// same writer/TryWrite*/TryError/Close idiom the teacher's lzss compressor
// uses (here TryWriteBits).
func Of(h *pbf.PBF[vmodel.VI]) ([]byte, error) {
	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)

	terms := h.SortedSupport()
	bw.TryWriteBits(uint64(len(terms)), 32)

	for _, t := range terms {
		ints := make([]uint32, len(t.Vars))
		for i, v := range t.Vars {
			ints[i] = uint32(v)
		}
		compressed := intcomp.CompressUint32(ints, nil)

		bw.TryWriteBits(uint64(len(ints)), 32)
		bw.TryWriteBits(uint64(len(compressed)), 32)
		for _, c := range compressed {
			bw.TryWriteBits(uint64(c), 32)
		}
		bw.TryWriteBits(math.Float64bits(t.Coeff), 64)
	}

	if bw.TryError != nil {
		return nil, bw.TryError
	}
	if err := bw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
