package qubo

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Problem is the target model emitted by Compile: a quadratic objective
// ½xᵀQx + aᵀx + b over NumVariables binary variables (§6/§7).
//
// Convention: this compiler always uses the symmetric convention — Q is
// symmetric and its diagonal carries linear terms (Q[i][i] = 2 * the
// coefficient of x_i, so that ½Q[i][i]x_i² = ½Q[i][i]x_i reproduces it,
// since x_i² = x_i for binary x_i), rather than splitting linear terms into
// a separate affine vector. A is therefore always the zero vector; it is
// kept on the struct only so a caller that prefers the split convention has
// somewhere to put it. This module documents and adheres to this one
// convention consistently, as §6 requires.
type Problem struct {
	NumVariables int         `cbor:"num_variables"`
	Q            [][]float64 `cbor:"q"`
	A            []float64   `cbor:"a"`
	B            float64     `cbor:"b"`
}

// NewProblem returns a zeroed n-variable problem with Q and A allocated.
func NewProblem(n int) *Problem {
	q := make([][]float64, n)
	for i := range q {
		q[i] = make([]float64, n)
	}
	return &Problem{NumVariables: n, Q: q, A: make([]float64, n)}
}

// countingWriter wraps an io.Writer to report the number of bytes written,
// the detail io.WriterTo needs that cbor.Encoder's own Encode doesn't
// surface.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// WriteTo encodes the problem as CBOR, grounded on the teacher's
// SparseR1CS.WriteTo/ReadFrom pair (internal/backend/.../r1cs_sparse.go),
// which uses the same cbor.NewEncoder round-trip for its own canonical
// serialization.
func (p *Problem) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	enc := cbor.NewEncoder(cw)
	if err := enc.Encode(p); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// ReadFrom decodes a problem previously written by WriteTo.
func (p *Problem) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return 0, err
	}
	if err := dm.NewDecoder(cr).Decode(p); err != nil {
		return cr.n, err
	}
	return cr.n, nil
}
