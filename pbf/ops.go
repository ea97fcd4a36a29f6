package pbf

// Add returns f + g, preserving both operands.
func (f *PBF[V]) Add(g *PBF[V]) *PBF[V] {
	r := f.Clone()
	r.AddAssign(g)
	return r
}

// AddAssign mutates f in place to f + g, an optimization over Add for
// callers that don't need to keep f's prior value (see spec §9, "mutable
// arithmetic").
func (f *PBF[V]) AddAssign(g *PBF[V]) *PBF[V] {
	g.ForEach(func(vars []V, c float64) {
		f.AddTerm(vars, c)
	})
	return f
}

// Sub returns f - g.
func (f *PBF[V]) Sub(g *PBF[V]) *PBF[V] {
	r := f.Clone()
	g.ForEach(func(vars []V, c float64) {
		r.AddTerm(vars, -c)
	})
	return r
}

// Neg returns -f.
func (f *PBF[V]) Neg() *PBF[V] {
	r := New[V]()
	f.ForEach(func(vars []V, c float64) {
		r.Insert(vars, -c)
	})
	return r
}

// Mul returns f * g. Every pair of terms (ω_i, c_i) in f and (ω_j, c_j) in g
// contributes c_i*c_j to the term ω_i ∪ ω_j (multilinear reduction via set
// union).
func (f *PBF[V]) Mul(g *PBF[V]) *PBF[V] {
	r := New[V]()
	f.ForEach(func(va []V, ca float64) {
		g.ForEach(func(vb []V, cb float64) {
			r.AddTerm(unionVars(va, vb), ca*cb)
		})
	})
	return r
}

// MulAdd mutates f in place to f + g*h, an in-place fused multiply-add
// avoiding an intermediate allocation for g*h (spec §9, "mutable
// arithmetic").
func (f *PBF[V]) MulAdd(g, h *PBF[V]) *PBF[V] {
	g.ForEach(func(va []V, ca float64) {
		h.ForEach(func(vb []V, cb float64) {
			f.AddTerm(unionVars(va, vb), ca*cb)
		})
	})
	return f
}

// ScalarMul returns c*f.
func (f *PBF[V]) ScalarMul(c float64) *PBF[V] {
	r := New[V]()
	f.ForEach(func(vars []V, coeff float64) {
		r.Insert(vars, coeff*c)
	})
	return r
}

// ScalarDiv returns f/c. It fails with ArithmeticError when c is zero.
func (f *PBF[V]) ScalarDiv(c float64) (*PBF[V], error) {
	if c == 0 {
		return nil, newArithmeticError("scalar-div", "division by zero")
	}
	return f.ScalarMul(1 / c), nil
}

// Pow returns f^n by fast (square-and-multiply) exponentiation using the
// multilinear product. n must be >= 0.
func (f *PBF[V]) Pow(n int) (*PBF[V], error) {
	if n < 0 {
		return nil, newArithmeticError("pow", "negative exponent")
	}
	if n == 0 {
		return Constant[V](1), nil
	}
	result := Constant[V](1)
	base := f.Clone()
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result, nil
}

// AsScalar returns the constant value of f, failing with ArithmeticError if
// f has any non-constant term.
func (f *PBF[V]) AsScalar() (float64, error) {
	if f.Degree() > 0 {
		return 0, newArithmeticError("as-scalar", "polynomial is not constant")
	}
	return f.Const(), nil
}
