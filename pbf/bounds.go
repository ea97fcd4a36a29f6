package pbf

// Degree returns the size of the largest term-set in f's support (0 for the
// zero polynomial or a purely constant one).
func (f *PBF[V]) Degree() int {
	d := 0
	f.ForEach(func(vars []V, _ float64) {
		if len(vars) > d {
			d = len(vars)
		}
	})
	return d
}

// LowerBound returns a loose lower bound on f over {0,1}^n: the constant
// term plus the sum of every negative non-constant coefficient (each
// Boolean variable can only ever subtract its full coefficient's worth from
// the sum). This is the bound used throughout for penalty-weight sizing,
// not a tight optimum.
func (f *PBF[V]) LowerBound() float64 {
	lb := f.Const()
	f.ForEach(func(vars []V, c float64) {
		if len(vars) > 0 && c < 0 {
			lb += c
		}
	})
	return lb
}

// UpperBound is the dual of LowerBound: the constant term plus the sum of
// every positive non-constant coefficient.
func (f *PBF[V]) UpperBound() float64 {
	ub := f.Const()
	f.ForEach(func(vars []V, c float64) {
		if len(vars) > 0 && c > 0 {
			ub += c
		}
	})
	return ub
}

// Gap returns UpperBound - LowerBound.
func (f *PBF[V]) Gap() float64 {
	return f.UpperBound() - f.LowerBound()
}
