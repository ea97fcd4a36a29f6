package pbf

// EvaluatePartial substitutes the given 0/1 assignment into f, returning the
// residual PBF: terms containing an assigned-zero variable vanish;
// assigned-one variables are removed from their term-sets (since x=1
// doesn't change the product); unassigned variables are left free.
func (f *PBF[V]) EvaluatePartial(x map[V]int) *PBF[V] {
	r := New[V]()
	f.ForEach(func(vars []V, c float64) {
		keep := make([]V, 0, len(vars))
		for _, v := range vars {
			val, assigned := x[v]
			if !assigned {
				keep = append(keep, v)
				continue
			}
			if val == 0 {
				return
			}
			// val == 1: drop from the term, coefficient unaffected.
		}
		r.AddTerm(keep, c)
	})
	return r
}

// EvaluateFull evaluates f at a full 0/1 assignment, returning
// Σ{c_ω : ω ⊆ {j : x_j = 1}}. It fails with ArithmeticError if any variable
// appearing in f's support is missing from x.
func (f *PBF[V]) EvaluateFull(x map[V]int) (float64, error) {
	residual := f.EvaluatePartial(x)
	if residual.Degree() > 0 {
		return 0, newArithmeticError("evaluate", "assignment does not cover every variable in the support")
	}
	return residual.Const(), nil
}
