package pbf

import (
	"math"

	"golang.org/x/exp/constraints"
)

// maxDiscretizeScale bounds the search in Discretize; beyond this the
// tolerance is almost certainly unreachable for realistic coefficients and
// we fail rather than loop indefinitely.
const maxDiscretizeScale = 1 << 20

// Discretize scales every coefficient of f by a common factor so that each
// scaled coefficient is within tol of an integer, then rounds. For a PBF
// whose coefficients are already integers, scale=1 always qualifies, so
// Discretize(f, tol) == f for any tol > 0 (the round-trip property).
func (f *PBF[V]) Discretize(tol float64) (*PBF[V], error) {
	if tol <= 0 {
		return nil, newArithmeticError("discretize", "tolerance must be positive")
	}
	scale, err := findDiscretizeScale(f, tol)
	if err != nil {
		return nil, err
	}
	r := New[V]()
	f.ForEach(func(vars []V, c float64) {
		r.Insert(vars, math.Round(c*scale))
	})
	return r, nil
}

func findDiscretizeScale[V constraints.Integer](f *PBF[V], tol float64) (float64, error) {
	for scale := 1.0; scale <= maxDiscretizeScale; scale++ {
		fits := true
		f.ForEach(func(_ []V, c float64) {
			v := c * scale
			if math.Abs(v-math.Round(v)) > tol {
				fits = false
			}
		})
		if fits {
			return scale, nil
		}
	}
	return 0, newArithmeticError("discretize", "no integer scale found within the search bound")
}
