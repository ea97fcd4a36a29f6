package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toqubo/core/vmodel"
)

// bruteForceAssignments enumerates every {0,1}^n assignment over targets,
// small domains only (n <= 14 keeps 2^n manageable for unit tests).
func bruteForceAssignments(targets []vmodel.VI) []map[vmodel.VI]int {
	n := len(targets)
	out := make([]map[vmodel.VI]int, 0, 1<<uint(n))
	for mask := 0; mask < (1 << uint(n)); mask++ {
		a := make(map[vmodel.VI]int, n)
		for i, t := range targets {
			a[t] = (mask >> uint(i)) & 1
		}
		out = append(out, a)
	}
	return out
}

// checkCoverage asserts that for every integer v in [lo, hi] there exists a
// target assignment with ξ(y) = v and, if vv has a penalty, h(y) = 0.
func checkCoverage(t *testing.T, vv *vmodel.VirtualVariable, lo, hi int) {
	t.Helper()
	reached := map[int]bool{}
	for _, a := range bruteForceAssignments(vv.Targets) {
		if vv.Penalty != nil {
			h, err := vv.Penalty.EvaluateFull(a)
			require.NoError(t, err)
			require.GreaterOrEqual(t, h, 0.0, "penalty must be non-negative")
			if h != 0 {
				continue
			}
		}
		val, err := vv.Xi.EvaluateFull(a)
		require.NoError(t, err)
		require.True(t, math.Abs(val-math.Round(val)) < 1e-9, "integer encoding must reach an integer value, got %v", val)
		rounded := int(math.Round(val))
		require.GreaterOrEqualf(t, rounded, lo, "zero-penalty value %d falls below the domain lower bound", rounded)
		require.LessOrEqualf(t, rounded, hi, "zero-penalty value %d overshoots the domain upper bound", rounded)
		reached[rounded] = true
	}
	for v := lo; v <= hi; v++ {
		require.Truef(t, reached[v], "value %d not reachable with zero penalty", v)
	}
}

func TestUnaryIntCoverage(t *testing.T) {
	alloc := vmodel.NewCountingAllocator(0)
	vv, err := UnaryInt(vmodel.Domain{A: 2, B: 5, Integer: true}, nil, alloc)
	require.NoError(t, err)
	require.Nil(t, vv.Penalty)
	checkCoverage(t, vv, 2, 5)
}

func TestBinaryIntCoverage(t *testing.T) {
	alloc := vmodel.NewCountingAllocator(0)
	vv, err := BinaryInt(vmodel.Domain{A: -1, B: 6, Integer: true}, nil, alloc)
	require.NoError(t, err)
	checkCoverage(t, vv, -1, 6)
}

func TestArithmeticCoverage(t *testing.T) {
	alloc := vmodel.NewCountingAllocator(0)
	vv, err := Arithmetic(vmodel.Domain{A: 0, B: 9, Integer: true}, nil, alloc)
	require.NoError(t, err)
	checkCoverage(t, vv, 0, 9)
}

func TestOneHotCoverageAndPenalty(t *testing.T) {
	alloc := vmodel.NewCountingAllocator(0)
	vv, err := OneHot(vmodel.Domain{A: 3, B: 5, Integer: true}, nil, alloc)
	require.NoError(t, err)
	require.Len(t, vv.Targets, 3)
	checkCoverage(t, vv, 3, 5)

	for _, a := range bruteForceAssignments(vv.Targets) {
		sum := 0
		for _, v := range a {
			sum += v
		}
		h, err := vv.Penalty.EvaluateFull(a)
		require.NoError(t, err)
		if sum == 1 {
			require.Zero(t, h)
		} else {
			require.Greater(t, h, 0.0)
		}
	}
}

func TestDomainWallCoverageAndPenalty(t *testing.T) {
	alloc := vmodel.NewCountingAllocator(0)
	vv, err := DomainWall(vmodel.Domain{A: 0, B: 4, Integer: true}, nil, alloc)
	require.NoError(t, err)
	require.Len(t, vv.Targets, 4)
	checkCoverage(t, vv, 0, 4)

	for _, a := range bruteForceAssignments(vv.Targets) {
		monotone := true
		for i := 0; i < len(vv.Targets)-1; i++ {
			if a[vv.Targets[i+1]] == 1 && a[vv.Targets[i]] == 0 {
				monotone = false
				break
			}
		}
		h, err := vv.Penalty.EvaluateFull(a)
		require.NoError(t, err)
		if monotone {
			require.Zero(t, h)
		} else {
			require.Greater(t, h, 0.0)
		}
	}
}

func TestMirrorIsIdentity(t *testing.T) {
	alloc := vmodel.NewCountingAllocator(0)
	vv, err := Mirror(nil, alloc)
	require.NoError(t, err)
	require.Len(t, vv.Targets, 1)
	v0, _ := vv.Xi.EvaluateFull(map[vmodel.VI]int{vv.Targets[0]: 0})
	v1, _ := vv.Xi.EvaluateFull(map[vmodel.VI]int{vv.Targets[0]: 1})
	require.Equal(t, 0.0, v0)
	require.Equal(t, 1.0, v1)
}

func TestUnaryRealAndBinaryRealTolerance(t *testing.T) {
	domain := vmodel.Domain{A: 0, B: 1}
	n, err := UnaryBitsForTolerance(domain, 0.1)
	require.NoError(t, err)
	require.Equal(t, 4, n) // ceil(1 + 1/(4*0.1)) = ceil(3.5)

	nb, err := BinaryBitsForTolerance(domain, 0.1)
	require.NoError(t, err)
	require.Equal(t, 2, nb) // ceil(log2(1 + 1/(4*0.1))) = ceil(log2(3.5))

	alloc := vmodel.NewCountingAllocator(0)
	vv, err := UnaryReal(domain, n, nil, alloc)
	require.NoError(t, err)
	all1 := map[vmodel.VI]int{}
	for _, tt := range vv.Targets {
		all1[tt] = 1
	}
	val, err := vv.Xi.EvaluateFull(all1)
	require.NoError(t, err)
	require.InDelta(t, 1.0, val, 1e-9)
}

func TestArithmeticRealToleranceAndDispatch(t *testing.T) {
	domain := vmodel.Domain{A: 0, B: 1}
	n, err := ArithmeticBitsForTolerance(domain, 0.1)
	require.NoError(t, err)

	alloc := vmodel.NewCountingAllocator(0)
	vv, err := ArithmeticReal(domain, n, nil, alloc)
	require.NoError(t, err)
	require.Equal(t, vmodel.Arithmetic, vv.Kind)

	all1 := map[vmodel.VI]int{}
	for _, tt := range vv.Targets {
		all1[tt] = 1
	}
	val, err := vv.Xi.EvaluateFull(all1)
	require.NoError(t, err)
	require.InDelta(t, 1.0, val, 1e-9, "all-ones must reach the domain upper bound exactly")

	zero := map[vmodel.VI]int{}
	for _, tt := range vv.Targets {
		zero[tt] = 0
	}
	val0, err := vv.Xi.EvaluateFull(zero)
	require.NoError(t, err)
	require.InDelta(t, 0.0, val0, 1e-9)

	// Encode must route a non-integer domain's Arithmetic kind through the
	// tolerance-driven real path rather than the integer-only fixed-budget
	// one.
	dispatched, err := Encode(vmodel.Arithmetic, domain, nil, 0, 0.1, alloc)
	require.NoError(t, err)
	require.Equal(t, vmodel.Arithmetic, dispatched.Kind)
}

func TestEncodeDispatch(t *testing.T) {
	alloc := vmodel.NewCountingAllocator(0)
	src := vmodel.VI(100)
	vv, err := Encode(vmodel.BinaryInt, vmodel.Domain{A: 0, B: 3, Integer: true}, &src, 0, 0, alloc)
	require.NoError(t, err)
	require.Equal(t, vmodel.BinaryInt, vv.Kind)
	require.Equal(t, &src, vv.Source)

	_, err = Encode(vmodel.EncodingKind(999), vmodel.Domain{}, nil, 0, 0, alloc)
	require.Error(t, err)
}

func TestDomainErrors(t *testing.T) {
	alloc := vmodel.NewCountingAllocator(0)
	_, err := UnaryInt(vmodel.Domain{A: 5, B: 3, Integer: false}, nil, alloc)
	require.Error(t, err)

	_, err = UnaryReal(vmodel.Domain{A: 0, B: 1}, -1, nil, alloc)
	require.Error(t, err)

	_, err = BinaryBitsForTolerance(vmodel.Domain{A: 0, B: 1}, 0)
	require.Error(t, err)
}
