package compile

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toqubo/core/internal/fingerprint"
	"github.com/toqubo/core/pbf"
	"github.com/toqubo/core/qubo"
	"github.com/toqubo/core/vmodel"
)

// fixtureModel is a minimal qubo.SourceModel used by the pipeline tests
// below; real callers implement this interface against their own model
// representation.
type fixtureModel struct {
	vars        []qubo.VI
	bounds      map[qubo.VI]qubo.Domain
	sense       qubo.Sense
	objective   *qubo.Expr
	constraints []qubo.Constraint
}

func (m *fixtureModel) VariableIndices() []qubo.VI { return m.vars }
func (m *fixtureModel) Bound(v qubo.VI) (qubo.Domain, bool) {
	d, ok := m.bounds[v]
	return d, ok
}
func (m *fixtureModel) ObjectiveSense() qubo.Sense      { return m.sense }
func (m *fixtureModel) Objective() *qubo.Expr           { return m.objective }
func (m *fixtureModel) Constraints() []qubo.Constraint  { return m.constraints }
func (m *fixtureModel) Supports(qubo.ConstraintKind) bool { return true }

func binaryBounds(vars []qubo.VI) map[qubo.VI]qubo.Domain {
	b := make(map[qubo.VI]qubo.Domain, len(vars))
	for _, v := range vars {
		b[v] = qubo.Domain{A: 0, B: 1, Integer: true}
	}
	return b
}

// evalQUBO evaluates ½yᵀQy + b at the given bit assignment.
func evalQUBO(prob *qubo.Problem, bits []int) float64 {
	sum := prob.B
	for i := 0; i < prob.NumVariables; i++ {
		for j := 0; j < prob.NumVariables; j++ {
			sum += 0.5 * prob.Q[i][j] * float64(bits[i]) * float64(bits[j])
		}
	}
	return sum
}

// bruteForceMinimum returns the minimizing bit pattern and value of prob,
// for small enough NumVariables to enumerate exhaustively.
func bruteForceMinimum(t *testing.T, prob *qubo.Problem) ([]int, float64) {
	t.Helper()
	require.LessOrEqual(t, prob.NumVariables, 20, "brute force search only safe for small variable counts")
	best := make([]int, prob.NumVariables)
	bestVal := evalQUBO(prob, best)
	bits := make([]int, prob.NumVariables)
	for mask := 0; mask < (1 << uint(prob.NumVariables)); mask++ {
		for i := range bits {
			bits[i] = (mask >> uint(i)) & 1
		}
		v := evalQUBO(prob, bits)
		if v < bestVal {
			bestVal = v
			copy(best, bits)
		}
	}
	return best, bestVal
}

// assignmentFromBits builds the VI->bit map Decode expects, assuming targets
// were minted contiguously starting at 0 (true for a fresh vmodel.New(0)
// with no prior allocations).
func assignmentFromBits(bits []int) map[vmodel.VI]int {
	out := make(map[vmodel.VI]int, len(bits))
	for i, b := range bits {
		out[vmodel.VI(i)] = b
	}
	return out
}

// Scenario 1 (spec §8): maximize xᵀAx over x ∈ {0,1}³ subject to SOS1(x),
// A = [[-1,2,2],[2,-1,2],[2,2,-1]]. Expected optimum: x=(0,0,0), value 0.
func TestPipelineScenario1_SOS1MaxCutLikeObjective(t *testing.T) {
	x1, x2, x3 := qubo.VI(1), qubo.VI(2), qubo.VI(3)
	obj := qubo.NewExpr()
	obj.AddLinear(x1, -1).AddLinear(x2, -1).AddLinear(x3, -1)
	obj.AddQuadratic(x1, x2, 4).AddQuadratic(x1, x3, 4).AddQuadratic(x2, x3, 4)

	model := &fixtureModel{
		vars:      []qubo.VI{x1, x2, x3},
		bounds:    binaryBounds([]qubo.VI{x1, x2, x3}),
		sense:     qubo.Maximize,
		objective: obj,
		constraints: []qubo.Constraint{
			{ID: "sos1", Kind: qubo.SOS1, Vars: []qubo.VI{x1, x2, x3}},
		},
	}

	vm := vmodel.New(0)
	prob, err := Compile(vm, model)
	require.NoError(t, err)
	require.Equal(t, vmodel.LocallyCompiled, vm.Status())

	bits, _ := bruteForceMinimum(t, prob)
	decoded, err := vm.Decode(assignmentFromBits(bits))
	require.NoError(t, err)

	nonzero := 0
	for _, v := range decoded {
		if v != 0 {
			nonzero++
		}
	}
	require.LessOrEqual(t, nonzero, 1, "SOS1 must hold at the optimum")
	require.Equal(t, 0.0, decoded[x1]+decoded[x2]+decoded[x3], "expected optimum x=(0,0,0)")
}

// Scenario 3 (spec §8): Max-Cut on a 5-node graph, edges
// {(1,2),(1,3),(2,4),(3,4),(3,5),(4,5)}, objective Σ G_ij·(x_i XOR x_j),
// XOR(x,y) = x+y-2xy. Expected optimum cut value 5.
func TestPipelineScenario3_MaxCut(t *testing.T) {
	nodes := []qubo.VI{1, 2, 3, 4, 5}
	edges := [][2]qubo.VI{{1, 2}, {1, 3}, {2, 4}, {3, 4}, {3, 5}, {4, 5}}

	obj := qubo.NewExpr()
	for _, e := range edges {
		obj.AddLinear(e[0], 1)
		obj.AddLinear(e[1], 1)
		obj.AddQuadratic(e[0], e[1], -2)
	}

	model := &fixtureModel{
		vars:      nodes,
		bounds:    binaryBounds(nodes),
		sense:     qubo.Maximize,
		objective: obj,
	}

	vm := vmodel.New(0)
	prob, err := Compile(vm, model)
	require.NoError(t, err)

	bits, _ := bruteForceMinimum(t, prob)
	decoded, err := vm.Decode(assignmentFromBits(bits))
	require.NoError(t, err)

	cutValue := 0.0
	for _, e := range edges {
		xi, xj := decoded[e[0]], decoded[e[1]]
		cutValue += xi + xj - 2*xi*xj
	}
	require.Equal(t, 5.0, cutValue)
}

// Scenario 2 (spec §8): p·q = 15, 2≤p≤4 (int), 4≤q≤8 (int),
// StableQuadratization on. Expected optimum p=3, q=5. This constraint's
// violation PBF is degree ≥3 before quadratization (squaring a two-variable
// product), so this scenario is the pipeline's real exercise of Quadratize;
// see DESIGN.md for why this test checks the translated violation PBF
// directly rather than reproducing the worked example's exact variable
// count and matrix.
func TestPipelineScenario2_Factoring(t *testing.T) {
	p, q := qubo.VI(1), qubo.VI(2)
	model := &fixtureModel{
		vars: []qubo.VI{p, q},
		bounds: map[qubo.VI]qubo.Domain{
			p: {A: 2, B: 4, Integer: true},
			q: {A: 4, B: 8, Integer: true},
		},
		sense:     qubo.Minimize,
		objective: qubo.NewExpr(),
		constraints: []qubo.Constraint{
			{ID: "p*q=15", Kind: qubo.Eq, Expr: qubo.NewExpr().AddQuadratic(p, q, 1), RHS: 15},
		},
	}
	model.bounds[p] = qubo.Domain{A: 2, B: 4, Integer: true}

	vm := vmodel.New(0)
	vm.Attributes.Apply(vmodel.WithStableQuadratization(true))
	prob, err := Compile(vm, model)
	require.NoError(t, err)
	require.Equal(t, vmodel.LocallyCompiled, vm.Status())
	require.GreaterOrEqual(t, prob.NumVariables, 5)

	g := vm.ConstraintViolation["p*q=15"]
	pXi, _ := vm.ExpansionOf(p)
	qXi, _ := vm.ExpansionOf(q)

	findAssignment := func(xi *pbf.PBF[vmodel.VI], targets []vmodel.VI, want float64) map[vmodel.VI]int {
		for mask := 0; mask < (1 << uint(len(targets))); mask++ {
			a := map[vmodel.VI]int{}
			for i, v := range targets {
				a[v] = (mask >> uint(i)) & 1
			}
			val, err := xi.EvaluateFull(a)
			if err != nil || val != want {
				continue
			}
			return a
		}
		return nil
	}

	pVV, _ := vm.LookupSource(p)
	qVV, _ := vm.LookupSource(q)
	feasible := map[vmodel.VI]int{}
	pAssignment := findAssignment(pXi, pVV.Targets, 3)
	qAssignment := findAssignment(qXi, qVV.Targets, 5)
	require.NotNil(t, pAssignment)
	require.NotNil(t, qAssignment)
	for k, v := range pAssignment {
		feasible[k] = v
	}
	for k, v := range qAssignment {
		feasible[k] = v
	}

	val, err := g.EvaluateFull(feasible)
	require.NoError(t, err)
	require.Zero(t, val, "p=3, q=5 must be a feasible (zero-violation) solution")

	infeasible := map[vmodel.VI]int{}
	for k, v := range feasible {
		infeasible[k] = v
	}
	// Flip one bit of q's encoding to break p*q=15.
	infeasible[qVV.Targets[0]] = 1 - infeasible[qVV.Targets[0]]
	val2, err := g.EvaluateFull(infeasible)
	require.NoError(t, err)
	qVal, _ := qXi.EvaluateFull(infeasible)
	if qVal != 5 {
		require.NotZero(t, val2)
	}
}

func TestDeterminismWithStableQuadratization(t *testing.T) {
	p, q := qubo.VI(1), qubo.VI(2)
	build := func() *fixtureModel {
		return &fixtureModel{
			vars: []qubo.VI{p, q},
			bounds: map[qubo.VI]qubo.Domain{
				p: {A: 2, B: 4, Integer: true},
				q: {A: 4, B: 8, Integer: true},
			},
			sense:     qubo.Minimize,
			objective: qubo.NewExpr(),
			constraints: []qubo.Constraint{
				{ID: "p*q=15", Kind: qubo.Eq, Expr: qubo.NewExpr().AddQuadratic(p, q, 1), RHS: 15},
			},
		}
	}

	vm1 := vmodel.New(0)
	vm1.Attributes.Apply(vmodel.WithStableQuadratization(true))
	_, err := Compile(vm1, build())
	require.NoError(t, err)

	vm2 := vmodel.New(0)
	vm2.Attributes.Apply(vmodel.WithStableQuadratization(true))
	_, err = Compile(vm2, build())
	require.NoError(t, err)

	fp1, err := fingerprint.Of(vm1.H)
	require.NoError(t, err)
	fp2, err := fingerprint.Of(vm2.H)
	require.NoError(t, err)
	require.Equal(t, fp1, fp2)
}
