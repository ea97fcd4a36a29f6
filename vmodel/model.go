package vmodel

import (
	"fmt"
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/toqubo/core/logger"
	"github.com/toqubo/core/pbf"
)

// Model is the Virtual Model registry (C3): the ordered list of virtual
// variables, source/target lookup tables, per-component PBFs and
// per-entity penalty weights, and the working Hamiltonian. It is the sole
// mutable resource of the compiler; per spec §5 it is single-writer — no
// method may be called concurrently with any other on the same Model.
type Model struct {
	Attributes *Attributes

	vvs      []*VirtualVariable
	bySource map[VI]*VirtualVariable
	byTarget map[VI]*VirtualVariable
	// owned tracks every target VI that already belongs to a virtual
	// variable, giving the no-double-ownership invariant an O(1) check
	// instead of a linear scan over vvs (grounded on the teacher's use of
	// bits-and-blooms/bitset to track constrained/unconstrained wires).
	owned *bitset.BitSet

	alloc *CountingAllocator

	status        Status
	compileTime   time.Duration
	failureReason string

	// Objective is f, the translated objective PBF.
	Objective *pbf.PBF[VI]
	// ConstraintViolation is g per constraint id.
	ConstraintViolation map[string]*pbf.PBF[VI]
	// VariablePenalty is h per source VI (only set for one-hot/domain-wall).
	VariablePenalty map[VI]*pbf.PBF[VI]
	// Slack is s per constraint id (only set for inequality constraints).
	Slack map[string]*pbf.PBF[VI]

	// ConstraintWeight is ρ per constraint id.
	ConstraintWeight map[string]float64
	// VariableWeight is θ per source VI.
	VariableWeight map[VI]float64
	// SlackWeight is η per constraint id.
	SlackWeight map[string]float64

	// H is the working Hamiltonian once Assemble has run.
	H *pbf.PBF[VI]
}

// New returns an empty Virtual Model with default attributes. Target
// allocation for source-derived virtual variables and auxiliaries shares a
// single monotone counter starting at start, guaranteeing the deterministic
// target-index ordering required by spec §5.
func New(start VI) *Model {
	return &Model{
		Attributes:          DefaultAttributes(),
		bySource:            map[VI]*VirtualVariable{},
		byTarget:            map[VI]*VirtualVariable{},
		owned:               bitset.New(0),
		alloc:               NewCountingAllocator(start),
		status:              NotStarted,
		ConstraintViolation: map[string]*pbf.PBF[VI]{},
		VariablePenalty:     map[VI]*pbf.PBF[VI]{},
		Slack:               map[string]*pbf.PBF[VI]{},
		ConstraintWeight:    map[string]float64{},
		VariableWeight:      map[VI]float64{},
		SlackWeight:         map[string]float64{},
	}
}

// Allocator exposes the model's target-VI allocator, shared by encoders and
// the quadratizer so that every minted VI is globally unique.
func (m *Model) Allocator() Allocator {
	return m.alloc
}

// Register appends vv to the model, updating the source->vv map (unless vv
// is auxiliary) and the target->vv map and ownership bitset for every
// target it owns. It fails if vv's source is already registered or any of
// its targets are already owned by another virtual variable.
func (m *Model) Register(vv *VirtualVariable) error {
	if vv.Source != nil {
		if _, exists := m.bySource[*vv.Source]; exists {
			return fmt.Errorf("vmodel: source variable %s already has an encoding", *vv.Source)
		}
	}
	for _, t := range vv.Targets {
		if m.owned.Test(uint(t)) {
			return fmt.Errorf("vmodel: target variable %s is already owned by another virtual variable", t)
		}
	}

	m.vvs = append(m.vvs, vv)
	if vv.Source != nil {
		m.bySource[*vv.Source] = vv
	}
	for _, t := range vv.Targets {
		m.owned.Set(uint(t))
		m.byTarget[t] = vv
	}
	logger.Logger().Debug().
		Str("encoding", vv.Kind.String()).
		Int("targets", len(vv.Targets)).
		Bool("auxiliary", vv.IsAuxiliary()).
		Msg("registered virtual variable")
	return nil
}

// LookupSource returns the virtual variable owning source variable x.
func (m *Model) LookupSource(x VI) (*VirtualVariable, bool) {
	vv, ok := m.bySource[x]
	return vv, ok
}

// LookupTarget returns the virtual variable owning target variable y.
func (m *Model) LookupTarget(y VI) (*VirtualVariable, bool) {
	vv, ok := m.byTarget[y]
	return vv, ok
}

// ExpansionOf returns ξ of the virtual variable owning source variable x.
func (m *Model) ExpansionOf(x VI) (*pbf.PBF[VI], error) {
	vv, ok := m.LookupSource(x)
	if !ok {
		return nil, fmt.Errorf("vmodel: source variable %s has not been encoded", x)
	}
	return vv.Xi, nil
}

// VirtualVariables returns every registered virtual variable in
// registration order.
func (m *Model) VirtualVariables() []*VirtualVariable {
	return m.vvs
}

// Status returns the current compilation status.
func (m *Model) Status() Status { return m.status }

// SetStatus transitions the model's compilation status, logging the
// transition.
func (m *Model) SetStatus(s Status) {
	logger.Logger().Debug().Str("from", m.status.String()).Str("to", s.String()).Msg("compilation status transition")
	m.status = s
}

// FailureReason returns the raw status string recorded by the last Failed
// transition, if any.
func (m *Model) FailureReason() string { return m.failureReason }

// Fail transitions the model to Failed, recording reason.
func (m *Model) Fail(reason string) {
	m.failureReason = reason
	m.SetStatus(Failed)
}

// CompilationTime returns the wall-clock duration of the last compile!
// call.
func (m *Model) CompilationTime() time.Duration { return m.compileTime }

// SetCompilationTime records the wall-clock duration of a compile! call.
func (m *Model) SetCompilationTime(d time.Duration) { m.compileTime = d }

// Reset empties all derived state (status, per-component PBFs, Hamiltonian)
// and returns the model to NotStarted. Registered virtual variables are
// cleared as well: Reset fully re-opens the model for a fresh compile!, per
// spec §3 ("source is preserved or cleared per contract").
func (m *Model) Reset() {
	m.vvs = nil
	m.bySource = map[VI]*VirtualVariable{}
	m.byTarget = map[VI]*VirtualVariable{}
	m.owned = bitset.New(0)
	m.alloc = NewCountingAllocator(0)
	m.status = NotStarted
	m.compileTime = 0
	m.failureReason = ""
	m.Objective = nil
	m.ConstraintViolation = map[string]*pbf.PBF[VI]{}
	m.VariablePenalty = map[VI]*pbf.PBF[VI]{}
	m.Slack = map[string]*pbf.PBF[VI]{}
	m.ConstraintWeight = map[string]float64{}
	m.VariableWeight = map[VI]float64{}
	m.SlackWeight = map[string]float64{}
	m.H = nil
}

// Decode reconstructs original-variable values from a full target
// assignment, implementing the faithful back-mapping the compiler promises
// (spec §1/§5.1 of SPEC_FULL.md): for every non-auxiliary virtual variable,
// evaluate its expansion ξ restricted to its own targets.
func (m *Model) Decode(assignment map[VI]int) (map[VI]float64, error) {
	out := make(map[VI]float64, len(m.bySource))
	for source, vv := range m.bySource {
		restricted := make(map[VI]int, len(vv.Targets))
		for _, t := range vv.Targets {
			val, ok := assignment[t]
			if !ok {
				return nil, &DomainError{Detail: fmt.Sprintf("assignment missing target %s for source %s", t, source)}
			}
			restricted[t] = val
		}
		val, err := vv.Xi.EvaluateFull(restricted)
		if err != nil {
			return nil, fmt.Errorf("vmodel: decoding source %s: %w", source, err)
		}
		out[source] = val
	}
	return out, nil
}
