package vmodel

// Attributes holds the configuration surface of §6/§7: model-scoped
// defaults plus per-entity overrides. It mirrors the teacher's
// functional-options CompileOption pattern (frontend/compile.go in the
// okx-gnark tree), generalized from a single compile-time capacity hint to
// the full attribute table this spec requires.
type Attributes struct {
	Architecture          string
	Quadratize            bool
	QuadratizationMethod  string
	StableQuadratization  bool

	DefaultVariableEncodingMethod EncodingKind
	DefaultVariableEncodingBits   int
	DefaultVariableEncodingATol   float64

	variableEncodingMethod map[VI]EncodingKind
	variableEncodingBits   map[VI]int
	variableEncodingATol   map[VI]float64
	variableEncodingWeight map[VI]float64

	constraintWeight map[string]float64
	slackWeight      map[string]float64
}

// DefaultAttributes returns the attribute set used when the caller sets
// nothing explicitly: the default encoding is BinaryInt (no penalty), which
// sizes its own bit budget from the domain, so that compile() never needs an
// externally-supplied bit budget to make progress.
func DefaultAttributes() *Attributes {
	return &Attributes{
		Quadratize:                    true,
		QuadratizationMethod:          "substitution",
		StableQuadratization:          false,
		DefaultVariableEncodingMethod: BinaryInt,
		DefaultVariableEncodingBits:   0,
		DefaultVariableEncodingATol:   0,
		variableEncodingMethod:        map[VI]EncodingKind{},
		variableEncodingBits:          map[VI]int{},
		variableEncodingATol:          map[VI]float64{},
		variableEncodingWeight:        map[VI]float64{},
		constraintWeight:              map[string]float64{},
		slackWeight:                   map[string]float64{},
	}
}

// Option configures an Attributes value.
type Option func(*Attributes)

func WithArchitecture(name string) Option {
	return func(a *Attributes) { a.Architecture = name }
}

func WithQuadratize(on bool) Option {
	return func(a *Attributes) { a.Quadratize = on }
}

func WithQuadratizationMethod(name string) Option {
	return func(a *Attributes) { a.QuadratizationMethod = name }
}

func WithStableQuadratization(on bool) Option {
	return func(a *Attributes) { a.StableQuadratization = on }
}

func WithDefaultEncoding(kind EncodingKind) Option {
	return func(a *Attributes) { a.DefaultVariableEncodingMethod = kind }
}

func WithDefaultEncodingBits(n int) Option {
	return func(a *Attributes) { a.DefaultVariableEncodingBits = n }
}

func WithDefaultEncodingTolerance(tol float64) Option {
	return func(a *Attributes) { a.DefaultVariableEncodingATol = tol }
}

// Apply applies every option in order.
func (a *Attributes) Apply(opts ...Option) {
	for _, o := range opts {
		o(a)
	}
}

// SetVariableEncodingMethod overrides the encoding kind used for source
// variable v.
func (a *Attributes) SetVariableEncodingMethod(v VI, kind EncodingKind) {
	a.variableEncodingMethod[v] = kind
}

// VariableEncodingMethod returns the encoding kind for v, falling back to
// the model default.
func (a *Attributes) VariableEncodingMethod(v VI) EncodingKind {
	if k, ok := a.variableEncodingMethod[v]; ok {
		return k
	}
	return a.DefaultVariableEncodingMethod
}

func (a *Attributes) SetVariableEncodingBits(v VI, n int) {
	a.variableEncodingBits[v] = n
}

func (a *Attributes) VariableEncodingBits(v VI) int {
	if n, ok := a.variableEncodingBits[v]; ok {
		return n
	}
	return a.DefaultVariableEncodingBits
}

func (a *Attributes) SetVariableEncodingTolerance(v VI, tol float64) {
	a.variableEncodingATol[v] = tol
}

func (a *Attributes) VariableEncodingTolerance(v VI) float64 {
	if t, ok := a.variableEncodingATol[v]; ok {
		return t
	}
	return a.DefaultVariableEncodingATol
}

// SetVariableEncodingPenalty overrides the computed θ for source variable v.
func (a *Attributes) SetVariableEncodingPenalty(v VI, theta float64) {
	a.variableEncodingWeight[v] = theta
}

// VariableEncodingPenalty returns the caller-set θ override for v, if any.
func (a *Attributes) VariableEncodingPenalty(v VI) (float64, bool) {
	t, ok := a.variableEncodingWeight[v]
	return t, ok
}

// SetConstraintEncodingPenalty overrides the computed ρ for constraint id.
func (a *Attributes) SetConstraintEncodingPenalty(id string, rho float64) {
	a.constraintWeight[id] = rho
}

func (a *Attributes) ConstraintEncodingPenalty(id string) (float64, bool) {
	rho, ok := a.constraintWeight[id]
	return rho, ok
}

// SetSlackVariableEncodingPenalty overrides the computed η for the slack of
// constraint id.
func (a *Attributes) SetSlackVariableEncodingPenalty(id string, eta float64) {
	a.slackWeight[id] = eta
}

func (a *Attributes) SlackVariableEncodingPenalty(id string) (float64, bool) {
	eta, ok := a.slackWeight[id]
	return eta, ok
}
