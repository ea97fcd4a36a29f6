package qubo

import "github.com/toqubo/core/vmodel"

// Attributes, EncodingKind and Option re-export the vmodel configuration
// surface (§6's attribute table): the Virtual Model is the single owner of
// this state, but callers of the public Compile entry point configure it
// through this package so they never need to import vmodel directly.
type Attributes = vmodel.Attributes
type EncodingKind = vmodel.EncodingKind
type Option = vmodel.Option

const (
	Mirror     = vmodel.Mirror
	Linear     = vmodel.Linear
	UnaryInt   = vmodel.UnaryInt
	UnaryReal  = vmodel.UnaryReal
	BinaryInt  = vmodel.BinaryInt
	BinaryReal = vmodel.BinaryReal
	Arithmetic = vmodel.Arithmetic
	OneHot     = vmodel.OneHot
	DomainWall = vmodel.DomainWall
)

var (
	WithArchitecture           = vmodel.WithArchitecture
	WithQuadratize             = vmodel.WithQuadratize
	WithQuadratizationMethod   = vmodel.WithQuadratizationMethod
	WithStableQuadratization   = vmodel.WithStableQuadratization
	WithDefaultEncoding        = vmodel.WithDefaultEncoding
	WithDefaultEncodingBits    = vmodel.WithDefaultEncodingBits
	WithDefaultEncodingTolerance = vmodel.WithDefaultEncodingTolerance
)
