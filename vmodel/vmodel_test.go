package vmodel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toqubo/core/pbf"
)

func mirrorVV(source *VI, target VI) *VirtualVariable {
	xi := pbf.New[VI]()
	xi.Insert([]VI{target}, 1)
	return &VirtualVariable{Kind: Mirror, Source: source, Targets: []VI{target}, Xi: xi}
}

func TestRegisterRejectsDuplicateSource(t *testing.T) {
	m := New(0)
	src := VI(100)
	require.NoError(t, m.Register(mirrorVV(&src, m.Allocator().Alloc(1)[0])))
	require.Error(t, m.Register(mirrorVV(&src, m.Allocator().Alloc(1)[0])))
}

func TestRegisterRejectsDoubleTargetOwnership(t *testing.T) {
	m := New(0)
	target := m.Allocator().Alloc(1)[0]
	src1, src2 := VI(1), VI(2)
	require.NoError(t, m.Register(mirrorVV(&src1, target)))
	require.Error(t, m.Register(mirrorVV(&src2, target)))
}

func TestLookupAndExpansion(t *testing.T) {
	m := New(0)
	src := VI(7)
	target := m.Allocator().Alloc(1)[0]
	vv := mirrorVV(&src, target)
	require.NoError(t, m.Register(vv))

	got, ok := m.LookupSource(src)
	require.True(t, ok)
	require.Same(t, vv, got)

	got, ok = m.LookupTarget(target)
	require.True(t, ok)
	require.Same(t, vv, got)

	xi, err := m.ExpansionOf(src)
	require.NoError(t, err)
	require.True(t, xi.Equal(vv.Xi))

	_, err = m.ExpansionOf(VI(999))
	require.Error(t, err)
}

func TestDecodeRestrictsToOwnTargets(t *testing.T) {
	m := New(0)
	src1, src2 := VI(1), VI(2)
	t1 := m.Allocator().Alloc(1)[0]
	t2 := m.Allocator().Alloc(1)[0]
	require.NoError(t, m.Register(mirrorVV(&src1, t1)))
	require.NoError(t, m.Register(mirrorVV(&src2, t2)))

	out, err := m.Decode(map[VI]int{t1: 1, t2: 0})
	require.NoError(t, err)
	require.Equal(t, 1.0, out[src1])
	require.Equal(t, 0.0, out[src2])

	_, err = m.Decode(map[VI]int{t1: 1})
	require.Error(t, err)
}

func TestStatusTransitionsAndReset(t *testing.T) {
	m := New(0)
	require.Equal(t, NotStarted, m.Status())
	m.SetStatus(InProgress)
	require.Equal(t, InProgress, m.Status())
	m.Fail("boom")
	require.Equal(t, Failed, m.Status())
	require.Equal(t, "boom", m.FailureReason())

	src := VI(1)
	require.NoError(t, m.Register(mirrorVV(&src, m.Allocator().Alloc(1)[0])))
	m.Reset()
	require.Equal(t, NotStarted, m.Status())
	require.Empty(t, m.VirtualVariables())
	_, ok := m.LookupSource(src)
	require.False(t, ok)
}

func TestAttributesDefaultsAndOverrides(t *testing.T) {
	a := DefaultAttributes()
	v := VI(5)
	require.Equal(t, a.DefaultVariableEncodingMethod, a.VariableEncodingMethod(v))
	a.SetVariableEncodingMethod(v, OneHot)
	require.Equal(t, OneHot, a.VariableEncodingMethod(v))

	_, ok := a.VariableEncodingPenalty(v)
	require.False(t, ok)
	a.SetVariableEncodingPenalty(v, 42)
	theta, ok := a.VariableEncodingPenalty(v)
	require.True(t, ok)
	require.Equal(t, 42.0, theta)
}
