package intrusive

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAliasRoundTrip(t *testing.T) {
	n := &node{Value: 6}
	f := nodeLink.IntoField(Take(n))

	a := f.IntoAlias()
	assert.False(t, a.IsZero())
	assert.Equal(t, unsafe.Pointer(&n.Link), a.Pointer())
	assert.Equal(t, StateMoved, f.State())

	back := FromAlias[link](a)
	require.Same(t, n, nodeLink.Release(back))
}

func TestAliasAdoptedOnce(t *testing.T) {
	a := Take(&node{}).IntoAlias()
	copied := a
	assert.Equal(t, a, copied)

	_ = FromAlias[node](a)
	requirePanicsIs(t, ErrMoved, func() { FromAlias[node](copied) })
}

func TestZeroAlias(t *testing.T) {
	var a Alias
	assert.True(t, a.IsZero())
	requirePanicsIs(t, ErrNilPointer, func() { FromAlias[node](a) })
}

func TestShareAliasCoexists(t *testing.T) {
	n := &node{Value: 11}
	a := nodeLink.IntoField(Take(n)).IntoAlias()

	s1, err := ShareAlias[link](a)
	require.NoError(t, err)
	s2, err := ShareAlias[link](a)
	require.NoError(t, err)
	assert.Same(t, &n.Link, s1.Get())
	sc := nodeLink.SharedContainer(s2)
	assert.Same(t, n, sc.Get())

	_, err = ExclusiveAlias[link](a)
	assert.True(t, errors.Is(err, ErrBorrowConflict))

	// The alias is still held, so restoring must wait for the readers.
	requirePanicsIs(t, ErrBorrowActive, func() { FromAlias[link](a) })
	s1.Release()
	s1.Release()
	requirePanicsIs(t, ErrBorrowActive, func() { FromAlias[link](a) })
	sc.Release()

	back := FromAlias[link](a)
	assert.Equal(t, StateOwned, back.State())
	assert.Equal(t, 0, back.Borrows())
	require.Same(t, n, nodeLink.Release(back))
}

func TestExclusiveAlias(t *testing.T) {
	n := &node{Value: 1}
	a := Take(n).IntoAlias()

	e, err := ExclusiveAlias[node](a)
	require.NoError(t, err)
	e.Get().Value = 2

	_, err = ShareAlias[node](a)
	assert.True(t, errors.Is(err, ErrBorrowConflict))
	_, err = ExclusiveAlias[node](a)
	assert.True(t, errors.Is(err, ErrBorrowConflict))

	e.Release()
	back := FromAlias[node](a)
	assert.Equal(t, StateOwned, back.State())
	assert.Equal(t, int64(2), back.Get().Value)
}

func TestAliasAccessAfterRestore(t *testing.T) {
	a := Take(&node{}).IntoAlias()
	_ = FromAlias[node](a)

	requirePanicsIs(t, ErrMoved, func() { _, _ = ShareAlias[node](a) })
	requirePanicsIs(t, ErrMoved, func() { _, _ = ExclusiveAlias[node](a) })

	var zero Alias
	requirePanicsIs(t, ErrNilPointer, func() { _, _ = ShareAlias[node](zero) })
}
