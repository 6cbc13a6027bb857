package intrusive

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedBorrowsCoexist(t *testing.T) {
	o := Take(&node{Value: 5})
	a, err := o.BorrowShared()
	require.NoError(t, err)
	b, err := o.BorrowShared()
	require.NoError(t, err)
	c := a.BorrowShared()

	assert.Equal(t, 3, o.Borrows())
	assert.Equal(t, StateSharedBorrowed, o.State())
	assert.Equal(t, int64(5), c.Get().Value)

	_, err = o.BorrowExclusive()
	require.ErrorIs(t, err, ErrBorrowConflict)

	a.Release()
	b.Release()
	c.Release()
	assert.Equal(t, StateOwned, o.State())
}

func TestExclusiveBorrowIsExclusive(t *testing.T) {
	o := Take(&node{})
	e, err := o.BorrowExclusive()
	require.NoError(t, err)
	assert.Equal(t, StateExclusiveBorrowed, o.State())

	_, err = o.BorrowShared()
	require.ErrorIs(t, err, ErrBorrowConflict)
	_, err = o.BorrowExclusive()
	require.ErrorIs(t, err, ErrBorrowConflict)
	requirePanicsIs(t, ErrBorrowActive, func() { o.Get() })

	e.Get().Value = 11
	e.Release()
	e.Release()

	s, err := o.BorrowShared()
	require.NoError(t, err)
	assert.Equal(t, int64(11), s.Get().Value)
	s.Release()
}

func TestEndedBorrowUnusable(t *testing.T) {
	o := Take(&node{})
	s, err := o.BorrowShared()
	require.NoError(t, err)
	s.Release()
	requirePanicsIs(t, ErrBorrowEnded, func() { s.Get() })
	requirePanicsIs(t, ErrBorrowEnded, func() { s.BorrowShared() })

	e, err := o.BorrowExclusive()
	require.NoError(t, err)
	e.Release()
	requirePanicsIs(t, ErrBorrowEnded, func() { e.Get() })
}

func TestWithSharedReleasesOnError(t *testing.T) {
	o := Take(&node{Value: 2})
	boom := errors.New("boom")

	err := o.WithShared(func(n *node) error {
		assert.Equal(t, int64(2), n.Value)
		assert.Equal(t, 1, o.Borrows())
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, StateOwned, o.State())
}

func TestWithExclusiveReleasesOnPanic(t *testing.T) {
	o := Take(&node{})
	assert.Panics(t, func() {
		_ = o.WithExclusive(func(n *node) error {
			n.Value = 8
			panic("inside borrow")
		})
	})
	assert.Equal(t, StateOwned, o.State())
	assert.Equal(t, int64(8), o.Get().Value)
}

func TestWithExclusiveConflict(t *testing.T) {
	o := Take(&node{})
	s, err := o.BorrowShared()
	require.NoError(t, err)
	defer s.Release()

	called := false
	err = o.WithExclusive(func(*node) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, ErrBorrowConflict)
	assert.False(t, called)
}

func TestBorrowViewConversion(t *testing.T) {
	n := &node{Value: 4}
	f := nodeLink.IntoField(Take(n))

	s, err := f.BorrowShared()
	require.NoError(t, err)
	cs := nodeLink.SharedContainer(s)
	require.Same(t, n, cs.Get())
	assert.Equal(t, 1, f.Borrows())
	requirePanicsIs(t, ErrBorrowEnded, func() { s.Get() })

	back := nodeLink.SharedField(cs)
	require.Same(t, &n.Link, back.Get())
	back.Release()
	assert.Equal(t, 0, f.Borrows())

	e, err := f.BorrowExclusive()
	require.NoError(t, err)
	ce := nodeLink.ExclusiveContainer(e)
	ce.Get().Value = 40
	_, err = f.BorrowShared()
	require.ErrorIs(t, err, ErrBorrowConflict)
	fe := nodeLink.ExclusiveField(ce)
	require.Same(t, &n.Link, fe.Get())
	fe.Release()

	assert.Equal(t, int64(40), nodeLink.Release(f).Value)
}

func TestBorrowsFollowViewChange(t *testing.T) {
	o := Take(&node{})
	f := nodeLink.IntoField(o)
	e, err := f.BorrowExclusive()
	require.NoError(t, err)
	requirePanicsIs(t, ErrBorrowActive, func() { nodeLink.IntoContainer(f) })
	e.Release()
	c := nodeLink.IntoContainer(f)
	assert.Equal(t, StateOwned, c.State())
}
