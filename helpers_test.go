package intrusive

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type link struct {
	next, prev *link
}

type node struct {
	Value int64
	Tag   string
	Link  link
}

type inner struct {
	A    uint16
	Link link
}

type nested struct {
	Flag  bool
	Inner inner
}

type Embedded struct {
	Pad  [3]byte
	Deep link
}

type promoted struct {
	X int32
	Embedded
}

type PtrEmbedded struct {
	Deep link
}

type viaPointer struct {
	*PtrEmbedded
	Next *inner
}

// requirePanicsIs fails unless fn panics with an error matching target.
func requirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()
	var got any
	func() {
		defer func() { got = recover() }()
		fn()
	}()
	require.NotNil(t, got, "expected panic with %v", target)
	err, ok := got.(error)
	require.True(t, ok, "panic value %v is not an error", got)
	require.True(t, errors.Is(err, target), "panic %v is not %v", err, target)
}
