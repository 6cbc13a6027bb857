package intrusive

import (
	"unsafe"

	"github.com/pkg/errors"
)

// Alias is an owned block with its type erased, so that code shared by many
// intrusive structures can hold nodes without knowing their field type.
// It is comparable; copies refer to the same block, and only one of them
// may be turned back into a handle with FromAlias.
type Alias struct {
	p   unsafe.Pointer
	blk *block
}

// IntoAlias consumes o and erases its type.
func (o *Owned[T]) IntoAlias() Alias {
	p, b := o.move()
	b.aliased = true
	return Alias{p: p, blk: b}
}

// FromAlias restores a typed handle from a. T must be the type a was created
// from; this is not checked. Restoring the same alias twice panics with
// ErrMoved. Restoring while a ShareAlias or ExclusiveAlias borrow is live
// panics with ErrBorrowActive.
func FromAlias[T any](a Alias) *Owned[T] {
	b := a.held()
	if b.borrowed() {
		panic(errors.Wrapf(ErrBorrowActive, "%d shared, exclusive=%t", b.shared, b.exclusive))
	}
	b.aliased = false
	return &Owned[T]{ptr: (*T)(a.p), blk: a.blk}
}

// held returns the block of a while it is still aliased.
func (a Alias) held() *block {
	if a.blk == nil {
		panic(ErrNilPointer)
	}
	if !a.blk.aliased {
		panic(ErrMoved)
	}
	return a.blk
}

// ShareAlias borrows the aliased block for reading without restoring it.
// Borrow rules are the same as for Owned.BorrowShared, and the borrow must
// be released before the alias is restored. T must be the type a was created
// from; this is not checked.
func ShareAlias[T any](a Alias) (*Shared[T], error) {
	b := a.held()
	if b.exclusive {
		return nil, errors.Wrap(ErrBorrowConflict, "exclusive borrow is live")
	}
	b.shared++
	return &Shared[T]{ptr: (*T)(a.p), blk: b}, nil
}

// ExclusiveAlias borrows the aliased block for writing without restoring it.
func ExclusiveAlias[T any](a Alias) (*Exclusive[T], error) {
	b := a.held()
	if b.exclusive {
		return nil, errors.Wrap(ErrBorrowConflict, "exclusive borrow is live")
	}
	if b.shared > 0 {
		return nil, errors.Wrapf(ErrBorrowConflict, "%d shared borrows are live", b.shared)
	}
	b.exclusive = true
	return &Exclusive[T]{ptr: (*T)(a.p), blk: b}, nil
}

func (a Alias) IsZero() bool { return a.blk == nil }

// Pointer returns the aliased address.
func (a Alias) Pointer() unsafe.Pointer { return a.p }
