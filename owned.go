package intrusive

import (
	"unsafe"

	"github.com/pkg/errors"
)

// Owned is the single owner of a memory block, viewed as a T. The view is
// changed with a Translator, which consumes the handle and returns a new one
// over the same block; the consumed handle panics with ErrMoved on any later
// use.
//
// Handles perform no locking. A block must only be touched by one goroutine
// at a time.
type Owned[T any] struct {
	ptr *T
	blk *block
}

// Take makes p owned. The caller gives up its own claim on p and must not
// use it again except through the returned handle.
func Take[T any](p *T) *Owned[T] {
	if p == nil {
		panic(ErrNilPointer)
	}
	return &Owned[T]{ptr: p, blk: &block{}}
}

func (o *Owned[T]) live() *block {
	if o == nil || o.blk == nil {
		panic(ErrMoved)
	}
	if o.blk.released {
		panic(ErrReleased)
	}
	return o.blk
}

// move empties o for an ownership transfer.
func (o *Owned[T]) move() (unsafe.Pointer, *block) {
	b := o.live()
	if b.borrowed() {
		panic(errors.Wrapf(ErrBorrowActive, "%d shared, exclusive=%t", b.shared, b.exclusive))
	}
	p := unsafe.Pointer(o.ptr)
	o.ptr, o.blk = nil, nil
	return p, b
}

// release ends the block's life under this package. o keeps the block so that
// later use reports ErrReleased rather than ErrMoved.
func (o *Owned[T]) release() unsafe.Pointer {
	b := o.live()
	if b.borrowed() {
		panic(errors.Wrapf(ErrBorrowActive, "%d shared, exclusive=%t", b.shared, b.exclusive))
	}
	p := unsafe.Pointer(o.ptr)
	o.ptr = nil
	b.released = true
	return p
}

// Release gives the block back to the caller, who becomes responsible for it.
func (o *Owned[T]) Release() *T {
	return (*T)(o.release())
}

// Get returns the owned value. The pointer must not be kept past the next
// ownership transfer, and must not be used while an exclusive borrow is live.
// While Borrows() > 0 the owner may read through it but must not write; take
// BorrowExclusive to mutate.
func (o *Owned[T]) Get() *T {
	b := o.live()
	if b.exclusive {
		panic(errors.Wrap(ErrBorrowActive, "exclusive borrow is live"))
	}
	return o.ptr
}

// Valid reports whether o still owns a block.
func (o *Owned[T]) Valid() bool {
	return o != nil && o.blk != nil && !o.blk.released
}

func (o *Owned[T]) State() State {
	switch {
	case o == nil:
		return StateUnowned
	case o.blk == nil:
		return StateMoved
	case o.blk.released:
		return StateReleased
	case o.blk.exclusive:
		return StateExclusiveBorrowed
	case o.blk.shared > 0:
		return StateSharedBorrowed
	default:
		return StateOwned
	}
}

// Borrows returns the number of live shared borrows of the block.
func (o *Owned[T]) Borrows() int {
	return o.live().shared
}

// Pointer returns the block address in the current view, for identity checks.
func (o *Owned[T]) Pointer() unsafe.Pointer {
	o.live()
	return unsafe.Pointer(o.ptr)
}
