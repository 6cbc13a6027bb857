package intrusive

import (
	"unsafe"

	"github.com/pkg/errors"
)

// Shared is a read borrow of a block owned by a live Owned handle. Any number
// of Shared borrows may coexist; none may coexist with an Exclusive one.
// Release it before the owner transfers or releases the block.
type Shared[T any] struct {
	ptr *T
	blk *block
}

// Exclusive is the only borrow of a block while it is live.
type Exclusive[T any] struct {
	ptr *T
	blk *block
}

// BorrowShared borrows the block for reading. It fails with
// ErrBorrowConflict while an exclusive borrow is live.
func (o *Owned[T]) BorrowShared() (*Shared[T], error) {
	b := o.live()
	if b.exclusive {
		return nil, errors.Wrap(ErrBorrowConflict, "exclusive borrow is live")
	}
	b.shared++
	return &Shared[T]{ptr: o.ptr, blk: b}, nil
}

// BorrowExclusive borrows the block for writing. It fails with
// ErrBorrowConflict while any other borrow is live.
func (o *Owned[T]) BorrowExclusive() (*Exclusive[T], error) {
	b := o.live()
	if b.exclusive {
		return nil, errors.Wrap(ErrBorrowConflict, "exclusive borrow is live")
	}
	if b.shared > 0 {
		return nil, errors.Wrapf(ErrBorrowConflict, "%d shared borrows are live", b.shared)
	}
	b.exclusive = true
	return &Exclusive[T]{ptr: o.ptr, blk: b}, nil
}

// WithShared runs fn under a shared borrow, released when fn returns or panics.
func (o *Owned[T]) WithShared(fn func(*T) error) error {
	s, err := o.BorrowShared()
	if err != nil {
		return err
	}
	defer s.Release()
	return fn(s.Get())
}

// WithExclusive runs fn under an exclusive borrow, released when fn returns or panics.
func (o *Owned[T]) WithExclusive(fn func(*T) error) error {
	e, err := o.BorrowExclusive()
	if err != nil {
		return err
	}
	defer e.Release()
	return fn(e.Get())
}

func (s *Shared[T]) Get() *T {
	if s == nil || s.blk == nil {
		panic(ErrBorrowEnded)
	}
	return s.ptr
}

// BorrowShared adds another shared borrow of the same block.
func (s *Shared[T]) BorrowShared() *Shared[T] {
	if s == nil || s.blk == nil {
		panic(ErrBorrowEnded)
	}
	s.blk.shared++
	return &Shared[T]{ptr: s.ptr, blk: s.blk}
}

// Release ends the borrow. Releasing twice is a no-op.
func (s *Shared[T]) Release() {
	if s == nil || s.blk == nil {
		return
	}
	s.blk.shared--
	s.ptr, s.blk = nil, nil
}

// take empties s so the borrow can continue under another view.
func (s *Shared[T]) take() (unsafe.Pointer, *block) {
	if s == nil || s.blk == nil {
		panic(ErrBorrowEnded)
	}
	p, b := unsafe.Pointer(s.ptr), s.blk
	s.ptr, s.blk = nil, nil
	return p, b
}

func (e *Exclusive[T]) Get() *T {
	if e == nil || e.blk == nil {
		panic(ErrBorrowEnded)
	}
	return e.ptr
}

// Release ends the borrow. Releasing twice is a no-op.
func (e *Exclusive[T]) Release() {
	if e == nil || e.blk == nil {
		return
	}
	e.blk.exclusive = false
	e.ptr, e.blk = nil, nil
}

func (e *Exclusive[T]) take() (unsafe.Pointer, *block) {
	if e == nil || e.blk == nil {
		panic(ErrBorrowEnded)
	}
	p, b := unsafe.Pointer(e.ptr), e.blk
	e.ptr, e.blk = nil, nil
	return p, b
}
