package intrusive

import "unsafe"

// IntoField consumes a container view handle and returns the field view of
// the same block.
func (t *Translator[C, F]) IntoField(o *Owned[C]) *Owned[F] {
	p, b := o.move()
	return &Owned[F]{ptr: (*F)(t.fieldAddr(p)), blk: b}
}

// IntoContainer consumes a field view handle and returns the container view
// of the same block.
func (t *Translator[C, F]) IntoContainer(o *Owned[F]) *Owned[C] {
	o.live()
	// Check alignment before o is emptied.
	c := t.containerAddr(unsafe.Pointer(o.ptr))
	_, b := o.move()
	return &Owned[C]{ptr: (*C)(c), blk: b}
}

// Release gives the whole container back from a field view handle.
func (t *Translator[C, F]) Release(o *Owned[F]) *C {
	o.live()
	c := t.containerAddr(unsafe.Pointer(o.ptr))
	o.release()
	return (*C)(c)
}

// Adopt takes ownership of a container through a pointer to its field.
// f must point at the declared field of a live C that nobody else owns;
// this is not checked beyond the alignment check of Options.
func (t *Translator[C, F]) Adopt(f *F) *Owned[F] {
	if f == nil {
		panic(ErrNilPointer)
	}
	if t.opts.CheckAlignment {
		t.ContainerOf(f)
	}
	return &Owned[F]{ptr: f, blk: &block{}}
}

// SharedContainer continues a field view borrow as a container view borrow.
// s is consumed; the block's borrow count is unchanged.
func (t *Translator[C, F]) SharedContainer(s *Shared[F]) *Shared[C] {
	c := t.containerAddr(unsafe.Pointer(s.Get()))
	_, b := s.take()
	return &Shared[C]{ptr: (*C)(c), blk: b}
}

func (t *Translator[C, F]) SharedField(s *Shared[C]) *Shared[F] {
	p, b := s.take()
	return &Shared[F]{ptr: (*F)(t.fieldAddr(p)), blk: b}
}

func (t *Translator[C, F]) ExclusiveContainer(e *Exclusive[F]) *Exclusive[C] {
	c := t.containerAddr(unsafe.Pointer(e.Get()))
	_, b := e.take()
	return &Exclusive[C]{ptr: (*C)(c), blk: b}
}

func (t *Translator[C, F]) ExclusiveField(e *Exclusive[C]) *Exclusive[F] {
	p, b := e.take()
	return &Exclusive[F]{ptr: (*F)(t.fieldAddr(p)), blk: b}
}
