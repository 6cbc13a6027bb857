package intrusive

import (
	"reflect"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/rawbytedev/intrusive/internal/common"
)

// Translator converts between a *C and the *F embedded in it at a fixed
// offset. It holds no state beyond its Descriptor and is safe for concurrent
// use.
type Translator[C, F any] struct {
	desc Descriptor
	opts Options
}

// NewTranslator declares the pairing of C with its field at path.
func NewTranslator[C, F any](path string, opts Options) (*Translator[C, F], error) {
	d, err := Describe[C, F](path)
	if err != nil {
		return nil, err
	}
	return &Translator[C, F]{desc: d, opts: opts}, nil
}

// Declare is NewTranslator with default Options.
func Declare[C, F any](path string) (*Translator[C, F], error) {
	return NewTranslator[C, F](path, Options{})
}

// MustDeclare is like Declare but panics if the pairing cannot be declared.
// It is meant for package-level variables, so that a bad pairing stops the
// program during initialization:
//
//	var nodeLink = intrusive.MustDeclare[Node, Link]("Link")
func MustDeclare[C, F any](path string) *Translator[C, F] {
	t, err := Declare[C, F](path)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Translator[C, F]) Descriptor() Descriptor { return t.desc }

func (t *Translator[C, F]) Offset() uintptr { return t.desc.Offset }

func (t *Translator[C, F]) fieldAddr(c unsafe.Pointer) unsafe.Pointer {
	return unsafe.Add(c, t.desc.Offset)
}

func (t *Translator[C, F]) containerAddr(f unsafe.Pointer) unsafe.Pointer {
	c := unsafe.Add(f, -int(t.desc.Offset))
	if t.opts.CheckAlignment && !common.PointerAligned(c, t.desc.Align) {
		panic(errors.Wrapf(ErrMisaligned, "%s at %#x, align %d", t.desc, uintptr(c), t.desc.Align))
	}
	return c
}

// FieldOf returns the address of the field inside c. A nil c yields nil.
func (t *Translator[C, F]) FieldOf(c *C) *F {
	if c == nil {
		return nil
	}
	return (*F)(t.fieldAddr(unsafe.Pointer(c)))
}

// ContainerOf returns the container holding the field f. A nil f yields nil.
//
// f must point at the declared field of a live C. This is not checked;
// passing any other pointer is undefined behaviour. Prefer the Owned handle
// conversions, which only ever feed this method addresses produced by
// FieldOf.
func (t *Translator[C, F]) ContainerOf(f *F) *C {
	if f == nil {
		return nil
	}
	return (*C)(t.containerAddr(unsafe.Pointer(f)))
}

// ContainerType and FieldType expose the paired types, mostly for reports.
func (t *Translator[C, F]) ContainerType() reflect.Type { return t.desc.Container }

func (t *Translator[C, F]) FieldType() reflect.Type { return t.desc.Field }
