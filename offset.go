package intrusive

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pkg/errors"

	"github.com/rawbytedev/intrusive/internal/common"
)

// Descriptor records where a field lives inside a container type.
//
// Offset is only meaningful for the exact Container type it was computed
// for; two structurally identical types get two descriptors.
type Descriptor struct {
	Container reflect.Type
	Field     reflect.Type
	Path      string
	Offset    uintptr
	Align     uintptr // alignment of Container
	Size      uintptr // size of Container
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s.%s@+%d", common.TypeName(d.Container), d.Path, d.Offset)
}

// Describe returns the descriptor of the field of C named by path, which must
// have type F.
//
// path is a field name, or dot separated names walking into nested struct
// values ("Header.Link"). Fields promoted from embedded structs resolve as
// usual. Every step must be stored inline: a path crossing a pointer, an
// embedded *T included, fails with ErrIndirectField.
func Describe[C, F any](path string) (Descriptor, error) {
	return describe(reflect.TypeFor[C](), reflect.TypeFor[F](), path)
}

func describe(ct, ft reflect.Type, path string) (Descriptor, error) {
	d, err := layouts.lookup(ct, path)
	if err == nil && d.Field != ft {
		err = errors.Wrapf(ErrFieldType, "%s.%s is %s, not %s", common.TypeName(ct), path, d.Field, ft)
	}
	if err != nil {
		logger.WithError(err).Debugf("cannot declare %s.%s", common.TypeName(ct), path)
		return Descriptor{}, err
	}
	return d, nil
}

// locate walks path through ct and sums the offsets along the way.
func locate(ct reflect.Type, path string) (Descriptor, error) {
	if ct.Kind() != reflect.Struct {
		return Descriptor{}, errors.Wrapf(ErrNotStruct, "%s is a %s", ct, ct.Kind())
	}
	if path == "" {
		return Descriptor{}, errors.Wrapf(ErrFieldNotFound, "%s: empty path", common.TypeName(ct))
	}

	cur := ct
	var off uintptr
	for _, seg := range strings.Split(path, ".") {
		if cur.Kind() != reflect.Struct {
			if common.IsIndirectKind(cur.Kind()) {
				return Descriptor{}, errors.Wrapf(ErrIndirectField, "%s.%s: %s before %q", common.TypeName(ct), path, cur, seg)
			}
			return Descriptor{}, errors.Wrapf(ErrFieldNotFound, "%s.%s: %s has no fields", common.TypeName(ct), path, cur)
		}
		sf, ok := cur.FieldByName(seg)
		if !ok {
			return Descriptor{}, errors.Wrapf(ErrFieldNotFound, "%s.%s: %s has no field %q", common.TypeName(ct), path, cur, seg)
		}
		// Promoted fields carry the full index path through their embedded structs.
		for _, i := range sf.Index {
			if cur.Kind() != reflect.Struct {
				return Descriptor{}, errors.Wrapf(ErrIndirectField, "%s.%s: promoted through %s", common.TypeName(ct), path, cur)
			}
			f := cur.Field(i)
			off += f.Offset
			cur = f.Type
		}
	}

	return Descriptor{
		Container: ct,
		Field:     cur,
		Path:      path,
		Offset:    off,
		Align:     uintptr(ct.Align()),
		Size:      ct.Size(),
	}, nil
}
