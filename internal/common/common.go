package common

import (
	"reflect"
	"unsafe"
)

// IsIndirectKind reports whether a value of kind k reaches its data through a pointer.
func IsIndirectKind(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Interface,
		reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.String:
		return true
	default:
		return false
	}
}

// IsAligned reports whether addr is a multiple of align. An align of 0 or 1 always passes.
func IsAligned(addr, align uintptr) bool {
	if align <= 1 {
		return true
	}
	return addr%align == 0
}

// PointerAligned is IsAligned for an unsafe.Pointer.
func PointerAligned(p unsafe.Pointer, align uintptr) bool {
	return IsAligned(uintptr(p), align)
}

// TypeName returns a stable, package-qualified name for t, used in reports and logs.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
