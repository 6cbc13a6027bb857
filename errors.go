package intrusive

import "github.com/pkg/errors"

// Declaration-time errors. Describe, Declare and NewTranslator wrap one of
// these, so callers should test with errors.Is.
var (
	ErrNotStruct     = errors.New("intrusive: container is not a struct")
	ErrFieldNotFound = errors.New("intrusive: field not found")
	ErrIndirectField = errors.New("intrusive: field is reached through a pointer")
	ErrFieldType     = errors.New("intrusive: field type mismatch")
)

// ErrBorrowConflict is returned when a borrow cannot coexist with the borrows
// already live on a block.
var ErrBorrowConflict = errors.New("intrusive: conflicting borrow")

// Contract violations. These are never returned; they are the values handles
// panic with when used outside their ownership discipline.
var (
	ErrMoved        = errors.New("intrusive: handle was moved")
	ErrReleased     = errors.New("intrusive: block was released")
	ErrBorrowEnded  = errors.New("intrusive: borrow already ended")
	ErrBorrowActive = errors.New("intrusive: ownership transfer while borrowed")
	ErrNilPointer   = errors.New("intrusive: nil pointer")
	ErrMisaligned   = errors.New("intrusive: container address is misaligned")
)
