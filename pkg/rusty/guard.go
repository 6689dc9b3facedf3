package rusty

import (
	"errors"
	"reflect"
)

// ErrMisuse is matched by every *MisuseError through errors.Is.
var ErrMisuse = errors.New("rusty: nil dereference")

// MisuseError is the panic value raised when an outcome is read from the
// side it does not hold. It implements runtime.Error: it reports a defect in
// the caller, not a failure of the operation.
type MisuseError struct {
	// Op is the accessor that was misused, e.g. "Result1.Value".
	Op string
}

func (e *MisuseError) Error() string {
	return "rusty: nil dereference in " + e.Op
}

func (e *MisuseError) RuntimeError() {}

func (e *MisuseError) Unwrap() error {
	return ErrMisuse
}

// IsNil reports whether i is nil or a nil pointer, map, slice, channel,
// function or unsafe pointer.
func IsNil(i any) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// guardNil returns v, or panics when v holds no value.
// A nil payload stored on the active side is treated the same as reading the
// inactive side.
func guardNil[T any](v T, op string) T {
	if IsNil(v) {
		panic(&MisuseError{Op: op})
	}
	return v
}

func misuse[T any](op string) T {
	panic(&MisuseError{Op: op})
}
