package rusty

import "strconv"

var (
	_ Outcome    = Result[int]{}
	_ Outcome    = Result1[int, error]{}
	_ MultiError = Result2[int, error, string]{}
	_ MultiError = Result3[int, error, string, int]{}
	_ Outcome    = Status{}
	_ Outcome    = Status1[error]{}
	_ MultiError = Status2[error, string]{}
	_ MultiError = Status3[error, string, int]{}
)

// Outcome is the surface shared by every Result and Status arity.
type Outcome interface {
	// Bool is the boolean conversion of the outcome: true iff success.
	Bool() bool
	IsSuccess() bool
	IsError() bool
}

// MultiError is implemented by the outcomes declaring two or three error
// kinds: Result2, Result3, Status2 and Status3.
type MultiError interface {
	Outcome
	// Kind returns the declared position of the stored error, NoError on success.
	Kind() ErrorKind
	// Err returns the stored error. It panics on a success.
	Err() any

	holds(probe any) bool
}

// ErrorKind is the position of the stored error among the declared kinds.
type ErrorKind uint8

const (
	NoError ErrorKind = iota
	Kind1
	Kind2
	Kind3
)

func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "NoError"
	case Kind1, Kind2, Kind3:
		return "Kind" + strconv.Itoa(int(k))
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// HasError reports whether o is a failure whose stored error was declared as
// kind K. If two declared kinds are the same type, both positions report true;
// use Kind to tell them apart.
func HasError[K any](o MultiError) bool {
	if o.IsSuccess() {
		return false
	}
	return o.holds((*K)(nil))
}

// GetError returns the stored error as K. It panics with a *MisuseError if o
// is a success or the stored error was not declared as K.
func GetError[K any](o MultiError) K {
	if !HasError[K](o) {
		return misuse[K]("GetError")
	}

	e, ok := o.Err().(K)
	if !ok {
		return misuse[K]("GetError")
	}
	return e
}

// declared reports whether probe, a (*K)(nil), names the type E.
func declared[E any](probe any) bool {
	_, ok := probe.(*E)
	return ok
}

// union2 stores exactly one of two error kinds.
type union2[E1, E2 any] struct {
	kind ErrorKind
	e1   E1
	e2   E2
}

func (u union2[E1, E2]) boxed() any {
	switch u.kind {
	case Kind1:
		return u.e1
	case Kind2:
		return u.e2
	}
	return nil
}

func (u union2[E1, E2]) holds(probe any) bool {
	switch u.kind {
	case Kind1:
		return declared[E1](probe)
	case Kind2:
		return declared[E2](probe)
	}
	return false
}

// union3 stores exactly one of three error kinds.
type union3[E1, E2, E3 any] struct {
	kind ErrorKind
	e1   E1
	e2   E2
	e3   E3
}

func (u union3[E1, E2, E3]) boxed() any {
	switch u.kind {
	case Kind1:
		return u.e1
	case Kind2:
		return u.e2
	case Kind3:
		return u.e3
	}
	return nil
}

func (u union3[E1, E2, E3]) holds(probe any) bool {
	switch u.kind {
	case Kind1:
		return declared[E1](probe)
	case Kind2:
		return declared[E2](probe)
	case Kind3:
		return declared[E3](probe)
	}
	return false
}
