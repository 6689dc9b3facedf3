package rusty

// SuccessTag marks a success without a value.
type SuccessTag struct{}

// SuccessValueTag marks a success carrying a value of type T.
type SuccessValueTag[T any] struct {
	value T
}

// Value returns the wrapped success value.
func (t SuccessValueTag[T]) Value() T {
	return t.value
}

// ErrorTag marks a failure without an error payload.
type ErrorTag struct{}

// ErrorValueTag marks a failure carrying an error of type E.
type ErrorValueTag[E any] struct {
	err E
}

// Err returns the wrapped error payload.
func (t ErrorValueTag[E]) Err() E {
	return t.err
}

func Ok() SuccessTag {
	return SuccessTag{}
}

// OkWith wraps v into a success tag. v must not be nil.
func OkWith[T any](v T) SuccessValueTag[T] {
	return SuccessValueTag[T]{value: v}
}

func Error() ErrorTag {
	return ErrorTag{}
}

// ErrorWith wraps e into an error tag. e must not be nil.
func ErrorWith[E any](e E) ErrorValueTag[E] {
	return ErrorValueTag[E]{err: e}
}
