package rusty

// Result is the outcome of an operation that produces a T on success and
// nothing on failure. The zero value is a failure.
type Result[T any] struct {
	value     T
	isSuccess bool
}

// ResultOf promotes a bare value into a successful Result.
func ResultOf[T any](v T) Result[T] {
	return Result[T]{value: v, isSuccess: true}
}

func ResultOk[T any](tag SuccessValueTag[T]) Result[T] {
	return ResultOf(tag.value)
}

func ResultErr[T any](_ ErrorTag) Result[T] {
	return Result[T]{}
}

func (r Result[T]) Bool() bool {
	return r.isSuccess
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsError() bool {
	return !r.isSuccess
}

// Value returns the success value. It panics with a *MisuseError on a failure.
func (r Result[T]) Value() T {
	if !r.isSuccess {
		return misuse[T]("Result.Value")
	}
	return guardNil(r.value, "Result.Value")
}

// Get returns the success value and true, or the zero T and false.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.isSuccess
}

// Result1 is the outcome of an operation that produces a T on success or an
// error of type E on failure.
type Result1[T, E any] struct {
	value     T
	err       E
	isSuccess bool
}

func Result1Of[T, E any](v T) Result1[T, E] {
	return Result1[T, E]{value: v, isSuccess: true}
}

func Result1Ok[T, E any](tag SuccessValueTag[T]) Result1[T, E] {
	return Result1Of[T, E](tag.value)
}

func Result1Err[T, E any](tag ErrorValueTag[E]) Result1[T, E] {
	return Result1[T, E]{err: tag.err}
}

func (r Result1[T, E]) Bool() bool {
	return r.isSuccess
}

func (r Result1[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result1[T, E]) IsError() bool {
	return !r.isSuccess
}

// Value returns the success value. It panics with a *MisuseError on a failure.
func (r Result1[T, E]) Value() T {
	if !r.isSuccess {
		return misuse[T]("Result1.Value")
	}
	return guardNil(r.value, "Result1.Value")
}

// Err returns the error. It panics with a *MisuseError on a success.
func (r Result1[T, E]) Err() E {
	if r.isSuccess {
		return misuse[E]("Result1.Err")
	}
	return guardNil(r.err, "Result1.Err")
}

// Get deconstructs r. The side that is not held is returned as its zero value.
func (r Result1[T, E]) Get() (T, E) {
	return r.value, r.err
}
