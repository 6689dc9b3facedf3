package rusty

// Result2 is the outcome of an operation that produces a T on success or
// exactly one error of kind E1 or E2 on failure.
type Result2[T, E1, E2 any] struct {
	value     T
	errs      union2[E1, E2]
	isSuccess bool
}

func Result2Of[T, E1, E2 any](v T) Result2[T, E1, E2] {
	return Result2[T, E1, E2]{value: v, isSuccess: true}
}

func Result2Ok[T, E1, E2 any](tag SuccessValueTag[T]) Result2[T, E1, E2] {
	return Result2Of[T, E1, E2](tag.value)
}

func Result2Err1[T, E1, E2 any](tag ErrorValueTag[E1]) Result2[T, E1, E2] {
	return Result2[T, E1, E2]{errs: union2[E1, E2]{kind: Kind1, e1: tag.err}}
}

func Result2Err2[T, E1, E2 any](tag ErrorValueTag[E2]) Result2[T, E1, E2] {
	return Result2[T, E1, E2]{errs: union2[E1, E2]{kind: Kind2, e2: tag.err}}
}

func (r Result2[T, E1, E2]) Bool() bool {
	return r.isSuccess
}

func (r Result2[T, E1, E2]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result2[T, E1, E2]) IsError() bool {
	return !r.isSuccess
}

func (r Result2[T, E1, E2]) Value() T {
	if !r.isSuccess {
		return misuse[T]("Result2.Value")
	}
	return guardNil(r.value, "Result2.Value")
}

func (r Result2[T, E1, E2]) Err() any {
	if r.isSuccess {
		return misuse[any]("Result2.Err")
	}
	return guardNil(r.errs.boxed(), "Result2.Err")
}

func (r Result2[T, E1, E2]) Kind() ErrorKind {
	if r.isSuccess {
		return NoError
	}
	return r.errs.kind
}

func (r Result2[T, E1, E2]) Err1() E1 {
	if r.Kind() != Kind1 {
		return misuse[E1]("Result2.Err1")
	}
	return guardNil(r.errs.e1, "Result2.Err1")
}

func (r Result2[T, E1, E2]) Err2() E2 {
	if r.Kind() != Kind2 {
		return misuse[E2]("Result2.Err2")
	}
	return guardNil(r.errs.e2, "Result2.Err2")
}

// Get deconstructs r into the value and the boxed error, nil on success.
func (r Result2[T, E1, E2]) Get() (T, any) {
	if r.isSuccess {
		return r.value, nil
	}
	return r.value, r.errs.boxed()
}

func (r Result2[T, E1, E2]) holds(probe any) bool {
	return r.errs.holds(probe)
}

// Result3 is the outcome of an operation that produces a T on success or
// exactly one error of kind E1, E2 or E3 on failure.
type Result3[T, E1, E2, E3 any] struct {
	value     T
	errs      union3[E1, E2, E3]
	isSuccess bool
}

func Result3Of[T, E1, E2, E3 any](v T) Result3[T, E1, E2, E3] {
	return Result3[T, E1, E2, E3]{value: v, isSuccess: true}
}

func Result3Ok[T, E1, E2, E3 any](tag SuccessValueTag[T]) Result3[T, E1, E2, E3] {
	return Result3Of[T, E1, E2, E3](tag.value)
}

func Result3Err1[T, E1, E2, E3 any](tag ErrorValueTag[E1]) Result3[T, E1, E2, E3] {
	return Result3[T, E1, E2, E3]{errs: union3[E1, E2, E3]{kind: Kind1, e1: tag.err}}
}

func Result3Err2[T, E1, E2, E3 any](tag ErrorValueTag[E2]) Result3[T, E1, E2, E3] {
	return Result3[T, E1, E2, E3]{errs: union3[E1, E2, E3]{kind: Kind2, e2: tag.err}}
}

func Result3Err3[T, E1, E2, E3 any](tag ErrorValueTag[E3]) Result3[T, E1, E2, E3] {
	return Result3[T, E1, E2, E3]{errs: union3[E1, E2, E3]{kind: Kind3, e3: tag.err}}
}

func (r Result3[T, E1, E2, E3]) Bool() bool {
	return r.isSuccess
}

func (r Result3[T, E1, E2, E3]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result3[T, E1, E2, E3]) IsError() bool {
	return !r.isSuccess
}

func (r Result3[T, E1, E2, E3]) Value() T {
	if !r.isSuccess {
		return misuse[T]("Result3.Value")
	}
	return guardNil(r.value, "Result3.Value")
}

func (r Result3[T, E1, E2, E3]) Err() any {
	if r.isSuccess {
		return misuse[any]("Result3.Err")
	}
	return guardNil(r.errs.boxed(), "Result3.Err")
}

func (r Result3[T, E1, E2, E3]) Kind() ErrorKind {
	if r.isSuccess {
		return NoError
	}
	return r.errs.kind
}

func (r Result3[T, E1, E2, E3]) Err1() E1 {
	if r.Kind() != Kind1 {
		return misuse[E1]("Result3.Err1")
	}
	return guardNil(r.errs.e1, "Result3.Err1")
}

func (r Result3[T, E1, E2, E3]) Err2() E2 {
	if r.Kind() != Kind2 {
		return misuse[E2]("Result3.Err2")
	}
	return guardNil(r.errs.e2, "Result3.Err2")
}

func (r Result3[T, E1, E2, E3]) Err3() E3 {
	if r.Kind() != Kind3 {
		return misuse[E3]("Result3.Err3")
	}
	return guardNil(r.errs.e3, "Result3.Err3")
}

func (r Result3[T, E1, E2, E3]) Get() (T, any) {
	if r.isSuccess {
		return r.value, nil
	}
	return r.value, r.errs.boxed()
}

func (r Result3[T, E1, E2, E3]) holds(probe any) bool {
	return r.errs.holds(probe)
}
