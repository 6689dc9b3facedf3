package rusty

// Status2 is the outcome of an operation that succeeds with no payload or
// fails with exactly one error of kind E1 or E2.
type Status2[E1, E2 any] struct {
	errs      union2[E1, E2]
	isSuccess bool
}

func Status2Ok[E1, E2 any](_ SuccessTag) Status2[E1, E2] {
	return Status2[E1, E2]{isSuccess: true}
}

func Status2Err1[E1, E2 any](tag ErrorValueTag[E1]) Status2[E1, E2] {
	return Status2[E1, E2]{errs: union2[E1, E2]{kind: Kind1, e1: tag.err}}
}

func Status2Err2[E1, E2 any](tag ErrorValueTag[E2]) Status2[E1, E2] {
	return Status2[E1, E2]{errs: union2[E1, E2]{kind: Kind2, e2: tag.err}}
}

func (s Status2[E1, E2]) Bool() bool {
	return s.isSuccess
}

func (s Status2[E1, E2]) IsSuccess() bool {
	return s.isSuccess
}

func (s Status2[E1, E2]) IsError() bool {
	return !s.isSuccess
}

func (s Status2[E1, E2]) Err() any {
	if s.isSuccess {
		return misuse[any]("Status2.Err")
	}
	return guardNil(s.errs.boxed(), "Status2.Err")
}

func (s Status2[E1, E2]) Kind() ErrorKind {
	if s.isSuccess {
		return NoError
	}
	return s.errs.kind
}

func (s Status2[E1, E2]) Err1() E1 {
	if s.Kind() != Kind1 {
		return misuse[E1]("Status2.Err1")
	}
	return guardNil(s.errs.e1, "Status2.Err1")
}

func (s Status2[E1, E2]) Err2() E2 {
	if s.Kind() != Kind2 {
		return misuse[E2]("Status2.Err2")
	}
	return guardNil(s.errs.e2, "Status2.Err2")
}

func (s Status2[E1, E2]) holds(probe any) bool {
	return s.errs.holds(probe)
}

// Status3 is the outcome of an operation that succeeds with no payload or
// fails with exactly one error of kind E1, E2 or E3.
type Status3[E1, E2, E3 any] struct {
	errs      union3[E1, E2, E3]
	isSuccess bool
}

func Status3Ok[E1, E2, E3 any](_ SuccessTag) Status3[E1, E2, E3] {
	return Status3[E1, E2, E3]{isSuccess: true}
}

func Status3Err1[E1, E2, E3 any](tag ErrorValueTag[E1]) Status3[E1, E2, E3] {
	return Status3[E1, E2, E3]{errs: union3[E1, E2, E3]{kind: Kind1, e1: tag.err}}
}

func Status3Err2[E1, E2, E3 any](tag ErrorValueTag[E2]) Status3[E1, E2, E3] {
	return Status3[E1, E2, E3]{errs: union3[E1, E2, E3]{kind: Kind2, e2: tag.err}}
}

func Status3Err3[E1, E2, E3 any](tag ErrorValueTag[E3]) Status3[E1, E2, E3] {
	return Status3[E1, E2, E3]{errs: union3[E1, E2, E3]{kind: Kind3, e3: tag.err}}
}

func (s Status3[E1, E2, E3]) Bool() bool {
	return s.isSuccess
}

func (s Status3[E1, E2, E3]) IsSuccess() bool {
	return s.isSuccess
}

func (s Status3[E1, E2, E3]) IsError() bool {
	return !s.isSuccess
}

func (s Status3[E1, E2, E3]) Err() any {
	if s.isSuccess {
		return misuse[any]("Status3.Err")
	}
	return guardNil(s.errs.boxed(), "Status3.Err")
}

func (s Status3[E1, E2, E3]) Kind() ErrorKind {
	if s.isSuccess {
		return NoError
	}
	return s.errs.kind
}

func (s Status3[E1, E2, E3]) Err1() E1 {
	if s.Kind() != Kind1 {
		return misuse[E1]("Status3.Err1")
	}
	return guardNil(s.errs.e1, "Status3.Err1")
}

func (s Status3[E1, E2, E3]) Err2() E2 {
	if s.Kind() != Kind2 {
		return misuse[E2]("Status3.Err2")
	}
	return guardNil(s.errs.e2, "Status3.Err2")
}

func (s Status3[E1, E2, E3]) Err3() E3 {
	if s.Kind() != Kind3 {
		return misuse[E3]("Status3.Err3")
	}
	return guardNil(s.errs.e3, "Status3.Err3")
}

func (s Status3[E1, E2, E3]) holds(probe any) bool {
	return s.errs.holds(probe)
}
