package rusty

// Status is the outcome of an operation that either succeeds or fails, with
// no payload on either side. The zero value is a failure.
type Status struct {
	isSuccess bool
}

func StatusOk(_ SuccessTag) Status {
	return Status{isSuccess: true}
}

func StatusErr(_ ErrorTag) Status {
	return Status{}
}

func (s Status) Bool() bool {
	return s.isSuccess
}

func (s Status) IsSuccess() bool {
	return s.isSuccess
}

func (s Status) IsError() bool {
	return !s.isSuccess
}

// Status1 is the outcome of an operation that succeeds with no payload or
// fails with an error of type E.
type Status1[E any] struct {
	err       E
	isSuccess bool
}

func Status1Ok[E any](_ SuccessTag) Status1[E] {
	return Status1[E]{isSuccess: true}
}

func Status1Err[E any](tag ErrorValueTag[E]) Status1[E] {
	return Status1[E]{err: tag.err}
}

func (s Status1[E]) Bool() bool {
	return s.isSuccess
}

func (s Status1[E]) IsSuccess() bool {
	return s.isSuccess
}

func (s Status1[E]) IsError() bool {
	return !s.isSuccess
}

// Err returns the error. It panics with a *MisuseError on a success.
func (s Status1[E]) Err() E {
	if s.isSuccess {
		return misuse[E]("Status1.Err")
	}
	return guardNil(s.err, "Status1.Err")
}
