package rusty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/rusty/pkg/rusty"
)

func getStatus(arg int) rusty.Status {
	if arg == 1 {
		return rusty.StatusOk(rusty.Ok())
	}
	return rusty.StatusErr(rusty.Error())
}

func getStatusOrError(arg int) rusty.Status1[string] {
	if arg == 1 {
		return rusty.Status1Ok[string](rusty.Ok())
	}
	return rusty.Status1Err(rusty.ErrorWith("Invalid Operation"))
}

func TestStatus(t *testing.T) {
	t.Parallel()

	ok := getStatus(1)
	assertConsistent(t, ok)
	if !ok.Bool() || !ok.IsSuccess() || ok.IsError() {
		t.Fatalf("expected success, got: bool=%v, success=%v, error=%v", ok.Bool(), ok.IsSuccess(), ok.IsError())
	}

	failed := getStatus(2)
	assertConsistent(t, failed)
	if failed.Bool() || failed.IsSuccess() || !failed.IsError() {
		t.Fatalf("expected error, got: bool=%v, success=%v, error=%v", failed.Bool(), failed.IsSuccess(), failed.IsError())
	}
}

func TestStatus_ZeroValueIsError(t *testing.T) {
	t.Parallel()

	var s rusty.Status
	assertConsistent(t, s)
	assert.True(t, s.IsError())
}

func TestStatus1_Success(t *testing.T) {
	t.Parallel()

	res := getStatusOrError(1)
	assertConsistent(t, res)

	if !res.Bool() || !res.IsSuccess() || res.IsError() {
		t.Fatalf("expected success, got: bool=%v, success=%v, error=%v", res.Bool(), res.IsSuccess(), res.IsError())
	}
	requireMisuse(t, "Status1.Err", func() { discard(res.Err()) })
}

func TestStatus1_Error(t *testing.T) {
	t.Parallel()

	res := getStatusOrError(2)
	assertConsistent(t, res)

	if res.Bool() || res.IsSuccess() || !res.IsError() {
		t.Fatalf("expected error, got: bool=%v, success=%v, error=%v", res.Bool(), res.IsSuccess(), res.IsError())
	}
	if res.Err() != "Invalid Operation" {
		t.Fatalf("expected 'Invalid Operation', got %q", res.Err())
	}
}

func TestStatus1_NilErrorPayload(t *testing.T) {
	t.Parallel()

	res := rusty.Status1Err(rusty.ErrorWith[map[string]int](nil))
	assert.True(t, res.IsError())
	requireMisuse(t, "Status1.Err", func() { discard(res.Err()) })
}
