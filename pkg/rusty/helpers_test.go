package rusty_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/rusty/pkg/rusty"
)

// requireMisuse runs f and fails the test unless it panics with a
// *rusty.MisuseError raised by op.
func requireMisuse(t *testing.T, op string, f func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected %s to panic", op)

		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, rusty.ErrMisuse)

		var rt runtime.Error
		require.ErrorAs(t, err, &rt)

		var me *rusty.MisuseError
		require.ErrorAs(t, err, &me)
		assert.Equal(t, op, me.Op)
	}()

	f()
}

func assertConsistent(t *testing.T, o rusty.Outcome) {
	t.Helper()
	assert.Equal(t, o.Bool(), o.IsSuccess(), "Bool and IsSuccess disagree")
	assert.Equal(t, o.IsSuccess(), !o.IsError(), "IsSuccess and IsError are not complementary")
}

func discard[T any](T) {}
