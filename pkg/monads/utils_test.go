package monads

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *int
	var m map[string]int
	var s []int
	var c chan int
	var f func()
	var e error

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(m))
	assert.True(t, IsNil(s))
	assert.True(t, IsNil(c))
	assert.True(t, IsNil(f))
	assert.True(t, IsNil(e))

	n := 1
	assert.False(t, IsNil(&n))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil([]int{}))
	assert.False(t, IsNil(struct{}{}))
}

func TestPanicHelpers(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic, got %v", r)
		}
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
		assert.Equal(t, "invalid state: no value 3", err.Error())
	}()

	InvalidState("no value %d", 3)
}

func TestInvalidArgument(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t, "invalid argument: blank", func() {
		InvalidArgument("blank")
	})
}
