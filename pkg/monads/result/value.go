package result

import (
	"github.com/ib-77/monads/pkg/monads"
	"github.com/ib-77/monads/pkg/monads/either"
)

// Value is a Result that carries a value on success.
type Value[T any] struct {
	Result
	value T
}

func OkValue[T any](value T) Value[T] {
	return Value[T]{Result: Ok(), value: value}
}

func FailValue[T any](message string, fieldErrors ...monads.FieldError) Value[T] {
	return Value[T]{Result: Fail(message, fieldErrors...)}
}

// FromValue fails with CatchAllMessage when value is nil and succeeds otherwise.
func FromValue[T any](value T) Value[T] {
	if monads.IsNil(value) {
		return FailValue[T](CatchAllMessage)
	}
	return OkValue(value)
}

// FromEither turns a validation Either into a Value, using message as the
// general failure message and keeping the field errors.
func FromEither[T any](e either.Either[T, []monads.FieldError], message string) Value[T] {
	if e.IsRight() {
		return OkValue(e.Right())
	}
	return FailValue[T](message, e.Left()...)
}

// Value returns the value; it panics when the result is a failure.
func (r Value[T]) Value() T {
	if r.IsFailure() {
		monads.InvalidState("result does not have a value")
	}
	return r.value
}

// Either converts the result into an Either with the field errors as failure.
func (r Value[T]) Either() either.Either[T, []monads.FieldError] {
	if r.IsSuccess() {
		return either.Right[T, []monads.FieldError](r.value)
	}
	return either.Left[T]([]monads.FieldError(r.FieldErrors()))
}
