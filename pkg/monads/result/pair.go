package result

import (
	"github.com/ib-77/monads/pkg/monads"
	"github.com/ib-77/monads/pkg/monads/either"
)

// Pair is a Result that carries a value on both arms.
type Pair[S, F any] struct {
	Result
	successValue S
	failureValue F
}

func OkPair[S, F any](successValue S) Pair[S, F] {
	return Pair[S, F]{Result: Ok(), successValue: successValue}
}

func FailPair[S, F any](message string, failureValue F, fieldErrors ...monads.FieldError) Pair[S, F] {
	return Pair[S, F]{Result: Fail(message, fieldErrors...), failureValue: failureValue}
}

func (p Pair[S, F]) SuccessValue() S {
	if p.IsFailure() {
		monads.InvalidState("result does not have a success value")
	}
	return p.successValue
}

func (p Pair[S, F]) FailureValue() F {
	if p.IsSuccess() {
		monads.InvalidState("result does not have a failure value")
	}
	return p.failureValue
}

func (p Pair[S, F]) Either() either.Either[S, F] {
	if p.IsSuccess() {
		return either.Right[S, F](p.successValue)
	}
	return either.Left[S](p.failureValue)
}
