package either

import (
	"fmt"

	"github.com/ib-77/monads/pkg/monads"
	"github.com/ib-77/monads/pkg/monads/maybe"
)

// Either holds exactly one of a success (right) or a failure (left) value.
// Only Right and Left populate an arm; the zero Either is a failure holding
// the zero F.
type Either[S, F any] struct {
	right   S
	left    F
	isRight bool
}

func Right[S, F any](right S) Either[S, F] {
	return Either[S, F]{right: right, isRight: true}
}

func Left[S, F any](left F) Either[S, F] {
	return Either[S, F]{left: left}
}

// R is an alias of Right.
func R[S, F any](right S) Either[S, F] {
	return Right[S, F](right)
}

// L is an alias of Left.
func L[S, F any](left F) Either[S, F] {
	return Left[S](left)
}

func (e Either[S, F]) IsRight() bool {
	return e.isRight
}

func (e Either[S, F]) IsLeft() bool {
	return !e.isRight
}

// Right returns the success value. It panics when the Either is a failure,
// so check IsRight first.
func (e Either[S, F]) Right() S {
	if !e.isRight {
		monads.InvalidState("Right does not have a value, check IsRight before accessing Right")
	}
	return e.right
}

// Left returns the failure value. It panics when the Either is a success,
// so check IsLeft first.
func (e Either[S, F]) Left() F {
	if e.isRight {
		monads.InvalidState("Left does not have a value, check IsLeft before accessing Left")
	}
	return e.left
}

// Then is Chain for steps that keep the success type.
func (e Either[S, F]) Then(onRight func(S) Either[S, F]) Either[S, F] {
	return Chain(e, onRight)
}

func (e Either[S, F]) ApplyRight(action func(S)) {
	if e.isRight {
		action(e.right)
	}
}

func (e Either[S, F]) ApplyLeft(action func(F)) {
	if !e.isRight {
		action(e.left)
	}
}

// Maybes returns the right and left arms as Maybes, exactly one populated.
func (e Either[S, F]) Maybes() (maybe.Maybe[S], maybe.Maybe[F]) {
	if e.isRight {
		return maybe.Some(e.right), maybe.Empty[F]()
	}
	return maybe.Empty[S](), maybe.Some(e.left)
}

func (e Either[S, F]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}
