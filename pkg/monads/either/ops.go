package either

import (
	"github.com/ib-77/monads/pkg/monads/maybe"
)

// Chain calls onRight with the success value and returns its result. A
// failure is passed on with the same failure value and onRight is not called.
func Chain[S, T, F any](input Either[S, F], onRight func(S) Either[T, F]) Either[T, F] {
	if !input.isRight {
		return Left[T](input.left)
	}
	return onRight(input.right)
}

// Map hands both arms to f, the present one populated and the absent one
// empty, so f may change the success and the failure type.
func Map[S, F, T, TF any](input Either[S, F],
	f func(right maybe.Maybe[S], left maybe.Maybe[F]) Either[T, TF]) Either[T, TF] {

	right, left := input.Maybes()
	return f(right, left)
}

func MapBoth[S, F, T, TF any](input Either[S, F],
	onRight func(S) Either[T, TF],
	onLeft func(F) TF) Either[T, TF] {

	if !input.isRight {
		return Left[T](onLeft(input.left))
	}
	return onRight(input.right)
}

func Fold[S, F, R any](input Either[S, F], onRight func(S) R, onLeft func(F) R) R {
	if input.isRight {
		return onRight(input.right)
	}
	return onLeft(input.left)
}

// Sequence runs first and then each of rest in order, feeding the previous
// success value forward. It stops at the first failure: no later function
// is called and that failure is returned as is.
func Sequence[S, F any](first func() Either[S, F], rest ...func(S) Either[S, F]) Either[S, F] {
	res := first()
	for _, next := range rest {
		if !res.isRight {
			return res
		}
		res = next(res.right)
	}
	return res
}
