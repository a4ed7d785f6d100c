package maybe

import (
	"fmt"

	"github.com/ib-77/monads/pkg/monads"
)

// Maybe holds a value that might be absent. The zero Maybe is empty.
type Maybe[T any] struct {
	value    T
	hasValue bool
}

// Create wraps value, returning an empty Maybe when value is nil.
func Create[T any](value T) Maybe[T] {
	if monads.IsNil(value) {
		return Empty[T]()
	}
	return Maybe[T]{value: value, hasValue: true}
}

// Some wraps value without a nil check.
func Some[T any](value T) Maybe[T] {
	return Maybe[T]{value: value, hasValue: true}
}

func Empty[T any]() Maybe[T] {
	return Maybe[T]{}
}

func FromPointer[T any](p *T) Maybe[T] {
	if p == nil {
		return Empty[T]()
	}
	return Some(*p)
}

// First returns the first item accepted by match, or an empty Maybe.
func First[T any](items []T, match func(T) bool) Maybe[T] {
	for _, item := range items {
		if match(item) {
			return Create(item)
		}
	}
	return Empty[T]()
}

func (m Maybe[T]) HasValue() bool {
	return m.hasValue
}

func (m Maybe[T]) HasNoValue() bool {
	return !m.hasValue
}

// Value returns the wrapped value and panics when the Maybe is empty.
func (m Maybe[T]) Value() T {
	if !m.hasValue {
		monads.InvalidState("can not access the value of an empty Maybe")
	}
	return m.value
}

func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.hasValue
}

// Coalesce returns the value when present and def otherwise.
func (m Maybe[T]) Coalesce(def T) T {
	if m.hasValue {
		return m.value
	}
	return def
}

// Apply calls f with the value when present.
func (m Maybe[T]) Apply(f func(T)) {
	if m.hasValue {
		f(m.value)
	}
}

func (m Maybe[T]) String() string {
	if !m.hasValue {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", m.value)
}

// Map calls f with the value when present; an empty Maybe stays empty and f
// is not called.
func Map[T, R any](m Maybe[T], f func(T) Maybe[R]) Maybe[R] {
	if !m.hasValue {
		return Empty[R]()
	}
	return f(m.value)
}

func Equal[T comparable](a, b Maybe[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal for values that are not comparable with ==.
func EqualFunc[T any](a, b Maybe[T], eq func(T, T) bool) bool {
	if !a.hasValue || !b.hasValue {
		return a.hasValue == b.hasValue
	}
	return eq(a.value, b.value)
}

// Is reports whether m holds a value equal to v.
func Is[T comparable](m Maybe[T], v T) bool {
	return m.hasValue && m.value == v
}
