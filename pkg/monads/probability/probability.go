// Package probability provides Probability, a decimal chance bounded to
// [0, 1] with saturating addition and subtraction.
package probability

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/ib-77/monads/pkg/monads"
	"github.com/ib-77/monads/pkg/monads/result"
)

const (
	msgNegative = "Probability chance must not be negative."
	msgTooLarge = "Probability chance must not exceed 1."
	msgNaN      = "Probability chance must be a number."
)

var one = decimal.NewFromInt(1)

// Probability is the likelihood of something happening, from 0 to 1.
type Probability struct {
	chance decimal.Decimal
}

// newProbability panics on out-of-range input; callers validate first.
func newProbability(chance decimal.Decimal) Probability {
	if chance.IsNegative() {
		monads.InvalidArgument("%s got %s", msgNegative, chance)
	}
	if chance.GreaterThan(one) {
		monads.InvalidArgument("%s got %s", msgTooLarge, chance)
	}
	return Probability{chance: chance}
}

// Zero is something that will never happen.
func Zero() Probability {
	return newProbability(decimal.Zero)
}

// One is something that will always happen.
func One() Probability {
	return newProbability(one)
}

// Create validates chance and returns a failure result when it is outside [0, 1].
func Create(chance decimal.Decimal) result.Value[Probability] {
	if chance.IsNegative() {
		return result.FailValue[Probability](msgNegative)
	}
	if chance.GreaterThan(one) {
		return result.FailValue[Probability](msgTooLarge)
	}
	return result.OkValue(newProbability(chance))
}

// CreateFromFloat is Create for a float64. NaN and the infinities fail like
// any other invalid chance.
func CreateFromFloat(chance float64) result.Value[Probability] {
	switch {
	case math.IsNaN(chance):
		return result.FailValue[Probability](msgNaN)
	case math.IsInf(chance, 1):
		return result.FailValue[Probability](msgTooLarge)
	case math.IsInf(chance, -1):
		return result.FailValue[Probability](msgNegative)
	}
	return Create(decimal.NewFromFloat(chance))
}

func (p Probability) Chance() decimal.Decimal {
	return p.chance
}

func (p Probability) Float64() float64 {
	v, _ := p.chance.Float64()
	return v
}

// Add returns p + other, clamped to One.
func (p Probability) Add(other Probability) Probability {
	return clamp(p.chance.Add(other.chance))
}

// Sub returns p - other, clamped to Zero.
func (p Probability) Sub(other Probability) Probability {
	return clamp(p.chance.Sub(other.chance))
}

func clamp(chance decimal.Decimal) Probability {
	if chance.GreaterThanOrEqual(one) {
		return One()
	}
	if chance.LessThanOrEqual(decimal.Zero) {
		return Zero()
	}
	return newProbability(chance)
}

func (p Probability) Cmp(other Probability) int {
	return p.chance.Cmp(other.chance)
}

func (p Probability) CompareTo(other Probability) int {
	return p.Cmp(other)
}

func (p Probability) Equal(other Probability) bool {
	return p.chance.Equal(other.chance)
}

func (p Probability) LessThan(other Probability) bool {
	return p.Cmp(other) < 0
}

func (p Probability) LessThanOrEqual(other Probability) bool {
	return p.Cmp(other) <= 0
}

func (p Probability) GreaterThan(other Probability) bool {
	return p.Cmp(other) > 0
}

func (p Probability) GreaterThanOrEqual(other Probability) bool {
	return p.Cmp(other) >= 0
}

func (p Probability) String() string {
	return fmt.Sprintf("P(%s)", p.chance)
}
