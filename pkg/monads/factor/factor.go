// Package factor provides Factor, an unbounded decimal multiplier with a
// total order.
package factor

import (
	"github.com/shopspring/decimal"
)

// Factor is a multiplier. Any rate is valid.
type Factor struct {
	rate decimal.Decimal
}

func New(rate decimal.Decimal) Factor {
	return Factor{rate: rate}
}

// FromFloat panics on NaN and the infinities, which have no decimal form.
func FromFloat(rate float64) Factor {
	return Factor{rate: decimal.NewFromFloat(rate)}
}

func FromInt(rate int64) Factor {
	return Factor{rate: decimal.NewFromInt(rate)}
}

func Zero() Factor {
	return Factor{rate: decimal.Zero}
}

func One() Factor {
	return Factor{rate: decimal.NewFromInt(1)}
}

// Rate is the multiplier.
func (f Factor) Rate() decimal.Decimal {
	return f.rate
}

func (f Factor) Decimal() decimal.Decimal {
	return f.rate
}

func (f Factor) Float64() float64 {
	v, _ := f.rate.Float64()
	return v
}

// Scale multiplies d by the factor.
func (f Factor) Scale(d decimal.Decimal) decimal.Decimal {
	return d.Mul(f.rate)
}

// Cmp returns -1, 0 or +1 as f is less than, equal to or greater than other.
func (f Factor) Cmp(other Factor) int {
	return f.rate.Cmp(other.rate)
}

// CompareTo is an alias of Cmp.
func (f Factor) CompareTo(other Factor) int {
	return f.Cmp(other)
}

// Equal compares by value, so 1.50 equals 1.5.
func (f Factor) Equal(other Factor) bool {
	return f.rate.Equal(other.rate)
}

func (f Factor) LessThan(other Factor) bool {
	return f.Cmp(other) < 0
}

func (f Factor) LessThanOrEqual(other Factor) bool {
	return f.Cmp(other) <= 0
}

func (f Factor) GreaterThan(other Factor) bool {
	return f.Cmp(other) > 0
}

func (f Factor) GreaterThanOrEqual(other Factor) bool {
	return f.Cmp(other) >= 0
}

func (f Factor) String() string {
	return f.rate.String()
}
