// Package weighting provides Weighting, a fraction in [0, 1] describing the
// impact of something relative to other weightings, and the normalization
// of a set of weightings onto a shared denominator.
package weighting

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ib-77/monads/pkg/monads"
	"github.com/ib-77/monads/pkg/monads/result"
)

const (
	msgNumeratorTooLarge = "A weighting's numerator must not exceed its denominator."
	msgDenominator       = "A weighting's denominator must be positive."
	msgFormat            = "A weighting must be written as numerator/denominator."
)

// Weighting is the fraction Numerator/Denominator: the X and Y in
// "X in Y chance of Z". Equality is structural, 1/2 != 2/4.
type Weighting struct {
	numerator   uint64
	denominator uint64
}

// Zero has no impact.
func Zero() Weighting {
	return Weighting{numerator: 0, denominator: 1}
}

// Create validates the fraction. A zero numerator yields Zero whatever the
// denominator.
func Create(numerator, denominator uint64) result.Value[Weighting] {
	if numerator > denominator {
		return result.FailValue[Weighting](msgNumeratorTooLarge,
			monads.NewFieldError("numerator", fmt.Sprintf("%d exceeds %d", numerator, denominator)))
	}
	if denominator < 1 {
		return result.FailValue[Weighting](msgDenominator,
			monads.NewFieldError("denominator", "must be at least 1"))
	}
	if numerator == 0 {
		return result.OkValue(Zero())
	}
	return result.OkValue(Weighting{numerator: numerator, denominator: denominator})
}

// Parse reads "n/d" and validates it with Create.
func Parse(s string) result.Value[Weighting] {
	num, den, found := strings.Cut(strings.TrimSpace(s), "/")
	if !found {
		return result.FailValue[Weighting](msgFormat, monads.NewFieldError("weighting", s))
	}

	n, err := strconv.ParseUint(strings.TrimSpace(num), 10, 64)
	if err != nil {
		return result.FailValue[Weighting](msgFormat, monads.NewFieldError("numerator", err.Error()))
	}
	d, err := strconv.ParseUint(strings.TrimSpace(den), 10, 64)
	if err != nil {
		return result.FailValue[Weighting](msgFormat, monads.NewFieldError("denominator", err.Error()))
	}

	return Create(n, d)
}

func (w Weighting) Numerator() uint64 {
	return w.numerator
}

func (w Weighting) Denominator() uint64 {
	return w.denominator
}

// Equal is structural.
func (w Weighting) Equal(other Weighting) bool {
	return w == other
}

// SameValue reports whether both fractions are equal in value, e.g. 1/2 and 2/4.
func (w Weighting) SameValue(other Weighting) bool {
	lh, ll := bits.Mul64(w.numerator, other.denominator)
	rh, rl := bits.Mul64(other.numerator, w.denominator)
	return lh == rh && ll == rl
}

// Ratio is the fraction as a decimal, rounded to decimal.DivisionPrecision.
func (w Weighting) Ratio() decimal.Decimal {
	num := decimal.NewFromBigInt(new(big.Int).SetUint64(w.numerator), 0)
	den := decimal.NewFromBigInt(new(big.Int).SetUint64(w.denominator), 0)
	return num.Div(den)
}

func (w Weighting) String() string {
	return fmt.Sprintf("%d/%d", w.numerator, w.denominator)
}

// Simplify divides both parts by the first common divisor found scanning
// from 2 up to the numerator. This is one reduction step, not a GCD: the
// result may still be reducible.
func (w Weighting) Simplify() Weighting {
	for i := uint64(2); i <= w.numerator; i++ {
		if w.numerator%i == 0 && w.denominator%i == 0 {
			return Weighting{numerator: w.numerator / i, denominator: w.denominator / i}
		}
	}
	return w
}

// CommonDenominator finds a common denominator with other. It is not
// guaranteed to be the lowest one.
func (w Weighting) CommonDenominator(other Weighting) uint64 {
	return DetermineCommonDenominator(w.denominator, other.denominator)
}

// DetermineCommonDenominator grows the multiples of left and right in
// step, multiplier 1 to min(left, right), and after each step returns the
// first left multiple already present among the right multiples. Without a
// match it returns left*right. The work grows with the square of the
// smaller denominator, and products past the uint64 range wrap.
func DetermineCommonDenominator(left, right uint64) uint64 {
	smaller := min(left, right)

	var leftMultiples []uint64
	rightMultiples := make(map[uint64]struct{})

	for multiplier := uint64(1); multiplier <= smaller; multiplier++ {
		leftMultiples = append(leftMultiples, left*multiplier)
		rightMultiples[right*multiplier] = struct{}{}

		for _, multiple := range leftMultiples {
			if _, ok := rightMultiples[multiple]; ok {
				return multiple
			}
		}
	}

	return left * right
}

// Normalize rewrites set so that every weighting has the same denominator
// and keeps its value. Sets of zero or one element, or with a single
// denominator already, are returned unchanged.
func Normalize(set []Weighting) []Weighting {
	if len(set) <= 1 || sameDenominator(set) {
		return set
	}

	simplified := make([]Weighting, len(set))
	for i, w := range set {
		simplified[i] = w.Simplify()
	}

	target := simplified[0].denominator
	for i := 1; i < len(simplified); i++ {
		common := simplified[i].CommonDenominator(simplified[i-1])
		target = DetermineCommonDenominator(common, target)
	}

	normalized := make([]Weighting, len(simplified))
	for i, w := range simplified {
		if w.denominator == target {
			normalized[i] = w
			continue
		}
		multiplier := target / w.denominator
		normalized[i] = Weighting{numerator: w.numerator * multiplier, denominator: target}
	}
	return normalized
}

func sameDenominator(set []Weighting) bool {
	for _, w := range set[1:] {
		if w.denominator != set[0].denominator {
			return false
		}
	}
	return true
}
