package probability

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/monads/pkg/monads/result"
)

func mustCreate(t *testing.T, chance float64) Probability {
	t.Helper()

	r := CreateFromFloat(chance)
	require.True(t, r.IsSuccess(), "create %v: %s", chance, r.Message())
	return r.Value()
}

func TestComparisons(t *testing.T) {
	t.Parallel()

	tests := []struct {
		left, right float64
		cmp         int
	}{
		{0.5, 1.0, -1},
		{1.0, 1.0, 0},
		{1.0, 0.5, 1},
	}

	for _, tt := range tests {
		l, r := mustCreate(t, tt.left), mustCreate(t, tt.right)

		assert.Equal(t, tt.cmp < 0, l.LessThan(r), "%v < %v", tt.left, tt.right)
		assert.Equal(t, tt.cmp > 0, l.GreaterThan(r), "%v > %v", tt.left, tt.right)
		assert.Equal(t, tt.cmp >= 0, l.GreaterThanOrEqual(r))
		assert.Equal(t, tt.cmp <= 0, l.LessThanOrEqual(r))
		assert.Equal(t, tt.cmp == 0, l.Equal(r))
		assert.Equal(t, tt.cmp, l.CompareTo(r))
	}
}

func TestCreate_OutOfRangeFails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		chance  string
		message string
	}{
		{"-0.0001", "Probability chance must not be negative."},
		{"-1", "Probability chance must not be negative."},
		{"1.0001", "Probability chance must not exceed 1."},
		{"42", "Probability chance must not exceed 1."},
	}

	for _, tt := range tests {
		r := Create(decimal.RequireFromString(tt.chance))
		assert.True(t, r.IsFailure(), tt.chance)
		assert.Equal(t, tt.message, r.Message())
	}
}

func TestCreateFromFloat_NonFiniteFails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		chance  float64
		message string
	}{
		{"+Inf", math.Inf(1), "Probability chance must not exceed 1."},
		{"-Inf", math.Inf(-1), "Probability chance must not be negative."},
		{"NaN", math.NaN(), "Probability chance must be a number."},
		{"too large", 1.5, "Probability chance must not exceed 1."},
	}

	for _, tt := range tests {
		var r result.Value[Probability]
		require.NotPanics(t, func() { r = CreateFromFloat(tt.chance) }, tt.name)
		assert.True(t, r.IsFailure(), tt.name)
		assert.Equal(t, tt.message, r.Message(), tt.name)
	}
}

func TestCreate_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"0", "0.25", "0.5", "0.999999", "1"} {
		chance := decimal.RequireFromString(s)
		r := Create(chance)
		require.True(t, r.IsSuccess(), s)
		assert.True(t, r.Value().Chance().Equal(chance), s)
	}
}

func TestAdd_Saturates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		p, q, want float64
	}{
		{0.2, 0.3, 0.5},
		{0.5, 0.5, 1},
		{0.7, 0.7, 1},
		{1, 1, 1},
		{0, 0, 0},
		{0, 0.4, 0.4},
	}

	for _, tt := range tests {
		got := mustCreate(t, tt.p).Add(mustCreate(t, tt.q))
		assert.True(t, got.Equal(mustCreate(t, tt.want)), "%v + %v = %s", tt.p, tt.q, got)
	}
}

func TestSub_Saturates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		p, q, want float64
	}{
		{0.5, 0.2, 0.3},
		{0.5, 0.5, 0},
		{0.2, 0.7, 0},
		{1, 0, 1},
		{1, 1, 0},
	}

	for _, tt := range tests {
		got := mustCreate(t, tt.p).Sub(mustCreate(t, tt.q))
		assert.True(t, got.Equal(mustCreate(t, tt.want)), "%v - %v = %s", tt.p, tt.q, got)
	}
}

func TestArithmetic_StaysInRange(t *testing.T) {
	t.Parallel()

	steps := []float64{0, 0.1, 0.25, 0.333, 0.5, 0.75, 0.9, 1}
	for _, p := range steps {
		for _, q := range steps {
			pp, qq := mustCreate(t, p), mustCreate(t, q)

			sum := pp.Add(qq)
			assert.True(t, sum.GreaterThanOrEqual(Zero()) && sum.LessThanOrEqual(One()))
			wantSum := decimal.Min(decimal.NewFromInt(1), pp.Chance().Add(qq.Chance()))
			assert.True(t, sum.Chance().Equal(wantSum), "%v + %v", p, q)

			diff := pp.Sub(qq)
			wantDiff := decimal.Max(decimal.Zero, pp.Chance().Sub(qq.Chance()))
			assert.True(t, diff.Chance().Equal(wantDiff), "%v - %v", p, q)
		}
	}
}

func TestUncheckedConstructorGuards(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { newProbability(decimal.NewFromInt(-1)) })
	assert.Panics(t, func() { newProbability(decimal.NewFromFloat(1.5)) })
	assert.NotPanics(t, func() { newProbability(decimal.NewFromFloat(0.5)) })
}

func TestZeroOne(t *testing.T) {
	t.Parallel()

	assert.True(t, Zero().Chance().IsZero())
	assert.True(t, One().Chance().Equal(decimal.NewFromInt(1)))
	assert.True(t, Zero().LessThan(One()))
	assert.Equal(t, "P(0.5)", mustCreate(t, 0.5).String())
	assert.Equal(t, 0.5, mustCreate(t, 0.5).Float64())
}
