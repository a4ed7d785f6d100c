package factor

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComparisons(t *testing.T) {
	t.Parallel()

	tests := []struct {
		left, right float64
		cmp         int
	}{
		{0.5, 1.0, -1},
		{1.0, 1.0, 0},
		{1.0, 0.5, 1},
		{-3, 2, -1},
		{1e6, -1e6, 1},
	}

	for _, tt := range tests {
		l, r := FromFloat(tt.left), FromFloat(tt.right)

		assert.Equal(t, tt.cmp, l.Cmp(r), "%v cmp %v", tt.left, tt.right)
		assert.Equal(t, tt.cmp, l.CompareTo(r))
		assert.Equal(t, tt.cmp < 0, l.LessThan(r))
		assert.Equal(t, tt.cmp <= 0, l.LessThanOrEqual(r))
		assert.Equal(t, tt.cmp > 0, l.GreaterThan(r))
		assert.Equal(t, tt.cmp >= 0, l.GreaterThanOrEqual(r))
		assert.Equal(t, tt.cmp == 0, l.Equal(r))
	}
}

func TestEqual_Reflexive(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{0, 1, -1, 0.1, 123.456, -99999.5} {
		f := FromFloat(v)
		assert.True(t, f.Equal(FromFloat(v)))
		assert.Zero(t, f.Cmp(f))
	}
}

func TestEqual_ByValue(t *testing.T) {
	t.Parallel()

	a := New(decimal.RequireFromString("1.50"))
	b := New(decimal.RequireFromString("1.5"))
	assert.True(t, a.Equal(b))
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	assert.True(t, Zero().Equal(FromInt(0)))
	assert.True(t, One().Equal(FromFloat(1)))
	assert.Equal(t, "2.5", FromFloat(2.5).String())
	assert.Equal(t, 2.5, FromFloat(2.5).Float64())
	assert.True(t, FromInt(3).Decimal().Equal(decimal.NewFromInt(3)))
	assert.True(t, FromInt(3).Rate().Equal(decimal.NewFromInt(3)))
}

func TestFromFloat_NonFinitePanics(t *testing.T) {
	t.Parallel()

	for _, rate := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		assert.Panics(t, func() { FromFloat(rate) }, "%v", rate)
	}
}

func TestScale(t *testing.T) {
	t.Parallel()

	got := FromFloat(1.5).Scale(decimal.NewFromInt(10))
	assert.True(t, got.Equal(decimal.NewFromInt(15)), "got %s", got)
	assert.True(t, Zero().Scale(decimal.NewFromInt(10)).IsZero())
}
