package shopspring

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AcceptsDecimalForms(t *testing.T) {
	a := New(0)
	for _, s := range []string{"0", "12.7", "0.5", "1e3", "2.5E-1", "1234567890.0987654321"} {
		d, err := a.Parse(s)
		require.NoError(t, err, s)
		assert.False(t, d.IsNegative(), s)
	}
}

func TestParse_RejectsGarbageAndNegatives(t *testing.T) {
	a := New(0)
	for _, s := range []string{"", "abc", "1.2.3", "-1"} {
		_, err := a.Parse(s)
		assert.Error(t, err, s)
	}
}

func TestNew_DefaultPrecision(t *testing.T) {
	assert.Equal(t, DefaultPrecision, New(0).Precision())
	assert.Equal(t, int32(8), New(8).Precision())
}

func TestDiv_RoundsToPrecision(t *testing.T) {
	a := New(4)
	q := a.Div(a.FromInt(1), a.FromInt(3))
	assert.Equal(t, "0.3333", q.String())
}

func TestRound_HalfAwayFromZero(t *testing.T) {
	a := New(0)
	cases := map[string]string{
		"2.5":  "3",
		"2.49": "2",
		"3.5":  "4",
		"0.5":  "1",
	}
	for in, want := range cases {
		d, err := a.Parse(in)
		require.NoError(t, err)
		assert.Equal(t, want, a.Round(d).String(), in)
	}
}

func TestFixed_KeepsTrailingZeros(t *testing.T) {
	a := New(0)
	assert.Equal(t, "1.000", a.Fixed(a.FromInt(1), 3))
	assert.Equal(t, "0.001", a.Fixed(decimal.RequireFromString("0.0005"), 3))
	assert.Equal(t, "25.400", a.Fixed(decimal.RequireFromString("25.4"), 3))
}

func TestIsInteger(t *testing.T) {
	a := New(0)
	assert.True(t, a.IsInteger(decimal.RequireFromString("3.000")))
	assert.False(t, a.IsInteger(decimal.RequireFromString("3.001")))
}

func TestFraction_LowestTerms(t *testing.T) {
	a := New(0)
	num, den, ok := a.Fraction(decimal.RequireFromString("1.96875"))
	require.True(t, ok)
	assert.Equal(t, int64(63), num)
	assert.Equal(t, int64(32), den)

	num, den, ok = a.Fraction(a.FromInt(7))
	require.True(t, ok)
	assert.Equal(t, int64(7), num)
	assert.Equal(t, int64(1), den)
}

func TestFraction_Overflow(t *testing.T) {
	a := New(0)
	_, _, ok := a.Fraction(decimal.RequireFromString("100000000000000000000"))
	assert.False(t, ok)
}
