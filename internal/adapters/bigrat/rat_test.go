package bigrat

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rat(t *testing.T, s string) *big.Rat {
	t.Helper()
	r, ok := new(big.Rat).SetString(s)
	require.True(t, ok, s)
	return r
}

func TestParse_AcceptsDecimalForms(t *testing.T) {
	a := New()
	for _, s := range []string{"0", "12.7", "0.5", "1e3", "2.5E-1"} {
		_, err := a.Parse(s)
		assert.NoError(t, err, s)
	}
}

func TestParse_RejectsFractionSyntaxAndNegatives(t *testing.T) {
	a := New()
	for _, s := range []string{"", "abc", "1/2", "-3"} {
		_, err := a.Parse(s)
		assert.Error(t, err, s)
	}
}

func TestDiv_IsExact(t *testing.T) {
	a := New()
	q := a.Div(a.FromInt(50), rat(t, "25.4"))
	assert.Equal(t, "250/127", q.String())
}

func TestRound_HalfAwayFromZero(t *testing.T) {
	a := New()
	cases := map[string]string{
		"5/2":     "3/1",
		"249/100": "2/1",
		"7/2":     "4/1",
		"-5/2":    "-3/1",
		"1/3":     "0/1",
	}
	for in, want := range cases {
		assert.Equal(t, want, a.Round(rat(t, in)).String(), in)
	}
}

func TestFixed(t *testing.T) {
	a := New()
	assert.Equal(t, "1.969", a.Fixed(rat(t, "250/127"), 3))
	assert.Equal(t, "25.400", a.Fixed(rat(t, "25.4"), 3))
	assert.Equal(t, "0.001", a.Fixed(rat(t, "0.0005"), 3))
}

func TestFixed_DropsNegativeZero(t *testing.T) {
	a := New()
	assert.Equal(t, "0.0000", a.Fixed(rat(t, "-0.00004"), 4))
	assert.Equal(t, "-0.0001", a.Fixed(rat(t, "-0.00006"), 4))
}

func TestIsInteger(t *testing.T) {
	a := New()
	assert.True(t, a.IsInteger(rat(t, "254/254")))
	assert.False(t, a.IsInteger(rat(t, "250/127")))
}

func TestFraction(t *testing.T) {
	a := New()
	num, den, ok := a.Fraction(rat(t, "252/128"))
	require.True(t, ok)
	assert.Equal(t, int64(63), num)
	assert.Equal(t, int64(32), den)

	_, _, ok = a.Fraction(rat(t, "100000000000000000000"))
	assert.False(t, ok)
}
