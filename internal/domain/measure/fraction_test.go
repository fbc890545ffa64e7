package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCD_Table(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{124, 128, 4},
		{31, 32, 1},
		{128, 124, 4},
		{17, 17, 17},
		{9, 6, 3},
		{-4, 6, 2},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, GCD(c.a, c.b), "GCD(%d, %d)", c.a, c.b)
	}
}

func TestGCD_ZeroOperands(t *testing.T) {
	for _, n := range []int64{1, 2, 7, 128, 1 << 40} {
		assert.Equal(t, n, GCD(n, 0), "GCD(%d, 0)", n)
		assert.Equal(t, n, GCD(0, n), "GCD(0, %d)", n)
	}
}

func TestReduce(t *testing.T) {
	f, err := Reduce(124, 128)
	require.NoError(t, err)
	assert.Equal(t, Fraction{Num: 31, Den: 32}, f)

	f, err = Reduce(252, 128)
	require.NoError(t, err)
	assert.Equal(t, Fraction{Num: 63, Den: 32}, f)

	f, err = Reduce(0, 128)
	require.NoError(t, err)
	assert.Equal(t, Fraction{Num: 0, Den: 1}, f)
	assert.True(t, f.IsWhole())
}

func TestReduce_ZeroDenominator(t *testing.T) {
	_, err := Reduce(3, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFraction_String(t *testing.T) {
	assert.Equal(t, "63/32", Fraction{Num: 63, Den: 32}.String())
	assert.Equal(t, "1/2", Fraction{Num: 1, Den: 2}.String())
	assert.Equal(t, "4", Fraction{Num: 4, Den: 1}.String())
}

func TestFraction_IsImproper(t *testing.T) {
	assert.True(t, Fraction{Num: 63, Den: 32}.IsImproper())
	assert.False(t, Fraction{Num: 1, Den: 2}.IsImproper())
	assert.False(t, Fraction{Num: 2, Den: 2}.IsImproper())
	assert.False(t, Fraction{Num: 3, Den: 0}.IsImproper())
}

func TestFraction_IsImproper_WholeNumbers(t *testing.T) {
	assert.False(t, Fraction{Num: 2, Den: 1}.IsImproper())
	assert.False(t, Fraction{Num: 39, Den: 1}.IsImproper())
	assert.True(t, Fraction{Num: 3, Den: 2}.IsImproper())
}
