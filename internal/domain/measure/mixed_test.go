package measure

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMixed(t *testing.T) {
	cases := []struct {
		num, den int64
		kind     MixedKind
		want     string
	}{
		{9, 2, MixedNumber, "4 1/2"},
		{4, 2, MixedInteger, "2"},
		{5, 1, MixedInteger, "5"},
		{63, 32, MixedNumber, "1 31/32"},
		{6, 4, MixedNumber, "1 1/2"},
		{1, 2, MixedFraction, "1/2"},
		{2, 8, MixedFraction, "1/4"},
		{0, 5, MixedInteger, "0"},
		{5039, 128, MixedNumber, "39 47/128"},
	}
	for _, c := range cases {
		m, err := ToMixed(c.num, c.den)
		require.NoError(t, err, "%d/%d", c.num, c.den)
		assert.Equal(t, c.kind, m.Kind, "%d/%d", c.num, c.den)
		assert.Equal(t, c.want, m.String(), "%d/%d", c.num, c.den)
	}
}

func TestToMixed_ReducesRemainder(t *testing.T) {
	m, err := ToMixed(10, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(2), m.Whole)
	assert.Equal(t, Fraction{Num: 1, Den: 2}, m.Frac)
}

func TestToMixed_ZeroDenominator(t *testing.T) {
	for _, n := range []int64{0, 1, 9, 128, -3} {
		_, err := ToMixed(n, 0)
		assert.ErrorIs(t, err, ErrInvalidArgument, "n=%d", n)
	}
}

func TestMixed_MarshalJSON(t *testing.T) {
	m, err := ToMixed(63, 32)
	require.NoError(t, err)
	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `"1 31/32"`, string(b))
}

func TestMixedKind_String(t *testing.T) {
	assert.Equal(t, "integer", MixedInteger.String())
	assert.Equal(t, "fraction", MixedFraction.String())
	assert.Equal(t, "mixed", MixedNumber.String())
	assert.Equal(t, "unknown", MixedKind(9).String())
}
