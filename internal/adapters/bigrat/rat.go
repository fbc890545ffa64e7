// Package bigrat implements ports.Arithmetic on exact rationals (math/big.Rat).
// Unlike the decimal backend, division never rounds: 50/25.4 is held as 250/127.
package bigrat

import (
	"fmt"
	"math/big"
	"strings"
)

// Arithmetic implements ports.Arithmetic[*big.Rat]. It is stateless.
type Arithmetic struct{}

// New returns a rational backend.
func New() *Arithmetic {
	return &Arithmetic{}
}

// Parse accepts decimal notation only ("12.7", "1e3"); big.Rat's "a/b" form
// is rejected so both backends agree on what a number is.
func (Arithmetic) Parse(s string) (*big.Rat, error) {
	if strings.ContainsRune(s, '/') {
		return nil, fmt.Errorf("not a decimal: %q", s)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("not a decimal: %q", s)
	}
	if r.Sign() < 0 {
		return nil, fmt.Errorf("negative value %q", s)
	}
	return r, nil
}

func (Arithmetic) FromInt(n int64) *big.Rat {
	return new(big.Rat).SetInt64(n)
}

func (Arithmetic) Sub(x, y *big.Rat) *big.Rat {
	return new(big.Rat).Sub(x, y)
}

func (Arithmetic) Mul(x, y *big.Rat) *big.Rat {
	return new(big.Rat).Mul(x, y)
}

func (Arithmetic) Div(x, y *big.Rat) *big.Rat {
	return new(big.Rat).Quo(x, y)
}

// Round rounds to the nearest integer, halves away from zero.
func (Arithmetic) Round(r *big.Rat) *big.Rat {
	num := new(big.Int).Abs(r.Num())
	q, m := new(big.Int).QuoRem(num, r.Denom(), new(big.Int))
	// 2m >= den means the fractional part is at least one half.
	if m.Lsh(m, 1).Cmp(r.Denom()) >= 0 {
		q.Add(q, big.NewInt(1))
	}
	if r.Sign() < 0 {
		q.Neg(q)
	}
	return new(big.Rat).SetInt(q)
}

func (Arithmetic) IsInteger(r *big.Rat) bool {
	return r.IsInt()
}

// Fixed formats with FloatString (halves away from zero) and drops the sign
// of values that round to zero, matching the decimal backend.
func (Arithmetic) Fixed(r *big.Rat, places int) string {
	s := r.FloatString(places)
	if strings.HasPrefix(s, "-") && strings.Trim(s, "-0.") == "" {
		return s[1:]
	}
	return s
}

func (Arithmetic) Fraction(r *big.Rat) (int64, int64, bool) {
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return 0, 0, false
	}
	return r.Num().Int64(), r.Denom().Int64(), true
}
