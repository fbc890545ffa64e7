// Package shopspring implements ports.Arithmetic using github.com/shopspring/decimal.
// This is the default backend: base-10 arbitrary precision, with non-terminating
// quotients rounded to a fixed number of fractional digits.
package shopspring

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of fractional digits kept by Div.
// 1/25.4 does not terminate, so some cut-off is unavoidable; 32 digits keeps
// the 1/1024 rounding boundary far away from the cut.
const DefaultPrecision int32 = 32

// Arithmetic implements ports.Arithmetic[decimal.Decimal].
type Arithmetic struct {
	precision int32
}

// New returns a decimal backend dividing to precision fractional digits.
// precision <= 0 selects DefaultPrecision.
func New(precision int32) *Arithmetic {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	return &Arithmetic{precision: precision}
}

// Precision returns the number of fractional digits kept by Div.
func (a *Arithmetic) Precision() int32 {
	return a.precision
}

func (a *Arithmetic) Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative value %q", s)
	}
	return d, nil
}

func (a *Arithmetic) FromInt(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func (a *Arithmetic) Sub(x, y decimal.Decimal) decimal.Decimal {
	return x.Sub(y)
}

func (a *Arithmetic) Mul(x, y decimal.Decimal) decimal.Decimal {
	return x.Mul(y)
}

func (a *Arithmetic) Div(x, y decimal.Decimal) decimal.Decimal {
	return x.DivRound(y, a.precision)
}

// Round uses decimal's half-away-from-zero rounding.
func (a *Arithmetic) Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

func (a *Arithmetic) IsInteger(d decimal.Decimal) bool {
	return d.IsInteger()
}

func (a *Arithmetic) Fixed(d decimal.Decimal, places int) string {
	return d.StringFixed(int32(places))
}

func (a *Arithmetic) Fraction(d decimal.Decimal) (int64, int64, bool) {
	r := d.Rat()
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return 0, 0, false
	}
	return r.Num().Int64(), r.Denom().Int64(), true
}
