package measure

import "fmt"

// Fraction is a non-negative rational num/den with den > 0.
// Fractions produced by this package are always in lowest terms.
type Fraction struct {
	Num int64 `json:"numerator"`
	Den int64 `json:"denominator"`
}

// GCD returns the greatest common divisor of a and b (Euclid).
// GCD(a, 0) == a and GCD(0, b) == b. Negative inputs yield a non-negative result.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// Reduce returns num/den in lowest terms. den must be nonzero.
// A zero numerator reduces to 0/1.
func Reduce(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, fmt.Errorf("reduce %d/0: %w", num, ErrInvalidArgument)
	}
	if num == 0 {
		return Fraction{Num: 0, Den: 1}, nil
	}
	g := GCD(num, den)
	return Fraction{Num: num / g, Den: den / g}, nil
}

// IsWhole reports whether the fraction is an integer.
func (f Fraction) IsWhole() bool {
	return f.Den == 1
}

// IsImproper reports whether the fraction is greater than one with a
// nontrivial remainder, i.e. whether it has a mixed-number form worth showing.
func (f Fraction) IsImproper() bool {
	return f.Den > 1 && f.Num > f.Den
}

// Mixed converts the fraction to its mixed-number form.
func (f Fraction) Mixed() (Mixed, error) {
	return ToMixed(f.Num, f.Den)
}

// String renders "num/den", or just "num" for whole numbers.
func (f Fraction) String() string {
	if f.IsWhole() {
		return fmt.Sprintf("%d", f.Num)
	}
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}
