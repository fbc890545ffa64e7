// Package ports defines the interfaces (contracts) that adapters must implement.
// Domain logic depends only on these interfaces, never on concrete
// implementations: the converter never imports a decimal library directly.
package ports

// Arithmetic is the arbitrary-precision number capability the converter runs on.
// D is the adapter's value type (decimal.Decimal, *big.Rat, ...). Values are
// treated as immutable: no method may modify its arguments.
//
// Implementations must never route a value through float64. Every operation
// is base-10 exact, except Div which may round to the adapter's configured
// precision when the quotient does not terminate.
type Arithmetic[D any] interface {
	// Parse constructs a value from a decimal string such as "12.7" or "1e3".
	// Returns an error if s is not a valid unsigned decimal.
	Parse(s string) (D, error)

	// FromInt constructs a value from an integer.
	FromInt(n int64) D

	// Sub returns a - b.
	Sub(a, b D) D

	// Mul returns a * b.
	Mul(a, b D) D

	// Div returns a / b. b is never zero (the converter only divides by constants).
	Div(a, b D) D

	// Round returns d rounded to the nearest integer, halves away from zero.
	Round(d D) D

	// IsInteger reports whether d has no fractional part.
	IsInteger(d D) bool

	// Fixed formats d with exactly places digits after the decimal point,
	// rounding halves away from zero and keeping trailing zeros.
	Fixed(d D, places int) string

	// Fraction decomposes d into num/den in lowest terms with den > 0.
	// ok is false when either part does not fit in an int64.
	Fraction(d D) (num, den int64, ok bool)
}
