package measure

import (
	"encoding/json"
	"fmt"
)

// MixedKind tags which parts of a Mixed are present.
type MixedKind int

const (
	// MixedInteger is a plain integer: "2".
	MixedInteger MixedKind = iota
	// MixedFraction is a bare proper fraction: "1/2".
	MixedFraction
	// MixedNumber is an integer plus a proper fraction: "4 1/2".
	MixedNumber
)

// String returns the kind name.
func (k MixedKind) String() string {
	switch k {
	case MixedInteger:
		return "integer"
	case MixedFraction:
		return "fraction"
	case MixedNumber:
		return "mixed"
	default:
		return "unknown"
	}
}

// Mixed is a number split into a whole part and a proper fraction.
// Whole is meaningful for MixedInteger and MixedNumber, Frac for
// MixedFraction and MixedNumber.
type Mixed struct {
	Kind  MixedKind
	Whole int64
	Frac  Fraction
}

// ToMixed splits num/den into whole and proper-fraction parts.
//
//	ToMixed(9, 2)  -> "4 1/2"
//	ToMixed(4, 2)  -> "2"
//	ToMixed(1, 2)  -> "1/2"
//
// A zero den is a contract violation and fails with ErrInvalidArgument.
func ToMixed(num, den int64) (Mixed, error) {
	if den == 0 {
		return Mixed{}, fmt.Errorf("mixed number %d/0: %w", num, ErrInvalidArgument)
	}
	if den == 1 {
		return Mixed{Kind: MixedInteger, Whole: num}, nil
	}

	quotient := num / den
	remainder := num % den
	if remainder == 0 {
		return Mixed{Kind: MixedInteger, Whole: quotient}, nil
	}

	g := GCD(remainder, den)
	frac := Fraction{Num: remainder / g, Den: den / g}
	if quotient == 0 {
		return Mixed{Kind: MixedFraction, Frac: frac}, nil
	}
	return Mixed{Kind: MixedNumber, Whole: quotient, Frac: frac}, nil
}

// String renders the mixed number, e.g. "1 31/32".
func (m Mixed) String() string {
	switch m.Kind {
	case MixedFraction:
		return m.Frac.String()
	case MixedNumber:
		return fmt.Sprintf("%d %s", m.Whole, m.Frac.String())
	default:
		return fmt.Sprintf("%d", m.Whole)
	}
}

// MarshalJSON encodes the mixed number as its display string.
func (m Mixed) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}
