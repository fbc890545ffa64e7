package measure

import (
	"fmt"

	"github.com/corey/inch/internal/ports"
)

const (
	// DefaultPlaces is the number of decimal places in formatted output.
	DefaultPlaces = 3

	// DefaultResolution is the finest fraction the converter reports: 1/128 inch.
	DefaultResolution int64 = 128

	// MaxResolution bounds Options.Resolution.
	MaxResolution int64 = 1024
)

// Options tunes a Converter. Start from DefaultOptions: Places is taken
// literally, so 0 means whole numbers only. A zero Resolution selects 128.
type Options struct {
	Places     int   // digits after the decimal point
	Resolution int64 // fraction denominator cap, a power of two
}

// DefaultOptions returns 3 decimal places and 1/128 inch fractions.
func DefaultOptions() Options {
	return Options{Places: DefaultPlaces, Resolution: DefaultResolution}
}

// Service is the conversion surface the application layer depends on.
// *Converter[D] implements it for every adapter type D.
type Service interface {
	Inches(mm string) (InchResult, error)
	MillimetersDecimal(in string) (string, error)
}

// InchResult is the rendering-agnostic outcome of a mm -> in conversion.
type InchResult struct {
	Millimeters string   `json:"millimeters"`
	Decimal     string   `json:"decimal"`
	Fraction    Fraction `json:"fraction"`
	// Mixed is set only when the fraction exceeds one with a remainder;
	// whole results never carry one.
	Mixed *Mixed `json:"mixed,omitempty"`
	// Deviation is fraction minus exact value, in inches.
	Deviation string `json:"deviation"`
}

// HasFraction reports whether the result carries a non-whole fraction.
func (r InchResult) HasFraction() bool {
	return !r.Fraction.IsWhole()
}

// Converter performs mm/in conversions on adapter type D.
// It is immutable after New and safe for concurrent use.
type Converter[D any] struct {
	arith      ports.Arithmetic[D]
	mmPerInch  D
	scale      D
	resolution int64
	places     int
}

// New returns a Converter backed by arith.
func New[D any](arith ports.Arithmetic[D], opts Options) (*Converter[D], error) {
	if opts.Resolution == 0 {
		opts.Resolution = DefaultResolution
	}
	if opts.Places < 0 {
		return nil, fmt.Errorf("places %d: %w", opts.Places, ErrInvalidArgument)
	}
	if !IsPowerOfTwo(opts.Resolution) || opts.Resolution < 2 || opts.Resolution > MaxResolution {
		return nil, fmt.Errorf("resolution %d must be a power of two in [2, %d]: %w",
			opts.Resolution, MaxResolution, ErrInvalidArgument)
	}

	return &Converter[D]{
		arith:      arith,
		mmPerInch:  arith.Div(arith.FromInt(mmPerInchNum), arith.FromInt(mmPerInchDen)),
		scale:      arith.FromInt(opts.Resolution),
		resolution: opts.Resolution,
		places:     opts.Places,
	}, nil
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int64) bool {
	return n > 0 && n&(n-1) == 0
}

// Resolution returns the fraction denominator cap.
func (c *Converter[D]) Resolution() int64 {
	return c.resolution
}

func (c *Converter[D]) parse(s string) (D, error) {
	d, err := c.arith.Parse(s)
	if err != nil {
		return d, fmt.Errorf("%q: %w", s, ErrInvalidNumber)
	}
	return d, nil
}

// InchesDecimal converts millimeters to inches, formatted to fixed places.
func (c *Converter[D]) InchesDecimal(mm string) (string, error) {
	v, err := c.parse(mm)
	if err != nil {
		return "", err
	}
	return c.arith.Fixed(c.arith.Div(v, c.mmPerInch), c.places), nil
}

// MillimetersDecimal converts inches to millimeters, formatted to fixed places.
func (c *Converter[D]) MillimetersDecimal(in string) (string, error) {
	v, err := c.parse(in)
	if err != nil {
		return "", err
	}
	return c.arith.Fixed(c.arith.Mul(v, c.mmPerInch), c.places), nil
}

// InchFraction converts millimeters to an inch fraction in lowest terms.
// Exact whole inches come back as n/1. Anything else is rounded to the
// nearest 1/resolution inch (halves away from zero) and reduced; a value
// that rounds onto an integer also comes back as n/1.
func (c *Converter[D]) InchFraction(mm string) (Fraction, error) {
	v, err := c.parse(mm)
	if err != nil {
		return Fraction{}, err
	}
	frac, _, err := c.fraction(c.arith.Div(v, c.mmPerInch))
	if err != nil {
		return Fraction{}, fmt.Errorf("%q mm: %w", mm, err)
	}
	return frac, nil
}

// Inches runs the full mm -> in conversion: decimal, fraction, mixed number.
func (c *Converter[D]) Inches(mm string) (InchResult, error) {
	v, err := c.parse(mm)
	if err != nil {
		return InchResult{}, err
	}
	raw := c.arith.Div(v, c.mmPerInch)

	frac, approx, err := c.fraction(raw)
	if err != nil {
		return InchResult{}, fmt.Errorf("%q mm: %w", mm, err)
	}

	res := InchResult{
		Millimeters: mm,
		Decimal:     c.arith.Fixed(raw, c.places),
		Fraction:    frac,
		Deviation:   c.arith.Fixed(c.arith.Sub(approx, raw), c.places+1),
	}
	if frac.IsImproper() {
		m, err := frac.Mixed()
		if err != nil {
			return InchResult{}, err
		}
		res.Mixed = &m
	}
	return res, nil
}

// fraction returns raw as a reduced fraction plus the value that fraction
// stands for (raw itself when raw is whole).
func (c *Converter[D]) fraction(raw D) (Fraction, D, error) {
	if c.arith.IsInteger(raw) {
		n, _, ok := c.arith.Fraction(raw)
		if !ok {
			return Fraction{}, raw, fmt.Errorf("whole inches: %w", ErrOutOfRange)
		}
		return Fraction{Num: n, Den: 1}, raw, nil
	}

	scaled := c.arith.Round(c.arith.Mul(raw, c.scale))
	n, _, ok := c.arith.Fraction(scaled)
	if !ok {
		return Fraction{}, raw, fmt.Errorf("numerator over 1/%d in: %w", c.resolution, ErrOutOfRange)
	}

	frac, err := Reduce(n, c.resolution)
	if err != nil {
		return Fraction{}, raw, err
	}
	return frac, c.arith.Div(scaled, c.scale), nil
}
