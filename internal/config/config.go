// Package config loads inch settings from an optional YAML file.
package config

import (
	"fmt"
	"time"

	"github.com/corey/inch/internal/domain/measure"
)

// Arithmetic backends.
const (
	BackendDecimal = "decimal" // github.com/shopspring/decimal
	BackendRat     = "rat"     // math/big exact rationals
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the complete inch configuration.
type Config struct {
	Backend     string      `yaml:"backend"`      // "decimal" (default) or "rat"
	Precision   int32       `yaml:"precision"`    // fractional digits kept by decimal division
	Places      int         `yaml:"places"`       // digits after the point in decimal output
	Resolution  int64       `yaml:"resolution"`   // finest fraction denominator, power of two
	DefaultUnit string      `yaml:"default_unit"` // unit for sheet lines without one
	Color       string      `yaml:"color"`        // auto, always, never
	Watch       WatchConfig `yaml:"watch"`

	Source string `yaml:"-"` // file the config was read from, empty for defaults
}

// WatchConfig holds `inch watch` settings.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"` // editors write several times per save
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Backend:     BackendDecimal,
		Precision:   32,
		Places:      measure.DefaultPlaces,
		Resolution:  measure.DefaultResolution,
		DefaultUnit: string(measure.Millimeter),
		Color:       ColorAuto,
		Watch: WatchConfig{
			Debounce: 50 * time.Millisecond,
		},
	}
}

// Unit returns DefaultUnit as a measure.Unit.
func (c *Config) Unit() measure.Unit {
	u, ok := measure.ParseUnit(c.DefaultUnit)
	if !ok {
		return measure.Millimeter
	}
	return u
}

// Validate checks every field and names the first offending key.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendDecimal, BackendRat:
	default:
		return fmt.Errorf("backend: unknown value %q (want %s or %s)", c.Backend, BackendDecimal, BackendRat)
	}
	if c.Precision < 1 {
		return fmt.Errorf("precision: must be positive, got %d", c.Precision)
	}
	if c.Places < 0 || c.Places > 20 {
		return fmt.Errorf("places: must be between 0 and 20, got %d", c.Places)
	}
	if c.Resolution < 2 || c.Resolution > measure.MaxResolution || !measure.IsPowerOfTwo(c.Resolution) {
		return fmt.Errorf("resolution: must be a power of two between 2 and %d, got %d", measure.MaxResolution, c.Resolution)
	}
	if _, ok := measure.ParseUnit(c.DefaultUnit); !ok {
		return fmt.Errorf("default_unit: unknown unit %q", c.DefaultUnit)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color: unknown value %q (want auto, always or never)", c.Color)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce: must not be negative, got %s", c.Watch.Debounce)
	}
	return nil
}
