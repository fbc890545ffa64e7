// Package app wires together configuration, the arithmetic backend and the
// converter. Commands talk to an App, never to adapters directly.
package app

import (
	"fmt"
	"log/slog"
	"math/big"
	"os"

	"github.com/corey/inch/internal/adapters/bigrat"
	"github.com/corey/inch/internal/adapters/shopspring"
	"github.com/corey/inch/internal/config"
	"github.com/corey/inch/internal/domain/input"
	"github.com/corey/inch/internal/domain/measure"
	"github.com/shopspring/decimal"
)

// Output is the rendering-agnostic result for one entry. Exactly one of
// Inches (mm input) and Millimeters (inch input) is set.
type Output struct {
	Value       string              `json:"value"`
	Unit        measure.Unit        `json:"unit"`
	Line        int                 `json:"line,omitempty"`
	Inches      *measure.InchResult `json:"inches,omitempty"`
	Millimeters string              `json:"millimeters,omitempty"`
}

// Report is a converted measurement sheet.
type Report struct {
	Path    string   `json:"path"`
	Outputs []Output `json:"outputs"`
	Skipped []int    `json:"skipped,omitempty"` // sheet lines that were not measurements
}

// App is the top-level container wiring all components together.
type App struct {
	Config    *config.Config
	Converter measure.Service

	log *slog.Logger
}

// New creates an App for cfg. log may be nil.
func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	if cfg == nil {
		cfg = config.Defaults()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	conv, err := NewConverter(cfg)
	if err != nil {
		return nil, err
	}
	log.Debug("converter ready", "backend", cfg.Backend, "places", cfg.Places, "resolution", cfg.Resolution)

	return &App{
		Config:    cfg,
		Converter: conv,
		log:       log,
	}, nil
}

// NewConverter builds the converter for cfg.Backend.
func NewConverter(cfg *config.Config) (measure.Service, error) {
	opts := measure.Options{
		Places:     cfg.Places,
		Resolution: cfg.Resolution,
	}
	switch cfg.Backend {
	case config.BackendRat:
		c, err := measure.New[*big.Rat](bigrat.New(), opts)
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.BackendDecimal, "":
		c, err := measure.New[decimal.Decimal](shopspring.New(cfg.Precision), opts)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// Convert converts one validated entry in the direction its unit implies.
func (a *App) Convert(e input.Entry) (Output, error) {
	out := Output{Value: e.Value, Unit: e.Unit, Line: e.Line}

	switch e.Unit {
	case measure.Millimeter:
		res, err := a.Converter.Inches(e.Value)
		if err != nil {
			return Output{}, err
		}
		out.Inches = &res
	case measure.Inch:
		mm, err := a.Converter.MillimetersDecimal(e.Value)
		if err != nil {
			return Output{}, err
		}
		out.Millimeters = mm
	default:
		return Output{}, fmt.Errorf("unit %q: %w", e.Unit, measure.ErrInvalidArgument)
	}
	return out, nil
}

// ConvertAll converts entries in order, stopping at the first error.
func (a *App) ConvertAll(entries []input.Entry) ([]Output, error) {
	outputs := make([]Output, 0, len(entries))
	for _, e := range entries {
		out, err := a.Convert(e)
		if err != nil {
			if e.Line > 0 {
				return nil, fmt.Errorf("line %d: %w", e.Line, err)
			}
			return nil, err
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

// ConvertSheet reads and converts the measurement sheet at path.
func (a *App) ConvertSheet(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet, err := input.ParseSheet(f, a.Config.Unit())
	if err != nil {
		return nil, err
	}
	for _, n := range sheet.Skipped {
		a.log.Debug("line suppressed", "path", path, "line", n)
	}

	outputs, err := a.ConvertAll(sheet.Entries)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Report{Path: path, Outputs: outputs, Skipped: sheet.Skipped}, nil
}
