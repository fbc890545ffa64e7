// Package input validates raw user input before it reaches the converter.
//
// Invalid input is never an error here: it is suppressed. A blank field, a
// half-typed "1e" or a stray word simply produces no entry, the same way an
// empty text box produces no result.
package input

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/corey/inch/internal/domain/measure"
)

// numberRe matches an unsigned decimal with optional fraction and exponent.
// The exponent is capped at three digits so no accepted value expands past
// what the arithmetic backends can hold.
// Groups: integer part, fraction digits, fraction digits of a leading-dot form, exponent.
var numberRe = regexp.MustCompile(`^(?:(\d+)(?:\.(\d*))?|\.(\d+))([eE][+-]?\d{1,3})?$`)

// lineRe splits a sheet line into a numeric prefix and an optional unit.
var lineRe = regexp.MustCompile(`^((?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d{1,3})?)\s*(.*)$`)

// Entry is one validated measurement.
type Entry struct {
	Value string       `json:"value"`
	Unit  measure.Unit `json:"unit"`
	Line  int          `json:"line,omitempty"` // 1-based line in a sheet, 0 for arguments
}

// Sheet is the result of reading a measurement file.
type Sheet struct {
	Entries []Entry
	Skipped []int // line numbers that held something other than a measurement
}

// IsNumber reports whether s (surrounding space ignored) is a syntactically
// valid unsigned decimal: "12", "12.", ".5", "1e3", "2.5E-1".
func IsNumber(s string) bool {
	return numberRe.MatchString(strings.TrimSpace(s))
}

// Normalize returns s in the canonical form every arithmetic backend parses:
// surrounding space trimmed, "12." -> "12", ".5" -> "0.5".
// ok is false when s is not a number.
func Normalize(s string) (string, bool) {
	s = strings.TrimSpace(s)
	m := numberRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	intPart, fracPart, exp := m[1], m[2], m[4]
	if m[3] != "" {
		intPart, fracPart = "0", m[3]
	}
	if fracPart == "" {
		return intPart + exp, true
	}
	return intPart + "." + fracPart + exp, true
}

// ParseValue validates a single value typed for unit u.
func ParseValue(s string, u measure.Unit) (Entry, bool) {
	v, ok := Normalize(s)
	if !ok {
		return Entry{}, false
	}
	return Entry{Value: v, Unit: u}, true
}

// ParseLine parses a sheet line of the form "<number> [unit]", e.g. "12.7 mm",
// `2"` or "50". Lines without a unit use def. Text after '#' is a comment.
// ok is false for blank lines, comments and anything that isn't a measurement.
func ParseLine(line string, def measure.Unit) (Entry, bool) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return Entry{}, false
	}

	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}

	unit := def
	if rest := strings.TrimSpace(m[2]); rest != "" {
		u, ok := measure.ParseUnit(rest)
		if !ok {
			return Entry{}, false
		}
		unit = u
	}
	return ParseValue(m[1], unit)
}

// ParseSheet reads every line of r. Blank and comment lines are ignored;
// other lines that don't parse are listed in Sheet.Skipped.
func ParseSheet(r io.Reader, def measure.Unit) (*Sheet, error) {
	sheet := &Sheet{}
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		e, ok := ParseLine(line, def)
		if !ok {
			if isContent(line) {
				sheet.Skipped = append(sheet.Skipped, n)
			}
			continue
		}
		e.Line = n
		sheet.Entries = append(sheet.Entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}
	return sheet, nil
}

// isContent reports whether line holds anything besides space and comments.
func isContent(line string) bool {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line) != ""
}
