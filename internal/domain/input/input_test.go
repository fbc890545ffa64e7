package input

import (
	"strings"
	"testing"

	"github.com/corey/inch/internal/domain/measure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNumber(t *testing.T) {
	valid := []string{"0", "12", "12.7", "12.", ".5", "1e3", "2.5E-1", " 50 ", "1E+2"}
	for _, s := range valid {
		assert.True(t, IsNumber(s), "%q should be a number", s)
	}

	invalid := []string{"", " ", ".", "-1", "+1", "1e", "1.2.3", "abc", "12mm", "1/2", "0x10", "NaN", "Infinity"}
	for _, s := range invalid {
		assert.False(t, IsNumber(s), "%q should not be a number", s)
	}
}

func TestIsNumber_ExponentLimit(t *testing.T) {
	for _, s := range []string{"1e999", "1E-999", ".5e+12"} {
		assert.True(t, IsNumber(s), "%q should be a number", s)
	}
	for _, s := range []string{"1e1000", "1e2000000", "1e99999999999", "2.5e-0001"} {
		assert.False(t, IsNumber(s), "%q should not be a number", s)
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"12":     "12",
		"12.":    "12",
		"12.70":  "12.70",
		".5":     "0.5",
		".5e2":   "0.5e2",
		"12.e3":  "12e3",
		"  25.4": "25.4",
	}
	for in, want := range cases {
		got, ok := Normalize(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := Normalize("1e")
	assert.False(t, ok)
}

func TestParseValue_SuppressesInvalid(t *testing.T) {
	e, ok := ParseValue("12.7", measure.Millimeter)
	require.True(t, ok)
	assert.Equal(t, Entry{Value: "12.7", Unit: measure.Millimeter}, e)

	_, ok = ParseValue("", measure.Millimeter)
	assert.False(t, ok)
	_, ok = ParseValue("twelve", measure.Inch)
	assert.False(t, ok)
}

func TestParseLine(t *testing.T) {
	cases := []struct {
		line string
		want Entry
	}{
		{"50", Entry{Value: "50", Unit: measure.Millimeter}},
		{"12.7 mm", Entry{Value: "12.7", Unit: measure.Millimeter}},
		{"12.7mm", Entry{Value: "12.7", Unit: measure.Millimeter}},
		{"1 in", Entry{Value: "1", Unit: measure.Inch}},
		{`2"`, Entry{Value: "2", Unit: measure.Inch}},
		{"  .25 inches  # shelf depth", Entry{Value: "0.25", Unit: measure.Inch}},
	}
	for _, c := range cases {
		got, ok := ParseLine(c.line, measure.Millimeter)
		require.True(t, ok, c.line)
		assert.Equal(t, c.want, got, c.line)
	}
}

func TestParseLine_Suppressed(t *testing.T) {
	for _, line := range []string{"", "   ", "# heading", "12 cm", "abc", "1.2.3", "-4 mm", "1e99999 mm"} {
		_, ok := ParseLine(line, measure.Millimeter)
		assert.False(t, ok, "%q", line)
	}
}

func TestParseSheet(t *testing.T) {
	src := strings.Join([]string{
		"# cabinet",
		"50",
		"",
		"1 in",
		"oops",
		"12.7 mm # door gap",
	}, "\n")

	sheet, err := ParseSheet(strings.NewReader(src), measure.Millimeter)
	require.NoError(t, err)
	require.Len(t, sheet.Entries, 3)
	assert.Equal(t, Entry{Value: "50", Unit: measure.Millimeter, Line: 2}, sheet.Entries[0])
	assert.Equal(t, Entry{Value: "1", Unit: measure.Inch, Line: 4}, sheet.Entries[1])
	assert.Equal(t, Entry{Value: "12.7", Unit: measure.Millimeter, Line: 6}, sheet.Entries[2])
	assert.Equal(t, []int{5}, sheet.Skipped)
}
