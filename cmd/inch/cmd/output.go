package cmd

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/corey/inch/internal/app"
)

// ANSI color codes for terminal output.
const (
	colorReset   = "\033[0m"
	colorBold    = "\033[1m"
	colorCyan    = "\033[36m"
	colorMagenta = "\033[35m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorGray    = "\033[90m"
)

// cell is one table value with its colour.
type cell struct {
	text  string
	color string
}

// table renders rows with columns padded to the widest plain-text cell,
// so ANSI codes never disturb the alignment.
//
//	mm     Fraction   Decimal    Mixed
//	50     63/32 in   1.969 in   1 31/32 in
func table(header []string, rows [][]cell, color bool) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, c := range row {
			if n := utf8.RuneCountInString(c.text); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var sb strings.Builder
	sb.WriteString("  ")
	for i, h := range header {
		sb.WriteString(paint(padRight(h, widths[i], i == len(header)-1), colorBold, color))
		if i < len(header)-1 {
			sb.WriteString("   ")
		}
	}
	sb.WriteString("\n")

	for _, row := range rows {
		sb.WriteString("  ")
		for i, c := range row {
			sb.WriteString(paint(padRight(c.text, widths[i], i == len(row)-1), c.color, color))
			if i < len(row)-1 {
				sb.WriteString("   ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// padRight pads s to width; the last column is left unpadded.
func padRight(s string, width int, last bool) string {
	if last {
		return s
	}
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func paint(s, code string, color bool) string {
	if !color || code == "" {
		return s
	}
	return code + s + colorReset
}

// formatInches formats mm -> in outputs.
// A whole fraction prints as its integer and its Mixed cell is "-".
func formatInches(outputs []app.Output, color bool) string {
	rows := make([][]cell, 0, len(outputs))
	for _, o := range outputs {
		res := o.Inches
		mixed := cell{text: "-", color: colorGray}
		if res.Mixed != nil {
			mixed = cell{text: res.Mixed.String() + " in", color: colorMagenta}
		}
		rows = append(rows, []cell{
			{text: o.Value, color: colorCyan},
			{text: res.Fraction.String() + " in", color: colorGreen},
			{text: res.Decimal + " in"},
			mixed,
		})
	}
	return table([]string{"mm", "Fraction", "Decimal", "Mixed"}, rows, color)
}

// formatMillimeters formats in -> mm outputs.
func formatMillimeters(outputs []app.Output, color bool) string {
	rows := make([][]cell, 0, len(outputs))
	for _, o := range outputs {
		rows = append(rows, []cell{
			{text: o.Value, color: colorCyan},
			{text: o.Millimeters + " mm", color: colorGreen},
		})
	}
	return table([]string{"in", "Millimeters"}, rows, color)
}

// formatReport formats a converted sheet: a header line, then one table per
// direction, then a note about skipped lines.
func formatReport(r *app.Report, stamp string, color bool) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ %s%s  %s%s%s\n",
		boldIf(color), r.Path, resetIf(color), grayIf(color), stamp, resetIf(color)))

	mm, in := splitByUnit(r.Outputs)
	if len(mm) == 0 && len(in) == 0 {
		sb.WriteString("  (no measurements)\n")
	}
	if len(mm) > 0 {
		sb.WriteString(formatInches(mm, color))
	}
	if len(in) > 0 {
		if len(mm) > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(formatMillimeters(in, color))
	}
	if len(r.Skipped) > 0 {
		lines := make([]string, len(r.Skipped))
		for i, n := range r.Skipped {
			lines[i] = fmt.Sprintf("%d", n)
		}
		sb.WriteString(fmt.Sprintf("  %sskipped line %s%s\n",
			yellowIf(color), strings.Join(lines, ", "), resetIf(color)))
	}
	return sb.String()
}

func boldIf(color bool) string   { return pick(color, colorBold) }
func grayIf(color bool) string   { return pick(color, colorGray) }
func yellowIf(color bool) string { return pick(color, colorYellow) }
func resetIf(color bool) string  { return pick(color, colorReset) }

func pick(color bool, code string) string {
	if color {
		return code
	}
	return ""
}
