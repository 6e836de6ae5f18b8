package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/muesli/reflow/ansi"
)

// FormatResult renders a numeric result the way the display shows it:
// integers without a decimal part, everything else with up to precision
// fractional digits and trailing zeros trimmed. NaN and infinities never
// reach the display as digits.
func FormatResult(v float64, precision int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "Error"
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	s := strconv.FormatFloat(v, 'f', precision, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// truncateHead keeps the tail of s when it exceeds width cells, marking
// the cut with an ellipsis. The display scrolls left as input grows.
func truncateHead(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.PrintableRuneWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && ansi.PrintableRuneWidth(string(runes)) > width-1 {
		runes = runes[1:]
	}
	return "…" + string(runes)
}
