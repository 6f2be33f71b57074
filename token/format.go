package token

import (
	"math"
	"strconv"
)

// formatTokenizeNumber renders a NUMBER token's literal the way the
// `tokenize` command does: integer-valued floats get one decimal place
// (42.0), everything else gets 15 significant digits, matching the
// original interpreter's `%.1lf` / `%.15g` split.
func formatTokenizeNumber(v float64) string {
	if math.Floor(v) == v {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'g', 15, 64)
}
