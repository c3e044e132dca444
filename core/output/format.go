// Package output - Rendering of conversion results and unit listings
package output

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"conversion-wiz/core/conversion"
)

// FullPrecision keeps the shortest exact decimal form of a value
const FullPrecision = -1

// FormatValue renders a value rounded to precision decimal places.
// Trailing zeros are dropped, so 288.1500 renders as 288.15.
func FormatValue(value float64, precision int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'g', -1, 64)
	}
	d := decimal.NewFromFloat(value)
	if precision >= 0 {
		d = d.Round(int32(precision))
	}
	return d.String()
}

// ParseValue parses a user-supplied number
func ParseValue(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

// FormatResult renders "15 C = 288.15 K"
func FormatResult(value float64, from string, result float64, to string, precision int) string {
	return fmt.Sprintf("%s %s = %s %s", FormatValue(value, FullPrecision), from, FormatValue(result, precision), to)
}

// FormatListing renders a numbered unit listing, one tab-indented line per unit
func FormatListing(units []string) []string {
	lines := make([]string, 0, len(units))
	for i, unit := range units {
		lines = append(lines, fmt.Sprintf("\t%d: %s", i+1, unit))
	}
	return lines
}

// FormatPath renders one line per hop, e.g. "Celsius -> Kelvin (+ 273.15)"
func FormatPath(path conversion.Path) []string {
	if path.Len() == 0 {
		return []string{fmt.Sprintf("%s (identity)", path.From)}
	}
	lines := make([]string, 0, path.Len())
	for _, hop := range path.Hops {
		lines = append(lines, fmt.Sprintf("%s -> %s (%s)", hop.From, hop.To, hop.Factor))
	}
	return lines
}
