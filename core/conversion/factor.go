// Package conversion - Unit conversion graph
// Units are nodes, scale/offset rules are directed edges stored in both directions.
// Conversions between units without a direct rule follow the fewest-hop path.
package conversion

import (
	"fmt"
	"math"

	"conversion-wiz/internal/errors"
)

// Factor is the affine rule to = from*Scale + Offset along one directed edge
type Factor struct {
	Scale  float64
	Offset float64
}

// NewFactor validates a rule. Scale must be finite with a finite non-zero
// inverse, and a rule carries either a non-unity scale or a non-zero offset,
// never both.
func NewFactor(scale, offset float64) (Factor, error) {
	if !invertible(scale) {
		return Factor{}, errors.ConversionRateZero().WithContext("scale", scale)
	}
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return Factor{}, errors.Newf(errors.TypeInput, "conversion offset must be finite, got %g", offset).
			WithContext("offset", offset)
	}
	if scale != 1.0 && offset != 0.0 {
		return Factor{}, errors.ConversionRateBothValues(scale, offset)
	}
	return Factor{Scale: scale, Offset: offset}, nil
}

// invertible reports whether scale and 1/scale are both finite and non-zero.
// Subnormal scales fail here since their inverse overflows.
func invertible(scale float64) bool {
	if scale == 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return false
	}
	inv := 1.0 / scale
	return inv != 0 && !math.IsInf(inv, 0)
}

// Apply converts a value along this edge
func (f Factor) Apply(value float64) float64 {
	return value*f.Scale + f.Offset
}

// Inverse returns the rule for the opposite direction.
// Exact only for single-axis rules, which NewFactor guarantees.
func (f Factor) Inverse() Factor {
	return Factor{Scale: 1.0 / f.Scale, Offset: -f.Offset}
}

// IsOffset reports whether the rule only shifts the value
func (f Factor) IsOffset() bool {
	return f.Scale == 1.0 && f.Offset != 0.0
}

// String renders the rule, e.g. "x 1000" or "+ 273.15"
func (f Factor) String() string {
	if f.IsOffset() {
		if f.Offset < 0 {
			return fmt.Sprintf("- %g", -f.Offset)
		}
		return fmt.Sprintf("+ %g", f.Offset)
	}
	return fmt.Sprintf("x %g", f.Scale)
}
