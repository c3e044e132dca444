// Package catalog - Declarative unit and conversion definitions
// A Definition lists units and the scale/offset rules between them.
// Build feeds it into a conversion graph, units before edges.
package catalog

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"conversion-wiz/internal/errors"
)

// UnitSpec describes one unit
type UnitSpec struct {
	Name         string   `json:"name" yaml:"name"`
	Aliases      []string `json:"aliases" yaml:"aliases"`
	Intermediate bool     `json:"intermediate" yaml:"intermediate"`
}

// ScaleSpec is a rule to = from * factor
type ScaleSpec struct {
	From   string  `json:"from" yaml:"from" validate:"required"`
	To     string  `json:"to" yaml:"to" validate:"required"`
	Factor float64 `json:"factor" yaml:"factor"`
}

// OffsetSpec is a rule to = from + offset
type OffsetSpec struct {
	From   string  `json:"from" yaml:"from" validate:"required"`
	To     string  `json:"to" yaml:"to" validate:"required"`
	Offset float64 `json:"offset" yaml:"offset"`
}

// Definition is a complete catalog
type Definition struct {
	Units   []UnitSpec   `json:"units" yaml:"units" validate:"dive"`
	Scales  []ScaleSpec  `json:"conversions_scale" yaml:"conversions_scale" validate:"dive"`
	Offsets []OffsetSpec `json:"conversions_offset" yaml:"conversions_offset" validate:"dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the structure of the definition.
// Unit names and rates are checked by the graph itself when built.
func (d *Definition) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Internal("validating definition", err)
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, fmt.Sprintf("%s is %s", fe.Namespace(), fe.Tag()))
	}
	return errors.Input("invalid definition: " + strings.Join(problems, "; ")).
		WithContext("problems", problems)
}
