// Package units - Unit identities and alias resolution.
// Every alias maps to exactly one canonical unit name.
package units

import (
	"strings"

	"conversion-wiz/internal/errors"
)

// Unit is a named measurement unit. Immutable once created.
type Unit struct {
	name         string
	aliases      []string
	intermediate bool
}

// NewUnit creates a unit, appending the canonical name to its aliases if absent
func NewUnit(name string, aliases []string, intermediate bool) (*Unit, error) {
	if name == "" {
		return nil, errors.EmptyUnitName()
	}

	hasName := false
	for _, alias := range aliases {
		if alias == "" {
			return nil, errors.EmptyAlias(name)
		}
		if alias == name {
			hasName = true
		}
	}

	all := make([]string, 0, len(aliases)+1)
	all = append(all, aliases...)
	if !hasName {
		all = append(all, name)
	}

	return &Unit{
		name:         name,
		aliases:      all,
		intermediate: intermediate,
	}, nil
}

// Name returns the canonical name
func (u *Unit) Name() string {
	return u.name
}

// Aliases returns every alias, canonical name included
func (u *Unit) Aliases() []string {
	out := make([]string, len(u.aliases))
	copy(out, u.aliases)
	return out
}

// Intermediate reports whether the unit is hidden from listings
func (u *Unit) Intermediate() bool {
	return u.intermediate
}

// String returns the display form, e.g. "Kilojoule (kJ, kJoule)"
func (u *Unit) String() string {
	var extra []string
	for _, alias := range u.aliases {
		if alias != u.name {
			extra = append(extra, alias)
		}
	}
	if len(extra) == 0 {
		return u.name
	}
	return u.name + " (" + strings.Join(extra, ", ") + ")"
}
