package units

import (
	"conversion-wiz/internal/errors"
)

// Registry owns canonical units and the alias index
type Registry struct {
	// Units indexed by canonical name
	units map[string]*Unit

	// Alias → canonical name
	aliases map[string]string

	// Registration order, used for listings
	order []string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		units:   make(map[string]*Unit),
		aliases: make(map[string]string),
	}
}

// Register adds a unit and all of its aliases.
// Either the unit and every alias are committed, or nothing is.
func (r *Registry) Register(name string, aliases []string, intermediate bool) (*Unit, error) {
	if name == "" {
		return nil, errors.EmptyUnitName()
	}
	if _, exists := r.units[name]; exists {
		return nil, errors.DuplicateUnit(name)
	}

	unit, err := NewUnit(name, aliases, intermediate)
	if err != nil {
		return nil, err
	}

	// Check everything before committing anything
	seen := make(map[string]struct{}, len(unit.aliases))
	for _, alias := range unit.aliases {
		if _, dup := seen[alias]; dup {
			return nil, errors.DuplicateAlias(alias)
		}
		seen[alias] = struct{}{}
		if _, taken := r.aliases[alias]; taken {
			return nil, errors.DuplicateAlias(alias)
		}
	}

	for _, alias := range unit.aliases {
		r.aliases[alias] = name
	}
	r.units[name] = unit
	r.order = append(r.order, name)

	return unit, nil
}

// Resolve translates an alias to its canonical name
func (r *Registry) Resolve(token string) (string, bool) {
	name, ok := r.aliases[token]
	return name, ok
}

// Contains reports whether token resolves to a unit
func (r *Registry) Contains(token string) bool {
	_, ok := r.aliases[token]
	return ok
}

// Lookup returns the unit a token resolves to
func (r *Registry) Lookup(token string) (*Unit, bool) {
	name, ok := r.aliases[token]
	if !ok {
		return nil, false
	}
	return r.units[name], true
}

// Len returns the number of registered units
func (r *Registry) Len() int {
	return len(r.units)
}

// Units returns all units in registration order
func (r *Registry) Units() []*Unit {
	out := make([]*Unit, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.units[name])
	}
	return out
}

// FormatListing returns one display string per non-intermediate unit.
// Registration order; callers should not rely on it.
func (r *Registry) FormatListing() []string {
	out := make([]string, 0, len(r.order))
	for _, name := range r.order {
		unit := r.units[name]
		if unit.intermediate {
			continue
		}
		out = append(out, unit.String())
	}
	return out
}
