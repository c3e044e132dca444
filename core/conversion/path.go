package conversion

import (
	"strings"
)

// Hop is one directed edge of a conversion path
type Hop struct {
	From   string
	To     string
	Factor Factor
}

// Path is a sequence of hops from a source unit to a target unit.
// An empty path is the identity conversion.
type Path struct {
	From string
	To   string
	Hops []Hop
}

// Apply composes the hops left to right, source to target
func (p Path) Apply(value float64) float64 {
	for _, hop := range p.Hops {
		value = hop.Factor.Apply(value)
	}
	return value
}

// Len returns the hop count
func (p Path) Len() int {
	return len(p.Hops)
}

// Units returns the canonical names along the path, source first
func (p Path) Units() []string {
	if len(p.Hops) == 0 {
		return []string{p.From}
	}
	out := make([]string, 0, len(p.Hops)+1)
	out = append(out, p.Hops[0].From)
	for _, hop := range p.Hops {
		out = append(out, hop.To)
	}
	return out
}

// String renders the path as "A -> B -> C"
func (p Path) String() string {
	return strings.Join(p.Units(), " -> ")
}
