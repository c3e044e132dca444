package conversion

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"conversion-wiz/core/units"
	"conversion-wiz/internal/errors"
)

// Graph is the conversion graph. It owns the unit registry and the edge table.
//
// A Graph is not safe for concurrent use. Building (RegisterUnit, AddEdge) and
// querying (Convert, Path) may be interleaved by a single owner; every query
// sees all edges added before it.
type Graph struct {
	registry *units.Registry

	// edges[from][to] is the rule for the directed hop from → to.
	// Symmetric: an entry exists iff its inverse exists.
	edges map[string]map[string]Factor

	// Neighbour insertion order, so search is reproducible for a given build
	neighbours map[string][]string

	// Resolved paths keyed by canonical pair; nil when disabled
	paths *gocache.Cache

	logger *zap.Logger
}

// Option configures a Graph
type Option func(*Graph)

// WithLogger sets the logger used for build and search diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(g *Graph) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithPathCache memoizes resolved paths. A ttl <= 0 keeps entries until the
// next edge insertion.
func WithPathCache(ttl time.Duration) Option {
	return func(g *Graph) {
		if ttl <= 0 {
			ttl = gocache.NoExpiration
		}
		g.paths = gocache.New(ttl, 0)
	}
}

// New creates an empty graph
func New(opts ...Option) *Graph {
	g := &Graph{
		registry:   units.NewRegistry(),
		edges:      make(map[string]map[string]Factor),
		neighbours: make(map[string][]string),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// RegisterUnit adds a unit with its aliases
func (g *Graph) RegisterUnit(name string, aliases []string, intermediate bool) (*units.Unit, error) {
	unit, err := g.registry.Register(name, aliases, intermediate)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("registered unit",
		zap.String("unit", name),
		zap.Strings("aliases", unit.Aliases()),
		zap.Bool("intermediate", intermediate),
	)
	return unit, nil
}

// AddEdge adds the rule from → to and its inverse.
// An existing rule between the same pair is overwritten.
func (g *Graph) AddEdge(from, to string, scale, offset float64) error {
	factor, err := NewFactor(scale, offset)
	if err != nil {
		return err
	}

	fromName, ok := g.registry.Resolve(from)
	if !ok {
		return errors.UnitNotFound(from)
	}
	toName, ok := g.registry.Resolve(to)
	if !ok {
		return errors.UnitNotFound(to)
	}

	g.link(fromName, toName, factor)
	g.link(toName, fromName, factor.Inverse())

	if g.paths != nil {
		g.paths.Flush()
	}

	g.logger.Debug("added conversion",
		zap.String("from", fromName),
		zap.String("to", toName),
		zap.Float64("scale", scale),
		zap.Float64("offset", offset),
	)
	return nil
}

// AddScaleEdge adds a pure scale rule
func (g *Graph) AddScaleEdge(from, to string, scale float64) error {
	return g.AddEdge(from, to, scale, 0.0)
}

// AddOffsetEdge adds a pure offset rule
func (g *Graph) AddOffsetEdge(from, to string, offset float64) error {
	return g.AddEdge(from, to, 1.0, offset)
}

func (g *Graph) link(from, to string, factor Factor) {
	adj, ok := g.edges[from]
	if !ok {
		adj = make(map[string]Factor)
		g.edges[from] = adj
	}
	if _, exists := adj[to]; !exists {
		g.neighbours[from] = append(g.neighbours[from], to)
	}
	adj[to] = factor
}

// Convert converts value from one unit to another
func (g *Graph) Convert(from, to string, value float64) (float64, error) {
	path, err := g.Path(from, to)
	if err != nil {
		return 0, err
	}
	return path.Apply(value), nil
}

// ContainsUnit reports whether token names a registered unit or alias
func (g *Graph) ContainsUnit(token string) bool {
	return g.registry.Contains(token)
}

// Resolve translates a token to its canonical unit name
func (g *Graph) Resolve(token string) (string, bool) {
	return g.registry.Resolve(token)
}

// ListUnits returns display strings for all non-intermediate units
func (g *Graph) ListUnits() []string {
	return g.registry.FormatListing()
}

// UnitsFormatted is an alias of ListUnits
func (g *Graph) UnitsFormatted() []string {
	return g.ListUnits()
}

// Units returns every registered unit, intermediate ones included
func (g *Graph) Units() []*units.Unit {
	return g.registry.Units()
}

// Factor returns the rule for a direct hop between two tokens
func (g *Graph) Factor(from, to string) (Factor, bool) {
	fromName, ok := g.registry.Resolve(from)
	if !ok {
		return Factor{}, false
	}
	toName, ok := g.registry.Resolve(to)
	if !ok {
		return Factor{}, false
	}
	f, ok := g.edges[fromName][toName]
	return f, ok
}

// Stats summarizes graph size
type Stats struct {
	Units  int // all registered units
	Listed int // units shown in listings
	Edges  int // directed edges, inverses included
}

// Stats returns graph size counters
func (g *Graph) Stats() Stats {
	s := Stats{
		Units:  g.registry.Len(),
		Listed: len(g.registry.FormatListing()),
	}
	for _, adj := range g.edges {
		s.Edges += len(adj)
	}
	return s
}
