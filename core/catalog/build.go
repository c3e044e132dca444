package catalog

import (
	"go.uber.org/zap"

	"conversion-wiz/core/conversion"
	"conversion-wiz/internal/errors"
)

// Build creates a graph from a definition. Units are registered before any
// rule; the first failing entry aborts the build.
func Build(def *Definition, logger *zap.Logger, opts ...conversion.Option) (*conversion.Graph, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := conversion.New(append([]conversion.Option{conversion.WithLogger(logger)}, opts...)...)

	for i, u := range def.Units {
		if _, err := g.RegisterUnit(u.Name, u.Aliases, u.Intermediate); err != nil {
			return nil, errors.Wrapf(errors.TypeInput, err, "adding unit #%d (%q)", i+1, u.Name).
				WithContext("index", i)
		}
	}

	for i, s := range def.Scales {
		if err := g.AddScaleEdge(s.From, s.To, s.Factor); err != nil {
			return nil, errors.Wrapf(errors.TypeInput, err, "adding scale conversion #%d (%s -> %s)", i+1, s.From, s.To).
				WithContext("index", i)
		}
	}

	for i, o := range def.Offsets {
		if err := g.AddOffsetEdge(o.From, o.To, o.Offset); err != nil {
			return nil, errors.Wrapf(errors.TypeInput, err, "adding offset conversion #%d (%s -> %s)", i+1, o.From, o.To).
				WithContext("index", i)
		}
	}

	stats := g.Stats()
	logger.Info("built conversion graph",
		zap.Int("units", stats.Units),
		zap.Int("listed", stats.Listed),
		zap.Int("edges", stats.Edges),
	)
	return g, nil
}

// LoadGraph loads a definition file and builds it. An empty path selects the
// built-in catalog.
func LoadGraph(path string, format Format, logger *zap.Logger, opts ...conversion.Option) (*conversion.Graph, error) {
	var (
		def *Definition
		err error
	)
	switch {
	case path == "":
		def = Default()
	case format == "":
		def, err = Load(path)
	default:
		def, err = LoadAs(path, format)
	}
	if err != nil {
		return nil, err
	}
	return Build(def, logger, opts...)
}
