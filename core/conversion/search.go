package conversion

import (
	"strconv"

	"go.uber.org/zap"

	"conversion-wiz/internal/errors"
)

// Path finds the fewest-hop conversion path between two tokens
func (g *Graph) Path(from, to string) (Path, error) {
	fromName, ok := g.registry.Resolve(from)
	if !ok {
		return Path{}, errors.UnitNotFound(from)
	}
	toName, ok := g.registry.Resolve(to)
	if !ok {
		return Path{}, errors.UnitNotFound(to)
	}

	if fromName == toName {
		return Path{From: fromName, To: toName}, nil
	}

	key := pathKey(fromName, toName)
	if g.paths != nil {
		if cached, found := g.paths.Get(key); found {
			if p, ok := cached.(Path); ok {
				return p.clone(), nil
			}
		}
	}

	parents := g.search(fromName, toName)
	if _, reached := parents[toName]; !reached {
		return Path{}, errors.ConversionPathNotFound(from, to)
	}

	// Walk target → source, then reverse
	var hops []Hop
	current := toName
	for {
		parent, ok := parents[current]
		if !ok {
			break
		}
		factor, ok := g.edges[parent][current]
		if !ok {
			return Path{}, errors.MissingConversionFactor(parent, current)
		}
		hops = append(hops, Hop{From: parent, To: current, Factor: factor})
		current = parent
	}
	for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
		hops[i], hops[j] = hops[j], hops[i]
	}

	path := Path{From: fromName, To: toName, Hops: hops}
	if g.paths != nil {
		g.paths.SetDefault(key, path.clone())
	}

	g.logger.Debug("resolved conversion path",
		zap.String("from", fromName),
		zap.String("to", toName),
		zap.Int("hops", len(hops)),
	)
	return path, nil
}

// pathKey quotes both names so that no two pairs share a key whatever
// bytes the names contain.
func pathKey(from, to string) string {
	return strconv.Quote(from) + strconv.Quote(to)
}

// search runs a breadth-first search from source and returns the parent of
// every node discovered before target was dequeued. source has no parent.
func (g *Graph) search(source, target string) map[string]string {
	parents := make(map[string]string)
	visited := map[string]bool{source: true}
	queue := []string{source}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == target {
			break
		}
		for _, next := range g.neighbours[current] {
			if visited[next] {
				continue
			}
			visited[next] = true
			parents[next] = current
			queue = append(queue, next)
		}
	}
	return parents
}

func (p Path) clone() Path {
	hops := make([]Hop, len(p.Hops))
	copy(hops, p.Hops)
	p.Hops = hops
	return p
}
