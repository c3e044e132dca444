package conversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conversion-wiz/internal/errors"
)

// TestPathMissingFactorIsAnError corrupts the edge table so the search finds a
// neighbour whose rule is gone; the result must be an error, not a panic
func TestPathMissingFactorIsAnError(t *testing.T) {
	g := New()
	for _, name := range []string{"A", "B", "C"} {
		_, err := g.RegisterUnit(name, nil, false)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddScaleEdge("A", "B", 2))
	require.NoError(t, g.AddScaleEdge("B", "C", 3))

	delete(g.edges["B"], "C")

	assert.NotPanics(t, func() {
		_, err := g.Convert("A", "C", 1)
		require.ErrorIs(t, err, errors.ErrMissingConversionFactor)
		e, ok := err.(*errors.Error)
		require.True(t, ok)
		assert.Equal(t, "B", e.Context["from"])
		assert.Equal(t, "C", e.Context["to"])
	})
}

func TestSearchParents(t *testing.T) {
	g := New()
	for _, name := range []string{"A", "B", "C", "D"} {
		_, err := g.RegisterUnit(name, nil, false)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddScaleEdge("A", "B", 2))
	require.NoError(t, g.AddScaleEdge("A", "C", 2))
	require.NoError(t, g.AddScaleEdge("C", "D", 2))

	parents := g.search("A", "D")
	assert.Equal(t, "A", parents["B"])
	assert.Equal(t, "A", parents["C"])
	assert.Equal(t, "C", parents["D"])
	_, hasSource := parents["A"]
	assert.False(t, hasSource)
}

func TestNeighbourOrderFollowsInsertion(t *testing.T) {
	g := New()
	for _, name := range []string{"A", "B", "C"} {
		_, err := g.RegisterUnit(name, nil, false)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddScaleEdge("A", "C", 2))
	require.NoError(t, g.AddScaleEdge("A", "B", 2))
	require.NoError(t, g.AddScaleEdge("A", "C", 4))

	assert.Equal(t, []string{"C", "B"}, g.neighbours["A"])
}
