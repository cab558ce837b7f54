// Package dataset_test verifies the literal dataset contents and the
// triple-to-graph Build pipeline, including end-to-end shortest paths.
package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/dataset"
	"github.com/katalvlaran/citypath/dijkstra"
)

func TestSeattle_Contents(t *testing.T) {
	triples := dataset.Seattle()
	require.Len(t, triples, 4)
	assert.Equal(t, dataset.Triple{From: "QueenAnne", To: "CapitolHill", Weight: 3}, triples[0])

	for _, tr := range triples {
		assert.GreaterOrEqual(t, tr.Weight, int64(0))
	}
}

func TestBuild_Seattle(t *testing.T) {
	g, err := dataset.Build(dataset.Seattle(), core.WithName("seattle"))
	require.NoError(t, err)

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, []string{"Bellevue", "CapitolHill", "QueenAnne", "SODO"}, g.Vertices())
	assert.False(t, g.Directed())
}

func TestBuild_InvalidTripleAborts(t *testing.T) {
	triples := []dataset.Triple{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: -4},
	}
	g, err := dataset.Build(triples)
	require.Nil(t, g)
	assert.ErrorIs(t, err, dataset.ErrBuildFailed)
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestBuild_EndToEndShortestPath(t *testing.T) {
	g, err := dataset.Build(dataset.Seattle())
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(g, "QueenAnne")
	require.NoError(t, err)

	path, cost, err := res.PathTo("Bellevue")
	require.NoError(t, err)
	assert.Equal(t, int64(19), cost)
	assert.Equal(t, []string{"QueenAnne", "Bellevue"}, path)
}
