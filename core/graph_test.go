// Package core_test contains unit tests for the Graph container:
// construction, implicit vertex creation, rejection of bad edges,
// adjacency queries, and deterministic enumeration.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citypath/core"
)

// buildCommute constructs the canonical undirected commute graph:
//
//	QueenAnne—CapitolHill(3), CapitolHill—SODO(7),
//	SODO—Bellevue(10), QueenAnne—Bellevue(19).
func buildCommute(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithName("commute"))
	require.NoError(t, g.AddEdge("QueenAnne", "CapitolHill", 3))
	require.NoError(t, g.AddEdge("CapitolHill", "SODO", 7))
	require.NoError(t, g.AddEdge("SODO", "Bellevue", 10))
	require.NoError(t, g.AddEdge("QueenAnne", "Bellevue", 19))

	return g
}

func TestAddEdge_ImplicitVertexCreation(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 5))

	// Both endpoints become known vertices by their first edge reference.
	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_NegativeWeightRejected(t *testing.T) {
	g := core.NewGraph()
	err := g.AddEdge("A", "B", -1)
	require.ErrorIs(t, err, core.ErrNegativeWeight)

	// The edge must not enter the graph, nor may its endpoints.
	assert.False(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_EmptyEndpointRejected(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddEdge("", "B", 1), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("A", "", 1), core.ErrEmptyVertexID)
}

func TestAddEdge_SelfLoopRejected(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddEdge("A", "A", 1), core.ErrLoopNotAllowed)
	assert.False(t, g.HasVertex("A"))
}

func TestAddEdge_ReaddOverwritesWeight(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("A", "B", 2))

	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(2), w)
	// Overwriting does not duplicate the edge.
	assert.Equal(t, 1, g.EdgeCount())

	// The undirected mirror is kept in sync.
	w, err = g.Weight("B", "A")
	require.NoError(t, err)
	assert.Equal(t, int64(2), w)
}

func TestNeighbors_UndirectedBothDirections(t *testing.T) {
	g := buildCommute(t)

	got, err := g.Neighbors("QueenAnne")
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{
		{ID: "Bellevue", Weight: 19},
		{ID: "CapitolHill", Weight: 3},
	}, got)

	// The reverse direction is present too.
	got, err = g.Neighbors("Bellevue")
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{
		{ID: "QueenAnne", Weight: 19},
		{ID: "SODO", Weight: 10},
	}, got)
}

func TestNeighbors_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 1))

	got, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{ID: "B", Weight: 1}}, got)

	// B knows no outgoing edges; only A→B was implied.
	got, err = g.Neighbors("B")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.False(t, g.HasEdge("B", "A"))
}

func TestNeighbors_UnknownVertex(t *testing.T) {
	g := buildCommute(t)
	_, err := g.Neighbors("Tacoma")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = g.Neighbors("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestAddVertex_Isolated(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("Solo"))
	require.NoError(t, g.AddVertex("Solo")) // idempotent

	assert.True(t, g.HasVertex("Solo"))
	got, err := g.Neighbors("Solo")
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestVertices_SortedDeterministic(t *testing.T) {
	g := buildCommute(t)
	want := []string{"Bellevue", "CapitolHill", "QueenAnne", "SODO"}
	assert.Equal(t, want, g.Vertices())
	// Repeated calls enumerate identically.
	assert.Equal(t, want, g.Vertices())
}

func TestWeight_Errors(t *testing.T) {
	g := buildCommute(t)

	_, err := g.Weight("Tacoma", "SODO")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Weight("SODO", "Tacoma")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	// Known vertices without a connecting edge.
	_, err = g.Weight("QueenAnne", "SODO")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestString_ContainsAdjacency(t *testing.T) {
	g := buildCommute(t)
	s := g.String()
	assert.Contains(t, s, `Graph(name="commute", directed=false)`)
	assert.Contains(t, s, "Neighbors of QueenAnne")
	assert.Contains(t, s, "CapitolHill (weight 3)")
}
