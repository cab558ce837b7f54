// Package dfs_test contains unit tests for iterative depth-first
// traversal: validation, discovery order determinism, depth limiting,
// filtering, and cancellation.
package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/dfs"
)

// buildDiamond constructs:
//
//	    A
//	   / \
//	  B   C
//	   \ /
//	    D──E
func buildDiamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []struct {
		u, v string
	}{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}} {
		require.NoError(t, g.AddEdge(e.u, e.v, 1))
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := buildDiamond(t)
	_, err := dfs.DFS(g, "Z")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_OptionViolation(t *testing.T) {
	g := buildDiamond(t)
	_, err := dfs.DFS(g, "A", dfs.WithMaxDepth(-2))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

func TestDFS_DiscoveryOrder(t *testing.T) {
	g := buildDiamond(t)
	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)

	// Smallest neighbor first: A→B→D→C (via D), then E.
	assert.Equal(t, []string{"A", "B", "D", "C", "E"}, res.Order)
	assert.Equal(t, "B", res.Parent["D"])
	assert.Equal(t, "D", res.Parent["C"])
	assert.Equal(t, 0, res.Depth["A"])
	assert.Equal(t, 2, res.Depth["D"])
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildDiamond(t)
	res, err := dfs.DFS(g, "A", dfs.WithMaxDepth(1))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
	_, reached := res.Depth["D"]
	assert.False(t, reached)
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g := buildDiamond(t)
	res, err := dfs.DFS(g, "A", dfs.WithFilterNeighbor(func(_, nbr string) bool {
		return nbr != "D"
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
}

func TestDFS_OnVisitAborts(t *testing.T) {
	g := buildDiamond(t)
	boom := errors.New("boom")
	_, err := dfs.DFS(g, "A", dfs.WithOnVisit(func(id string, _ int) error {
		if id == "D" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

func TestDFS_ContextCancelled(t *testing.T) {
	g := buildDiamond(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.DFS(g, "A", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_CoversOnlyReachableComponent(t *testing.T) {
	g := buildDiamond(t)
	require.NoError(t, g.AddEdge("X", "Y", 1)) // separate island

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.NotContains(t, res.Order, "X")
	assert.NotContains(t, res.Order, "Y")
	assert.Len(t, res.Order, 5)
}
