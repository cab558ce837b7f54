// Package dataset holds the literal route dataset for citypath and the
// Build helper that turns an ordered sequence of edge triples into a
// core.Graph.
//
// The core packages never parse files or embed data themselves; they
// only consume an iterable of (place, place, cost) triples. This
// package is that data-holding collaborator.
package dataset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/citypath/core"
)

// ErrBuildFailed wraps any core.Graph error encountered while applying
// triples; branch with errors.Is against the core sentinels for the
// specific cause.
var ErrBuildFailed = errors.New("dataset: graph build failed")

// Triple is one raw edge: two place names and a non-negative traversal
// cost. Triples are applied in order; validation happens in
// core.AddEdge when a graph is built.
type Triple struct {
	From   string
	To     string
	Weight int64
}

// Seattle returns the assignment's neighborhood dataset: four
// bidirectional routes across Seattle and Bellevue. The cheapest
// QueenAnne→Bellevue route is the direct 19, beating the
// CapitolHill→SODO detour at 3+7+10 = 20.
func Seattle() []Triple {
	return []Triple{
		{From: "QueenAnne", To: "CapitolHill", Weight: 3},
		{From: "CapitolHill", To: "SODO", Weight: 7},
		{From: "SODO", To: "Bellevue", Weight: 10},
		{From: "QueenAnne", To: "Bellevue", Weight: 19},
	}
}

// Build creates a new core.Graph with the given graph options and
// applies all triples in order. The first failing triple aborts the
// build: the error is wrapped once with its index and ErrBuildFailed,
// and no partial graph is returned.
//
// Complexity: O(len(triples)) average.
func Build(triples []Triple, gopts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(gopts...)

	for i, tr := range triples {
		if err := g.AddEdge(tr.From, tr.To, tr.Weight); err != nil {
			return nil, fmt.Errorf("%w: triple %d (%s→%s): %w", ErrBuildFailed, i, tr.From, tr.To, err)
		}
	}

	return g, nil
}
