// Package core declares the Graph, Neighbor, GraphOption types,
// sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex name was the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates an edge was registered with a negative
	// weight. Shortest-path relaxation assumes weights ≥ 0, so such edges
	// are rejected at construction time and never enter the graph.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates AddEdge was called with identical
	// endpoints. Self-loops never shorten a route and are rejected.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Neighbor is one adjacency entry: a vertex reachable via a single edge
// together with that edge's traversal cost.
type Neighbor struct {
	// ID is the adjacent vertex name.
	ID string

	// Weight is the cost of traversing the connecting edge.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all edges
// (true = every AddEdge(u, v, w) means u→v only; false = bidirectional).
// Graphs are undirected by default: real-world travel routes usually
// run both ways.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithName attaches a human-readable label to the graph, used only by
// String(). Empty by default.
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// Graph is the in-memory weighted graph of named locations.
//
// adjacency[u][v] holds the weight of the edge u→v; for undirected
// graphs the mirrored cell is kept in sync. Every known vertex has an
// adjacency row, possibly empty. mu guards all state.
type Graph struct {
	mu sync.RWMutex

	name     string
	directed bool

	adjacency map[string]map[string]int64
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected and unnamed.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string]map[string]int64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
