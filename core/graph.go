// File: graph.go
// Role: Graph mutation (AddVertex, AddEdge) and query APIs
//       (Neighbors, NeighborIDs, Vertices, HasVertex, HasEdge, Weight).
// Determinism:
//   - Vertices() returns names sorted lex asc.
//   - Neighbors() and NeighborIDs() return entries sorted lex asc by ID.
// Concurrency:
//   - Mutators hold the write lock; queries hold the read lock.

package core

import (
	"fmt"
	"sort"
	"strings"
)

// AddVertex registers an isolated vertex by name. Adding a vertex that
// already exists is a no-op. Returns ErrEmptyVertexID for "".
// Complexity: O(1) average.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// AddEdge registers an edge between v1 and v2 with the given traversal
// cost. Both endpoints become known vertices even if previously unseen.
// On an undirected graph the edge is traversable both ways at the same
// cost; on a directed graph only v1→v2 is implied.
//
// Re-adding an existing edge overwrites its weight.
//
// Errors:
//   - ErrEmptyVertexID  if either endpoint is "".
//   - ErrLoopNotAllowed if v1 == v2.
//   - ErrNegativeWeight if weight < 0; the edge is not added.
//
// Complexity: O(1) average.
func (g *Graph) AddEdge(v1, v2 string, weight int64) error {
	if v1 == "" || v2 == "" {
		return ErrEmptyVertexID
	}
	if v1 == v2 {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, v1)
	}
	if weight < 0 {
		return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, v1, v2, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(v1)
	g.ensureVertex(v2)

	if _, exists := g.adjacency[v1][v2]; !exists {
		g.edgeCount++
	}
	g.adjacency[v1][v2] = weight
	if !g.directed {
		g.adjacency[v2][v1] = weight
	}

	return nil
}

// HasVertex reports whether id names a known vertex.
// Complexity: O(1) average.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]

	return ok
}

// HasEdge reports whether an edge from→to exists (in that direction;
// on undirected graphs direction is immaterial).
// Complexity: O(1) average.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the cost of the edge from→to.
// Returns ErrVertexNotFound if either endpoint is unknown, or if no
// such edge exists between two known vertices.
// Complexity: O(1) average.
func (g *Graph) Weight(from, to string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adjacency[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if _, ok = g.adjacency[to]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}
	w, ok := row[to]
	if !ok {
		return 0, fmt.Errorf("core: no edge %s→%s: %w", from, to, ErrVertexNotFound)
	}

	return w, nil
}

// Neighbors returns the (possibly empty) set of adjacency entries for
// id — every vertex reachable from id via a single edge, with the edge
// weight. The slice is freshly allocated, sorted lex asc by ID, and
// safe for the caller to retain.
//
// Returns ErrEmptyVertexID for "" and ErrVertexNotFound if id was never
// referenced by any edge or AddVertex call.
// Complexity: O(d log d) for degree d.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	out := make([]Neighbor, 0, len(row))
	for to, w := range row {
		out = append(out, Neighbor{ID: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the adjacent vertex names for id, sorted lex asc.
// Errors are propagated from Neighbors.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	neighbors, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(neighbors))
	for i, n := range neighbors {
		ids[i] = n.ID
	}

	return ids, nil
}

// Vertices returns all known vertex names sorted lex asc.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of known vertices. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of registered edges. An undirected edge
// counts once. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Name returns the label set via WithName, or "".
func (g *Graph) Name() string { return g.name }

// String renders the graph as a deterministic adjacency dump, one
// vertex per block with its sorted neighbor list. Intended for debug
// output and tests.
func (g *Graph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Graph(name=%q, directed=%t)\n", g.name, g.directed)
	for _, id := range g.Vertices() {
		fmt.Fprintf(&b, "  Neighbors of %s\n", id)
		neighbors, _ := g.Neighbors(id)
		for _, n := range neighbors {
			fmt.Fprintf(&b, "    %s (weight %d)\n", n.ID, n.Weight)
		}
	}

	return b.String()
}

// ensureVertex guarantees an adjacency row for id.
// Must be called under the write lock.
func (g *Graph) ensureVertex(id string) {
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]int64)
	}
}
