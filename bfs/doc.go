// Package bfs provides breadth-first traversal over a core.Graph,
// returning hop-count distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a
//     start vertex, ignoring edge weights.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → hop distance from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - HopPath(dest) reconstructs the fewest-hops route from the start.
//   - Supports an OnVisit hook, neighbor filtering, a MaxDepth limit
//     (d > 0) or explicit "no limit" (d == 0), and context cancellation.
//
// Why
//
//   - Answer "how many stops away?" questions that ignore travel cost.
//   - Discover reachable subgraphs and level layering; sanity-check
//     connectivity before running weighted searches.
//
// Determinism
//
//	core.NeighborIDs returns names sorted ascending and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, Depth, Parent and visited set
//
// Usage
//
//	result, err := bfs.BFS(g, "QueenAnne")
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//	    // ErrNeighbors, ctx error, or an OnVisit error
//	}
//	route, err := result.HopPath("Bellevue") // fewest stops, not cheapest
package bfs
