// Package dfs implements iterative depth-first traversal over a
// core.Graph: discovery order, per-vertex depth, and parent links.
//
// What
//
//   - Descend from a start vertex, always into the lexicographically
//     smallest unvisited neighbor first, backtracking when stuck.
//   - Returns a DFSResult (Order, Depth, Parent) mirroring the bfs
//     package's result shape.
//   - Supports an OnVisit hook, neighbor filtering, a MaxDepth limit
//     (d > 0) or explicit "no limit" (d == 0), and context cancellation.
//
// Why
//
//   - Reachability checks with minimal frontier memory: the stack holds
//     one path's fringe rather than a whole breadth level.
//   - Teaching companion to bfs and dijkstra — same graph, three
//     traversal disciplines.
//
// Determinism
//
//	Neighbors are pushed in reverse sorted order onto a LIFO stack, so
//	the discovery sequence for a given graph and start is fixed.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	result, err := dfs.DFS(g, "QueenAnne", dfs.WithMaxDepth(3))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//	    // ctx error, or an OnVisit error
//	}
package dfs
