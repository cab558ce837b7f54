// Package dijkstra provides a precise implementation of Dijkstra's
// shortest-path algorithm on citypath graphs with non-negative edge
// weights, together with explicit path reconstruction.
//
// Overview:
//
//   - Dijkstra computes the minimum cost from a single source vertex to
//     all reachable vertices in O((V + E) log V) time.
//   - A min-heap always expands the next-closest unsettled vertex; its
//     cost is then final and it is excluded from further relaxation.
//   - The returned Result answers per-destination queries: Cost,
//     Reachable, and PathTo (the ordered vertex sequence from the
//     source to a destination).
//
// Determinism:
//
//	core.Neighbors enumerates adjacency sorted by vertex name, and heap
//	entries break cost ties by insertion order, so the same graph and
//	source always produce the identical Result — costs, predecessors
//	and reconstructed paths alike.
//
// Unreachable convention:
//
//	Every vertex known to the graph appears in Result.Dist. Vertices the
//	source cannot reach carry the Unreachable sentinel, and PathTo/Cost
//	report them as ErrUnreachable rather than fabricating a finite cost.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:    the source name is "".
//   - ErrNilGraph:       a nil *core.Graph was supplied.
//   - ErrVertexNotFound: the source (Dijkstra) or destination (PathTo,
//     Cost) was never a graph vertex.
//   - ErrUnreachable:    PathTo/Cost asked for a destination with no
//     connecting path.
//   - ErrOptionViolation: an option carried an invalid value.
//
// All failures are reported synchronously to the caller; nothing is
// retried (the computation is deterministic and pure) and no partial
// result is exposed on failure.
//
// API sketch:
//
//	res, err := dijkstra.Dijkstra(g, "QueenAnne")
//	if err != nil { ... }
//	path, cost, err := res.PathTo("Bellevue")
//	// path = [QueenAnne Bellevue], cost = 19
//
// Options:
//
//   - WithMaxDistance(x): do not explore beyond cost x.
//   - WithInfEdgeThreshold(t): treat edges with weight ≥ t as walls.
//
// Thread safety:
//
//   - A Result is owned by its caller. Concurrent Dijkstra runs over
//     one graph are safe while the graph is not mutated.
//
// See also:
//
//   - core.Graph: graph construction and adjacency queries.
//   - bfs.BFS: fewest-hops layering when weights do not matter.
package dijkstra
