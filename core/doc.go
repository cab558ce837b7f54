// Package core defines the central Graph type for citypath:
// a container of named vertices and non-negative weighted edges
// with deterministic adjacency lookup.
//
// What
//
//   - Vertices are opaque string names ("QueenAnne", "SODO", …); each
//     distinct name denotes exactly one vertex.
//   - Edges carry a non-negative int64 weight. Graphs are undirected by
//     default — AddEdge(u, v, w) makes travel possible both ways at the
//     same cost — or uniformly directed via WithDirected(true).
//   - Endpoints are created implicitly by their first edge reference;
//     isolated vertices can be added with AddVertex.
//   - The graph is write-once in spirit: build it from a route list,
//     then query it. There is no removal or weight-update API beyond
//     re-adding an edge, which overwrites its weight.
//
// Determinism
//
//	Vertices() and Neighbors() return their results sorted
//	lexicographically ascending, so every traversal of the same graph
//	enumerates identically.
//
// Concurrency
//
//	All methods take an internal sync.RWMutex, so concurrent readers
//	(including concurrent shortest-path computations) are safe.
//	Mutating a graph while a computation is running on it is undefined;
//	treat graphs as immutable once built.
//
// Errors (sentinel)
//
//   - ErrEmptyVertexID  — a vertex name was the empty string.
//   - ErrVertexNotFound — a query referenced an unknown vertex.
//   - ErrNegativeWeight — AddEdge was given weight < 0; the edge is
//     rejected and never enters the graph.
//   - ErrLoopNotAllowed — AddEdge was given identical endpoints.
//
// Complexity
//
//   - AddEdge / AddVertex / HasVertex / HasEdge / Weight: O(1) average.
//   - Neighbors(v): O(d log d) for degree d (sorted copy).
//   - Vertices(): O(V log V).
package core
