// Package citypath is a compact toolkit for computing shortest-cost
// routes between named locations in a weighted graph.
//
// 🚀 What is citypath?
//
//	A small, thread-safe, pure-Go library built around one exercise:
//	model a map of places as a weighted graph and answer "what is the
//	cheapest way from here to there?" with Dijkstra's algorithm.
//		• core/     — the Graph container: named vertices, weighted edges,
//		  adjacency lookup; write-once after construction
//		• dijkstra/ — single-source shortest paths plus predecessor-chain
//		  path reconstruction (Result.PathTo)
//		• bfs/      — breadth-first traversal (fewest-hops layering)
//		• dfs/      — depth-first traversal (iterative, bounded memory)
//		• dataset/  — the literal route dataset and a Build helper that
//		  turns (place, place, cost) triples into a Graph
//
// ✨ Why choose citypath?
//
//   - Minimal API with clear naming — built to be read, not just run
//   - Deterministic results — sorted adjacency plus insertion-order
//     tie-breaking make every run reproducible
//   - Pure Go — no cgo, no hidden deps
//   - Typed failures — sentinel errors for bad weights, unknown places
//     and unreachable destinations; branch with errors.Is
//
// Quick ASCII example:
//
//	QueenAnne──3──CapitolHill
//	    │              │
//	   19              7
//	    │              │
//	 Bellevue──10────SODO
//
//	The cheapest QueenAnne→Bellevue route is the direct edge (cost 19);
//	the scenic CapitolHill→SODO detour costs 20.
//
// Dive into the per-package docs for full contracts, complexity notes
// and runnable examples.
//
//	go get github.com/katalvlaran/citypath
package citypath
