// Package dijkstra implements Dijkstra's shortest-path algorithm on
// citypath graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex
// to all other reachable vertices in a graph with non-negative edge
// weights. Vertices are processed in order of increasing distance via a
// min-heap priority queue, relaxing edges as each vertex is settled.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Each heap operation costs O(log N), N ≤ V + E. Simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor maps.
//   - O(E) worst-case heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Negative weights cannot enter a core.Graph (AddEdge rejects them),
//     so no pre-scan of the edge set is needed here.
//   - Heap entries carry a monotone sequence number; ties in distance
//     settle in first-discovered order, keeping results reproducible.
//   - Lazy decrease-key: improved distances push duplicate heap entries
//     and stale ones are skipped when popped.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/citypath/core"
)

// Dijkstra computes shortest costs from source to every vertex of g and
// returns them as a Result (cost + predecessor per vertex; see
// Result.PathTo for explicit route reconstruction).
//
// Preconditions and validation (in order):
//  1. source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. All supplied options must be valid (ErrOptionViolation).
//  4. g must contain source (ErrVertexNotFound).
//
// All edge weights are non-negative by the Graph's construction
// invariant and are not re-checked here.
//
// The call is atomic from the caller's perspective: it either returns a
// complete Result covering every known vertex, or an error and no
// Result. The graph is only read; concurrent Dijkstra runs over the
// same graph are safe as long as nobody mutates it.
func Dijkstra(g *core.Graph, source string, opts ...Option) (*Result, error) {
	if source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	// Build options and surface any invalid one immediately.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}

	V := g.VertexCount()
	r := &runner{
		g:       g,
		opts:    cfg,
		settled: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
		res: &Result{
			Source: source,
			Dist:   make(map[string]int64, V),
			Prev:   make(map[string]string, V),
		},
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph     // input graph; read-only during the run
	opts    Options         // resolved configuration
	settled map[string]bool // vertex → shortest cost finalized
	pq      nodePQ          // min-heap frontier, lazy decrease-key
	seq     uint64          // monotone push counter for tie-breaking
	res     *Result         // cost + predecessor maps under construction
}

// init seeds the frontier: every known vertex starts at Unreachable
// with no predecessor, the source at cost 0.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.res.Dist[v] = Unreachable
		r.res.Prev[v] = ""
	}
	r.res.Dist[r.res.Source] = 0

	heap.Init(&r.pq)
	r.push(r.res.Source, 0)
}

// process is the main loop: repeatedly settle the unsettled frontier
// vertex with minimal tentative cost and relax its edges.
//
// Termination:
//   - the heap empties (every finitely-costed vertex settled), or
//   - the minimum frontier cost exceeds MaxDistance.
//
// Invariant: once a vertex is settled its cost is provably optimal —
// with non-negative weights, any alternative route through a
// not-yet-settled vertex already costs at least the current frontier
// minimum, so it can never undercut it. Settled vertices are therefore
// excluded from further relaxation.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Stale lazy-decrease-key entry: the vertex settled at a lower
		// cost already.
		if r.settled[item.id] {
			continue
		}

		// Everything remaining in the frontier is at least this far away.
		if item.dist > r.opts.MaxDistance {
			break
		}

		r.settled[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge out of the just-settled vertex u and updates
// any neighbor whose tentative cost improves.
//
// Assumes res.Dist[u] is final before the call.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	du := r.res.Dist[u]
	var newDist int64
	for _, n := range neighbors {
		// Impassable wall.
		if n.Weight >= r.opts.InfEdgeThreshold {
			continue
		}
		if r.settled[n.ID] {
			continue
		}

		newDist = du + n.Weight
		if newDist > r.opts.MaxDistance {
			continue
		}
		// Strictly-better only: equal-cost rediscoveries keep the first
		// predecessor, which keeps paths deterministic.
		if newDist >= r.res.Dist[n.ID] {
			continue
		}

		r.res.Dist[n.ID] = newDist
		r.res.Prev[n.ID] = u
		r.push(n.ID, newDist)
	}

	return nil
}

// push adds a frontier entry for id at dist, stamping it with the next
// sequence number so equal distances pop in insertion order.
func (r *runner) push(id string, dist int64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
}

// nodeItem is one frontier entry: a vertex, its tentative distance, and
// the push sequence number used for deterministic tie-breaking.
type nodeItem struct {
	id   string
	dist int64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq) ascending.
// Under lazy decrease-key, outdated entries remain in the heap and are
// skipped on pop via the settled map.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; x must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; container/heap has already
// moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
