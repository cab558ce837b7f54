// Package dfs implements iterative depth-first traversal over a
// core.Graph, returning discovery order, depths, and parent links.
//
// The traversal uses an explicit stack rather than recursion, so long
// chains of vertices cannot exhaust the goroutine stack. Edge weights
// are ignored.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/citypath/core"
)

// stackItem pairs a vertex ID with its discovery depth and parent.
type stackItem struct {
	id     string
	depth  int
	parent string // empty for the root
}

// walker encapsulates mutable DFS state.
type walker struct {
	graph   *core.Graph
	opts    DFSOptions
	stack   []stackItem
	visited map[string]bool
	res     *DFSResult
}

// DFS performs depth-first traversal on g starting from startID,
// applying any number of functional Options.
//
// Neighbors are explored in ascending name order: because the stack is
// LIFO, they are pushed in reverse, so the lexicographically smallest
// unvisited neighbor is always descended into first. The discovery
// sequence is therefore fully reproducible.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context's error on
// cancellation, or any OnVisit error.
// Complexity: O(V + E) time, O(V) memory.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		stack:   make([]stackItem, 0, n),
		visited: make(map[string]bool, n),
		res: &DFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.stack = append(w.stack, stackItem{id: startID, depth: 0})

	return w.res, w.loop()
}

// loop pops until the stack empties, an error occurs, or the context is
// cancelled.
func (w *walker) loop() error {
	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := len(w.stack) - 1
		item := w.stack[top]
		w.stack = w.stack[:top]

		// A vertex may be pushed several times before its first pop;
		// only the first discovery counts.
		if w.visited[item.id] {
			continue
		}

		if err := w.discover(item); err != nil {
			return err
		}
	}

	return nil
}

// discover records item and pushes its unvisited neighbors in reverse
// sorted order.
func (w *walker) discover(item stackItem) error {
	w.visited[item.id] = true
	w.res.Order = append(w.res.Order, item.id)
	w.res.Depth[item.id] = item.depth
	if item.parent != "" {
		w.res.Parent[item.id] = item.parent
	}

	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("dfs: OnVisit error at %q: %w", item.id, err)
	}

	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("dfs: failed to get neighbors of %q: %w", item.id, err)
	}
	for i := len(neighbors) - 1; i >= 0; i-- {
		nbr := neighbors[i]
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if !w.visited[nbr] {
			w.stack = append(w.stack, stackItem{id: nbr, depth: nextDepth, parent: item.id})
		}
	}

	return nil
}
