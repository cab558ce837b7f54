// Package dijkstra defines the Result type, configuration options and
// sentinel errors for Dijkstra's shortest-path algorithm over a
// core.Graph of named locations.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Unreachable is the distance recorded for vertices that the source
// cannot reach. Every vertex known to the graph appears in the result;
// unreachable ones carry this sentinel.
const Unreachable = int64(math.MaxInt64)

// Sentinel errors returned by this package.
var (
	// ErrEmptySource indicates that the source vertex name is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a vertex referenced by a call
	// (the source, or a PathTo destination) does not exist in the graph
	// the result was computed from.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrUnreachable indicates that no path connects the source to the
	// requested destination. The computation itself succeeded; the
	// destination simply has infinite cost.
	ErrUnreachable = errors.New("dijkstra: destination unreachable from source")

	// ErrOptionViolation indicates an invalid functional option, e.g. a
	// negative MaxDistance or a non-positive InfEdgeThreshold.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures a single Dijkstra run.
//
// MaxDistance      – cap on distances to explore; vertices beyond it are
// left unreachable. Must be ≥ 0. Default math.MaxInt64 (no cap).
// InfEdgeThreshold – edges with weight ≥ this value are treated as
// impassable walls. Must be > 0. Default math.MaxInt64 (no walls).
type Options struct {
	MaxDistance      int64
	InfEdgeThreshold int64

	// internal error recorded during option parsing
	err error
}

// Option is a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap and no
// impassable-edge threshold.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// WithMaxDistance caps exploration: vertices whose shortest distance
// would exceed max are not settled and stay Unreachable in the result.
//
//	max ≥ 0: enforce the cap
//	max < 0: invalid option → ErrOptionViolation
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as
// impassable (infinite cost); they are skipped during relaxation.
//
//	threshold > 0: enforce the threshold
//	threshold ≤ 0: invalid option → ErrOptionViolation
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive (%d)", ErrOptionViolation, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// Result is the outcome of one Dijkstra run: for every vertex known to
// the graph, the minimal total cost from Source and the immediate
// predecessor on one minimal-cost path.
//
// A Result is created fresh by each Dijkstra call, never mutated after
// return, and owned solely by the caller. Two runs over the same graph
// and source produce identical Results.
type Result struct {
	// Source is the vertex the distances are measured from.
	Source string

	// Dist maps every known vertex to its minimal cost from Source,
	// or Unreachable if no path exists.
	Dist map[string]int64

	// Prev maps every known vertex to its predecessor on a shortest
	// path from Source; "" for the source itself and for unreachable
	// vertices.
	Prev map[string]string
}

// Cost returns the minimal total cost from the source to dest.
// Fails with ErrVertexNotFound if dest was never a graph vertex, or
// ErrUnreachable if no path exists.
func (r *Result) Cost(dest string) (int64, error) {
	d, ok := r.Dist[dest]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, dest)
	}
	if d == Unreachable {
		return 0, fmt.Errorf("%w: %s→%s", ErrUnreachable, r.Source, dest)
	}

	return d, nil
}

// Reachable reports whether dest is a known vertex with a finite cost
// from the source.
func (r *Result) Reachable(dest string) bool {
	d, ok := r.Dist[dest]

	return ok && d != Unreachable
}

// PathTo reconstructs the ordered vertex sequence from the source to
// dest inclusive, by following predecessor links backwards and
// reversing, together with the total cost (equal to Cost(dest)).
//
// Fails with ErrVertexNotFound if dest was never a graph vertex, or
// ErrUnreachable if no connecting path exists. A fabricated finite cost
// is never returned.
//
// Complexity: O(L) for a path of L vertices.
func (r *Result) PathTo(dest string) ([]string, int64, error) {
	cost, err := r.Cost(dest)
	if err != nil {
		return nil, 0, err
	}

	// Walk dest → source via predecessor links.
	var path []string
	for v := dest; v != ""; v = r.Prev[v] {
		path = append(path, v)
	}

	// Reverse in place: the caller expects source-first order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, cost, nil
}
