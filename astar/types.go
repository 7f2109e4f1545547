// Package astar defines the configuration options, sentinel errors, and
// priority-queue plumbing for the A* path finder.
//
// The search explores a directed road graph from a start node toward a
// goal node, ordering the frontier by fScore = gScore + heuristic, where
// the heuristic is the haversine distance to the goal converted to seconds
// at a constant average speed.
//
// Errors (sentinel):
//
//	ErrNilGraph - the provided graph pointer is nil.
//	ErrNoPath   - the open set was exhausted (or degenerated to infinite
//	              estimates) before the goal was reached. This is a routine,
//	              recoverable outcome for disconnected graphs, not a fault.
//	ErrBadSpeed - WithAverageSpeed was given a non-positive value.
package astar

import (
	"context"
	"errors"

	"roadroute/core"
)

// Sentinel errors returned by the path finder.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Find.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNoPath indicates that no path exists from start to goal. Callers
	// must treat this as a normal outcome, never as fatal.
	ErrNoPath = errors.New("astar: no path found")

	// ErrBadSpeed indicates that a non-positive average speed was supplied
	// to WithAverageSpeed.
	ErrBadSpeed = errors.New("astar: average speed must be positive")
)

// DefaultAverageSpeedKmh is the constant speed assumed by the heuristic
// when converting remaining distance to a time estimate.
//
// The estimate is admissible only while no road is traversed faster than
// this; on faster roads (motorways) the heuristic can overestimate and the
// search may return a slightly suboptimal path. Known limitation, kept
// deliberately; changing it changes which paths are returned.
const DefaultAverageSpeedKmh = 50.0

// cancelCheckInterval is the number of frontier extractions between
// context checks when a context is configured.
const cancelCheckInterval = 64

// Options configures a single Find invocation.
//
// AverageSpeedKmh is the constant speed assumed by the heuristic (must be
// positive). Ctx is an optional context; when set, the main loop checks
// it periodically so a very large search can be abandoned cooperatively.
type Options struct {
	AverageSpeedKmh float64         // heuristic speed assumption in km/h
	Ctx             context.Context // nil means never cancel
}

// Option is a functional option for configuring Find.
type Option func(*Options)

// WithAverageSpeed overrides the heuristic's constant speed assumption.
// Raising it weakens the heuristic (more exploration, still optimal);
// lowering it below real road speeds can make results suboptimal.
// Non-positive values panic with ErrBadSpeed.
func WithAverageSpeed(kmh float64) Option {
	return func(o *Options) {
		if kmh <= 0 {
			panic(ErrBadSpeed.Error())
		}
		o.AverageSpeedKmh = kmh
	}
}

// WithContext attaches a context to the search. The main loop checks it
// every few extractions and aborts with the context's error once it is
// done. Without this option a pathological graph blocks the caller for
// the full duration of the search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// DefaultOptions returns the options used when none are supplied:
// 50 km/h heuristic speed and no cancellation.
func DefaultOptions() Options {
	return Options{
		AverageSpeedKmh: DefaultAverageSpeedKmh,
		Ctx:             nil,
	}
}

// openItem is one frontier entry: a node id, its fScore at push time, and
// a monotonically increasing insertion sequence used for tie-breaking.
type openItem struct {
	id  core.NodeID // node awaiting evaluation
	f   float64     // fScore when the entry was pushed
	seq int         // insertion order; earlier entries win fScore ties
}

// openPQ is a min-heap of frontier entries ordered by (fScore, insertion
// sequence). We use lazy decrease-key: improving a node pushes a fresh
// entry and the stale one is skipped when popped (its node is closed by
// then). Breaking fScore ties by insertion sequence reproduces the
// first-encountered ordering of a linear scan over the open set.
type openPQ []*openItem

// Len returns the number of entries in the heap.
func (pq openPQ) Len() int { return len(pq) }

// Less orders entries by fScore, then by insertion sequence.
func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two entries.
func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new entry; called by heap.Push.
func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(*openItem)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
