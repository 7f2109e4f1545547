// Package astar implements the goal-directed shortest-path search at the
// heart of the route planner.
//
// Find runs A* over the graph's per-call adjacency index, using an
// admissible time heuristic (haversine distance to the goal at a constant
// average speed), and returns the node trail start→goal together with its
// total cost in the search's weight unit.
package astar

import (
	"container/heap"
	"math"

	"roadroute/core"
	"roadroute/geo"
)

// Find computes the cheapest path from start to goal and returns the
// ordered node ids along it plus the path's total weight.
//
// Returns:
//
//   - trail: node ids from start to goal inclusive. When start == goal the
//     search is bypassed entirely and the trail is the single node.
//   - cost:  sum of edge weights along the trail (seconds, or raw length
//     for edges without a travel time).
//   - err:   ErrNilGraph for a nil graph, ErrNoPath when the frontier is
//     exhausted before the goal, or the context's error when a configured
//     context is canceled mid-search.
//
// Determinism: the frontier is a min-heap keyed by (fScore, insertion
// sequence), relaxation follows the dataset's edge order, and ties keep
// the first predecessor, so identical inputs always produce identical
// trails.
//
// Complexity: O((V + E) log V) time, O(V + E) space, all allocated fresh
// per call and released on return.
func Find(g *core.Graph, start, goal core.NodeID, opts ...Option) ([]core.NodeID, float64, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the graph.
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	// 3) Same-node short-circuit: no search, single-node trail, zero cost.
	if start == goal {
		return []core.NodeID{start}, 0, nil
	}

	// 4) Set up per-call state: adjacency index, score tables, frontier.
	r := &runner{
		g:        g,
		options:  cfg,
		adj:      g.Adjacency(),
		gScore:   make(map[core.NodeID]float64),
		fScore:   make(map[core.NodeID]float64),
		cameFrom: make(map[core.NodeID]core.NodeID),
		closed:   make(map[core.NodeID]bool),
	}
	r.bindGoal(goal)

	// 5) Seed the frontier with the start node.
	r.init(start)

	// 6) Run the main loop to completion.
	if err := r.process(start, goal); err != nil {
		return nil, 0, err
	}

	// 7) Walk the predecessor trail backward and reverse it.
	trail, err := r.reconstruct(start, goal)
	if err != nil {
		return nil, 0, err
	}

	return trail, r.gScore[goal], nil
}

// runner holds the mutable state for a single Find execution. Nothing in
// here outlives the call, so concurrent searches over one shared graph
// never interfere.
type runner struct {
	g       *core.Graph
	options Options

	adj map[core.NodeID][]core.Arc // outgoing arcs, built once per call

	goalCoord core.Coordinate // goal position for the heuristic
	goalKnown bool            // false when the goal id has no node record
	secPerKm  float64         // heuristic conversion factor

	gScore   map[core.NodeID]float64     // best known cost from start
	fScore   map[core.NodeID]float64     // gScore + heuristic to goal
	cameFrom map[core.NodeID]core.NodeID // predecessor on the best path
	closed   map[core.NodeID]bool        // finalized nodes, never revisited
	open     openPQ                      // frontier, min-heap by (fScore, seq)
	seq      int                         // insertion counter for tie-breaks
}

// bindGoal resolves the goal node once and fixes the heuristic's
// conversion factor (seconds per kilometer at the configured speed).
func (r *runner) bindGoal(goal core.NodeID) {
	n, ok := r.g.Node(goal)
	r.goalKnown = ok
	if ok {
		r.goalCoord = n.Coordinate()
	}
	r.secPerKm = 3600 / r.options.AverageSpeedKmh
}

// heuristic estimates the remaining travel time in seconds from id to the
// goal: haversine distance at the configured constant speed. When either
// node id is absent from the node mapping the estimate is +Inf, which
// disqualifies that node from ever being favored and, via the infinite-
// minimum check in process, from ever being expanded.
func (r *runner) heuristic(id core.NodeID) float64 {
	if !r.goalKnown {
		return math.Inf(1)
	}
	n, ok := r.g.Node(id)
	if !ok {
		return math.Inf(1)
	}

	return geo.Haversine(n.Coordinate(), r.goalCoord) * r.secPerKm
}

// init seeds the score tables and the frontier with the start node:
// gScore 0, fScore = heuristic(start).
func (r *runner) init(start core.NodeID) {
	r.gScore[start] = 0
	r.fScore[start] = r.heuristic(start)

	heap.Init(&r.open)
	heap.Push(&r.open, &openItem{id: start, f: r.fScore[start], seq: r.seq})
	r.seq++
}

// process is the A* main loop: repeatedly extract the open node with the
// minimum fScore, finish on the goal, otherwise close it and relax its
// outgoing arcs.
//
// Termination:
//
//   - the goal is extracted → success (nil error);
//   - the frontier empties, or its minimum fScore is infinite → ErrNoPath;
//   - the configured context is done → its error.
func (r *runner) process(start, goal core.NodeID) error {
	pops := 0
	for r.open.Len() > 0 {
		// 1) Cooperative cancellation checkpoint.
		pops++
		if r.options.Ctx != nil && pops%cancelCheckInterval == 0 {
			select {
			case <-r.options.Ctx.Done():
				return r.options.Ctx.Err()
			default:
			}
		}

		// 2) Extract the minimum-fScore entry; skip stale duplicates left
		//    behind by lazy decrease-key.
		item := heap.Pop(&r.open).(*openItem)
		u := item.id
		if r.closed[u] {
			continue
		}

		// 3) An infinite minimum means every remaining frontier entry is
		//    unreachable in the heuristic's eyes (missing node records);
		//    there is no path.
		if math.IsInf(r.fScore[u], 1) {
			return ErrNoPath
		}

		// 4) Goal reached: its gScore is final, hand off to reconstruction.
		if u == goal {
			return nil
		}

		// 5) Move u from open to closed.
		r.closed[u] = true

		// 6) Relax every outgoing arc.
		r.relax(u)
	}

	// Frontier exhausted without reaching the goal: disconnected start and
	// goal, or a start with no outgoing reachable edges.
	return ErrNoPath
}

// relax examines each outgoing arc of u and records strictly better paths
// to its neighbors. Ties keep the existing predecessor: the first path
// found at a given cost wins.
func (r *runner) relax(u core.NodeID) {
	var (
		arc       core.Arc
		tentative float64
	)
	for _, arc = range r.adj[u] {
		// Finalized neighbors are never revisited.
		if r.closed[arc.To] {
			continue
		}

		tentative = r.gScore[u] + arc.Weight

		// A previously seen neighbor only improves on strictly smaller cost.
		if best, seen := r.gScore[arc.To]; seen && tentative >= best {
			continue
		}

		r.cameFrom[arc.To] = u
		r.gScore[arc.To] = tentative
		r.fScore[arc.To] = tentative + r.heuristic(arc.To)

		// Lazy decrease-key: push a fresh entry, stale ones are skipped on pop.
		heap.Push(&r.open, &openItem{id: arc.To, f: r.fScore[arc.To], seq: r.seq})
		r.seq++
	}
}

// reconstruct walks the predecessor trail backward from goal to start and
// reverses it into start→goal order. Every id on the trail was recorded by
// relax, so the walk cannot dead-end; the guard is defensive only.
func (r *runner) reconstruct(start, goal core.NodeID) ([]core.NodeID, error) {
	trail := []core.NodeID{goal}
	cur := goal
	for cur != start {
		prev, ok := r.cameFrom[cur]
		if !ok {
			return nil, ErrNoPath
		}
		trail = append(trail, prev)
		cur = prev
	}

	// Reverse in place: the walk collected goal→start.
	for i, j := 0, len(trail)-1; i < j; i, j = i+1, j-1 {
		trail[i], trail[j] = trail[j], trail[i]
	}

	return trail, nil
}
