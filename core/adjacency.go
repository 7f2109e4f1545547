package core

// Arc is one outgoing hop of the adjacency index: the neighbor id and the
// cost of reaching it along a single edge.
type Arc struct {
	// To is the neighbor node id.
	To NodeID

	// Weight is the edge cost: travel_time when strictly positive,
	// otherwise length (Edge.Weight).
	Weight float64
}

// Adjacency derives the directed adjacency index: node id → ordered list
// of outgoing (neighbor, weight) arcs, one per edge whose From matches.
//
// The index is built fresh on every call and is owned by the caller;
// nothing is cached on the graph, so concurrent route computations never
// share mutable state. Per-node arc order follows the edge list order,
// which keeps relaxation order deterministic. Parallel edges between the
// same pair yield separate arcs; the search naturally prefers the cheaper
// one because relaxation never worsens a known best cost. Edges whose
// endpoints are not in the node mapping are indexed as-is; they simply
// never lead anywhere useful (the heuristic for a missing node is
// infinite, so the search never finalizes it).
func (g *Graph) Adjacency() map[NodeID][]Arc {
	adj := make(map[NodeID][]Arc, len(g.nodes))

	var e Edge
	for _, e = range g.edges {
		adj[e.From] = append(adj[e.From], Arc{To: e.To, Weight: e.Weight()})
	}

	return adj
}
