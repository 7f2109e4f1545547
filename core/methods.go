package core

// Node returns the node with the given id, with ok=false when the id is
// not part of the graph.
func (g *Graph) Node(id NodeID) (Node, bool) {
	n, ok := g.nodes[id]

	return n, ok
}

// NodeIDs returns the node ids in their fixed first-seen order. The
// returned slice is a copy; callers may not mutate graph state through it.
func (g *Graph) NodeIDs() []NodeID {
	out := make([]NodeID, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns a copy of the directed edge list in dataset order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NodeCount reports the actual number of indexed nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount reports the actual number of stored edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// DeclaredNodeCount returns the advisory node_count copied from the source
// dataset. Diagnostics only; never trusted for correctness.
func (g *Graph) DeclaredNodeCount() int { return g.declaredNodes }

// DeclaredEdgeCount returns the advisory edge_count copied from the source
// dataset. Diagnostics only; never trusted for correctness.
func (g *Graph) DeclaredEdgeCount() int { return g.declaredEdges }
