// Package core provides the immutable road-network model that the rest of
// the engine computes over.
//
// Overview:
//
//   - Node: an intersection with an integer id and a lat/lon position.
//   - Edge: a directed road segment with a length, a travel time in
//     seconds, and an optional speed limit. Edges are one-way records; a
//     bidirectional street appears as two edges only if the dataset says so.
//   - Graph: the id-indexed node mapping plus the ordered edge list,
//     constructed once by a loader (see graphio) and never mutated.
//   - Coordinate: a plain lat/lon pair in degrees.
//
// Weight policy:
//
//	The cost of traversing an edge is its travel_time when strictly
//	positive, otherwise its length. The rule is applied independently per
//	edge (a single dataset may mix both) and is exposed as Edge.Weight
//	so every consumer agrees on it.
//
// Determinism:
//
//	Graph.NodeIDs returns ids in a fixed first-seen order, and
//	Graph.Adjacency preserves edge-list order per node. Components that
//	scan the node set (nearest-node snapping) or relax arcs (the search)
//	therefore behave identically across runs on the same dataset.
//
// Advisory metadata:
//
//	DeclaredNodeCount and DeclaredEdgeCount carry the node_count and
//	edge_count fields of the source dataset verbatim. They are never
//	cross-checked against the actual collection sizes and must only be
//	used for diagnostics.
//
// Thread safety:
//
//	A Graph is read-only after NewGraph returns and is safe to share
//	across goroutines without synchronization. The adjacency index is
//	allocated fresh per call and owned by the caller.
package core
