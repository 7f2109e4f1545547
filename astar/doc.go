// Package astar provides the heuristic shortest-path search that turns a
// pair of snapped graph nodes into an ordered node trail along real road
// segments.
//
// Overview:
//
//   - A* explores the graph outward from the start node, always expanding
//     the open node with the minimum fScore = gScore + heuristic.
//   - gScore is the best known cost from the start; the heuristic is the
//     haversine distance to the goal converted to seconds at a constant
//     50 km/h (DefaultAverageSpeedKmh).
//   - Node states are tracked implicitly through three structures:
//     unvisited (absent from the score tables, gScore conceptually +Inf),
//     open (in the frontier heap), and closed (finalized, never revisited).
//
// Termination:
//
//   - Success: the goal node is extracted from the frontier; the
//     predecessor trail is walked backward and reversed into start→goal
//     order.
//   - Failure: the frontier empties, or its minimum fScore is infinite
//     (only nodes without records remain). Both report ErrNoPath, a
//     routine outcome for disconnected graphs, never a fault.
//   - Cancellation: with WithContext, the loop checks the context every
//     64 extractions and aborts with its error.
//
// Frontier and tie-breaking:
//
//	The open set is a binary heap keyed by (fScore, insertion sequence)
//	with lazy decrease-key: improving a node pushes a fresh entry and the
//	stale duplicate is discarded when popped. Equal fScores resolve to the
//	earlier insertion, matching the first-encountered semantics of a
//	linear scan, so the heap changes performance only, never which path
//	is returned. Relaxation keeps the existing predecessor on cost ties:
//	the first path found at a given cost wins.
//
// Admissibility:
//
//	The constant-speed assumption is admissible only while no edge is
//	traversed faster than the assumed speed. Roads faster than 50 km/h can
//	make the heuristic overestimate, in which case the returned path may
//	be slightly suboptimal. This is a documented property of the design;
//	tune with WithAverageSpeed only if you understand the trade.
//
// Statelessness:
//
//	Every call allocates its own adjacency index, score tables, and
//	frontier, and releases them on return. The graph itself is read-only,
//	so any number of Find calls may run concurrently over one Graph.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
package astar
