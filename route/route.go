// Package route exposes the single public operation of the engine:
// Compute, which turns two arbitrary coordinates into an ordered polyline
// of snapped road-network positions.
package route

import (
	"fmt"

	"roadroute/astar"
	"roadroute/core"
	"roadroute/snap"
)

// Compute resolves start and end to their nearest graph nodes, runs the
// heuristic search between them, and returns the resulting ordered
// coordinate sequence.
//
// The first and last points of the result are the snapped node positions,
// not the literal inputs; a host that wants to show the literal query
// points must render them separately. When both inputs snap to the same
// node the result is that single node's coordinate and the search is
// never entered.
//
// Failures are typed and recoverable:
//
//   - snap.ErrNoNodes  - the graph has no nodes to snap to.
//   - astar.ErrNoPath  - the snapped endpoints are not connected.
//
// Both match through errors.Is despite the added context. The function
// performs no retries; the search is deterministic, so retrying cannot
// change the outcome.
//
// Additional astar options (cancellation context, heuristic speed) pass
// through unchanged.
func Compute(g *core.Graph, start, end core.Coordinate, opts ...astar.Option) ([]core.Coordinate, error) {
	// 1) Snap both endpoints to graph nodes.
	startID, err := snap.Nearest(g, start)
	if err != nil {
		return nil, fmt.Errorf("route: snapping start: %w", err)
	}
	endID, err := snap.Nearest(g, end)
	if err != nil {
		return nil, fmt.Errorf("route: snapping end: %w", err)
	}

	// 2) Same snapped node: the route is that node's position alone.
	if startID == endID {
		n, ok := g.Node(startID)
		if !ok {
			return nil, fmt.Errorf("route: snapped node %d: %w", startID, core.ErrNodeNotFound)
		}

		return []core.Coordinate{n.Coordinate()}, nil
	}

	// 3) Run the search.
	trail, _, err := astar.Find(g, startID, endID, opts...)
	if err != nil {
		return nil, fmt.Errorf("route: %w", err)
	}

	// 4) Map the node trail to coordinates. Every id on the trail was
	//    finalized by the search, so the lookup is defensive only.
	coords := make([]core.Coordinate, 0, len(trail))
	for _, id := range trail {
		n, ok := g.Node(id)
		if !ok {
			return nil, fmt.Errorf("route: trail node %d: %w", id, core.ErrNodeNotFound)
		}
		coords = append(coords, n.Coordinate())
	}

	return coords, nil
}
