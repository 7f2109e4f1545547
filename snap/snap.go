// Package snap resolves an arbitrary coordinate to the nearest graph node.
//
// The locator performs an exhaustive O(n) scan over the graph's node set
// using haversine distance, keeping a running minimum. A candidate
// replaces the incumbent only on a strictly smaller distance, so on exact
// ties the node seen first wins; the scan follows the graph's fixed node
// order, which makes the outcome reproducible across runs.
//
// Errors (sentinel):
//
//	ErrNoNodes - the graph is nil or contains no nodes, so no coordinate
//	             can be snapped.
package snap

import (
	"errors"

	"roadroute/core"
	"roadroute/geo"
)

// ErrNoNodes indicates a snapping attempt against a graph without any
// nodes; there is no candidate to return.
var ErrNoNodes = errors.New("snap: graph has no nodes")

// Nearest returns the id of the graph node minimizing the great-circle
// distance to query.
//
// Complexity: O(n) over the node set; no per-call allocation beyond the
// id slice copy.
func Nearest(g *core.Graph, query core.Coordinate) (core.NodeID, error) {
	id, _, err := NearestDistance(g, query)

	return id, err
}

// NearestDistance behaves like Nearest and additionally reports the
// distance to the winning node in kilometers. Hosts use it to decide
// whether a snap is close enough to be meaningful.
func NearestDistance(g *core.Graph, query core.Coordinate) (core.NodeID, float64, error) {
	if g == nil || g.NodeCount() == 0 {
		return 0, 0, ErrNoNodes
	}

	var (
		bestID   core.NodeID
		bestDist = -1.0 // negative until the first candidate is seen
	)

	// Deterministic scan: NodeIDs always yields the same first-seen order.
	var n core.Node
	for _, id := range g.NodeIDs() {
		n, _ = g.Node(id)
		d := geo.Haversine(query, n.Coordinate())
		if bestDist < 0 || d < bestDist {
			bestID = id
			bestDist = d
		}
	}

	return bestID, bestDist, nil
}
