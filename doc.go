// Package roadroute computes the fastest path between two geographic
// coordinates over a precomputed road-network graph, for embedding inside
// a larger visualization host.
//
// The pipeline is: snap both input coordinates to their nearest graph
// nodes, run an A* search over the directed weighted edges, and emit the
// winning trail as an ordered polyline of node positions.
//
// Subpackages:
//
//	core/    — immutable graph model (Node, Edge, Graph, Coordinate) and
//	           the per-call adjacency index with the weight policy
//	geo/     — haversine great-circle distance
//	snap/    — nearest-node resolution for arbitrary coordinates
//	astar/   — the heuristic shortest-path search
//	route/   — the public Compute operation plus polyline/GeoJSON encoders
//	graphio/ — JSON dataset loader and gob reload cache
//	cmd/routed — a small HTTP host exposing the engine
//
// Quick start:
//
//	g, err := graphio.LoadFile("city.json")
//	if err != nil { ... }
//	coords, err := route.Compute(g,
//	    core.Coordinate{Lat: 45.50, Lon: -73.57},
//	    core.Coordinate{Lat: 45.53, Lon: -73.62},
//	)
//	switch {
//	case errors.Is(err, snap.ErrNoNodes):  // nothing to snap to
//	case errors.Is(err, astar.ErrNoPath):  // disconnected endpoints
//	case err == nil:                       // coords is the route polyline
//	}
//
// The graph is read-only after loading and safe to share across any
// number of concurrent route computations; every call allocates its own
// search state and releases it on return.
package roadroute
