// Package core defines the road-network model shared by every routing
// component: Node, Edge, Graph, and Coordinate.
//
// A Graph is built once from a loaded dataset and is immutable afterwards.
// All query methods are read-only, so a single Graph may be shared freely
// across any number of concurrent route computations.
//
// This file declares the value types, sentinel errors, and the NewGraph
// constructor with its options.
//
// Errors:
//
//	ErrNodeNotFound - requested node id does not exist in the graph.
package core

import "errors"

// ErrNodeNotFound indicates an operation referenced a node id that is not
// present in the graph's node mapping.
var ErrNodeNotFound = errors.New("core: node not found")

// NodeID identifies a node within one graph. Ids are unique per graph.
type NodeID int64

// Coordinate is a geographic position in degrees.
// Range validation (lat ∈ [-90,90], lon ∈ [-180,180]) is the caller's
// concern; the engine only uses coordinates for distance computation.
type Coordinate struct {
	// Lat is the latitude in degrees.
	Lat float64

	// Lon is the longitude in degrees.
	Lon float64
}

// Node is an intersection of the road network.
type Node struct {
	// ID is the unique identifier of this node within its Graph.
	ID NodeID

	// Lat is the latitude in degrees.
	Lat float64

	// Lon is the longitude in degrees.
	Lon float64
}

// Coordinate returns the node's position.
func (n Node) Coordinate() Coordinate {
	return Coordinate{Lat: n.Lat, Lon: n.Lon}
}

// Edge is a directed road segment From→To. A graph may or may not also
// carry the reverse edge; the engine never synthesizes it.
type Edge struct {
	// From is the source node id.
	From NodeID

	// To is the destination node id. The engine does not validate that
	// this id exists in the node mapping.
	To NodeID

	// Length is the segment length in whatever unit the source dataset
	// uses. It is not normalized or validated.
	Length float64

	// TravelTime is the traversal time in seconds. May be zero.
	TravelTime float64

	// MaxSpeed is the optional speed limit from the dataset. Zero means
	// absent. Currently unused by the search; reserved for future
	// weighting.
	MaxSpeed float64
}

// Weight returns the cost used by the search: TravelTime when strictly
// positive, otherwise Length. The substitution is applied per edge and is
// a property of the data, not a configurable option.
func (e Edge) Weight() float64 {
	if e.TravelTime > 0 {
		return e.TravelTime
	}

	return e.Length
}

// Graph is an immutable in-memory road network.
//
// Nodes are retrievable by id; NodeIDs exposes them in a fixed,
// deterministic order (first-seen at construction) so that scans over the
// node set are reproducible. Edges keeps the dataset's original ordering.
type Graph struct {
	nodes map[NodeID]Node // id → node record
	order []NodeID        // node ids in first-seen order
	edges []Edge          // directed edges in dataset order

	declaredNodes int // advisory node_count from the dataset
	declaredEdges int // advisory edge_count from the dataset
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDeclaredCounts records the advisory node_count/edge_count metadata
// copied from the source dataset. The values are never cross-checked
// against the actual collection sizes; they exist for diagnostics only.
func WithDeclaredCounts(nodeCount, edgeCount int) GraphOption {
	return func(g *Graph) {
		g.declaredNodes = nodeCount
		g.declaredEdges = edgeCount
	}
}

// NewGraph builds an immutable Graph from the given nodes and edges.
//
// Nodes are indexed in the order given; if the same id appears twice, the
// first occurrence wins and later ones are dropped, keeping the scan order
// deterministic. Edges are stored as-is: parallel edges are legal and
// preserved as separate entries, and edges referencing unknown node ids
// are kept (they are effectively unreachable, see Adjacency).
func NewGraph(nodes []Node, edges []Edge, opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[NodeID]Node, len(nodes)),
		order: make([]NodeID, 0, len(nodes)),
		edges: make([]Edge, len(edges)),
	}

	for _, n := range nodes {
		if _, dup := g.nodes[n.ID]; dup {
			continue // first-seen wins
		}
		g.nodes[n.ID] = n
		g.order = append(g.order, n.ID)
	}

	copy(g.edges, edges)

	for _, opt := range opts {
		opt(g)
	}

	return g
}
