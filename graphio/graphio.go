// Package graphio loads the serialized road-network dataset consumed by
// the engine.
//
// The wire format is JSON: a "nodes" object keyed by node id (serialized
// as a string, logically an integer), an ordered "edges" array, and
// advisory "node_count"/"edge_count" integers that are copied onto the
// graph without verification. A gob form of the same dataset is supported
// as a fast-reload cache for large extracts.
//
// Errors (sentinel):
//
//	ErrMalformedDataset - the payload does not decode, or a node key is
//	                      not an integer.
package graphio

import (
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"roadroute/core"
)

// ErrMalformedDataset indicates a payload that cannot be decoded into a
// usable dataset.
var ErrMalformedDataset = errors.New("graphio: malformed dataset")

// NodeRecord is one entry of the "nodes" object.
type NodeRecord struct {
	ID  int64   `json:"id"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// EdgeRecord is one entry of the "edges" array. Maxspeed is optional in
// the wire format; zero means absent.
type EdgeRecord struct {
	From       int64   `json:"from"`
	To         int64   `json:"to"`
	Length     float64 `json:"length"`
	TravelTime float64 `json:"travel_time"`
	MaxSpeed   float64 `json:"maxspeed,omitempty"`
}

// Dataset is the decoded wire form, kept exported so the gob cache can
// encode it directly.
type Dataset struct {
	Nodes     map[string]NodeRecord `json:"nodes"`
	Edges     []EdgeRecord          `json:"edges"`
	NodeCount int                   `json:"node_count"`
	EdgeCount int                   `json:"edge_count"`
}

// DecodeJSON reads one JSON dataset from r. The returned error matches
// both ErrMalformedDataset and the underlying decode error.
func DecodeJSON(r io.Reader) (*Dataset, error) {
	var ds Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDataset, err)
	}

	return &ds, nil
}

// DecodeGob reads one gob-cached dataset from r. The returned error
// matches both ErrMalformedDataset and the underlying decode error.
func DecodeGob(r io.Reader) (*Dataset, error) {
	var ds Dataset
	if err := gob.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDataset, err)
	}

	return &ds, nil
}

// EncodeGob writes ds to w in the gob cache form.
func EncodeGob(w io.Writer, ds *Dataset) error {
	if err := gob.NewEncoder(w).Encode(ds); err != nil {
		return fmt.Errorf("graphio: encoding gob: %w", err)
	}

	return nil
}

// Graph materializes the dataset into an immutable core.Graph.
//
// The object key is the authoritative node id (the embedded "id" field is
// carried by the wire format but not relied upon). Nodes are ordered by
// ascending id before construction so that downstream scans, and
// therefore nearest-node tie-breaks, are reproducible regardless of JSON
// object iteration order. Edges keep their array order. Edges referencing
// unknown node ids are not rejected; they stay silently unreachable.
func (ds *Dataset) Graph() (*core.Graph, error) {
	nodes := make([]core.Node, 0, len(ds.Nodes))
	for key, rec := range ds.Nodes {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: node key %q is not an integer id", ErrMalformedDataset, key)
		}
		nodes = append(nodes, core.Node{ID: core.NodeID(id), Lat: rec.Lat, Lon: rec.Lon})
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	edges := make([]core.Edge, 0, len(ds.Edges))
	for _, rec := range ds.Edges {
		edges = append(edges, core.Edge{
			From:       core.NodeID(rec.From),
			To:         core.NodeID(rec.To),
			Length:     rec.Length,
			TravelTime: rec.TravelTime,
			MaxSpeed:   rec.MaxSpeed,
		})
	}

	return core.NewGraph(nodes, edges, core.WithDeclaredCounts(ds.NodeCount, ds.EdgeCount)), nil
}

// LoadFile reads a dataset from path (gob when the extension is ".gob",
// JSON otherwise) and materializes the graph.
func LoadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: opening %s: %w", path, err)
	}
	defer f.Close()

	var ds *Dataset
	if strings.EqualFold(filepath.Ext(path), ".gob") {
		ds, err = DecodeGob(f)
	} else {
		ds, err = DecodeJSON(f)
	}
	if err != nil {
		return nil, fmt.Errorf("graphio: reading %s: %w", path, err)
	}

	return ds.Graph()
}

// SaveGobFile writes the dataset to path in the gob cache form, creating
// parent directories as needed. Converting a large JSON extract once and
// loading the gob afterwards cuts startup time considerably.
func SaveGobFile(path string, ds *Dataset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("graphio: creating directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: creating %s: %w", path, err)
	}
	defer f.Close()

	return EncodeGob(f, ds)
}
