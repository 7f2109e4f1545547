// Command routed is a minimal serving host around the route engine: it
// loads one graph dataset at startup and answers route queries over HTTP.
//
// Usage:
//
//	routed -graph city.json [-addr :8080]
//
// Endpoints:
//
//	GET /route?start_lat=..&start_lon=..&end_lat=..&end_lon=..
//	    → {"route": <GeoJSON LineString feature>, "polyline": "...",
//	       "points": N}
//	GET /health  → graph diagnostics (actual and declared counts)
//	GET /metrics → prometheus metrics
//
// No-path and empty-graph outcomes map to 404/422 JSON errors; neither is
// ever fatal to the process.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/paulmach/orb/geojson"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"roadroute/astar"
	"roadroute/core"
	"roadroute/graphio"
	"roadroute/route"
	"roadroute/snap"
)

// routeRequests counts route queries by outcome.
var routeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "routed_route_requests_total",
	Help: "Route queries by outcome",
}, []string{"outcome"})

type server struct {
	graph *core.Graph
}

func (s *server) register(r *mux.Router) {
	r.HandleFunc("/route", s.handleRoute).Methods("GET")
	r.HandleFunc("/health", s.handleHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
}

// queryFloat parses one required float query parameter.
func queryFloat(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, errors.New("missing parameter " + name)
	}

	return strconv.ParseFloat(raw, 64)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *server) handleRoute(w http.ResponseWriter, r *http.Request) {
	var start, end core.Coordinate
	params := []struct {
		name string
		dst  *float64
	}{
		{"start_lat", &start.Lat},
		{"start_lon", &start.Lon},
		{"end_lat", &end.Lat},
		{"end_lon", &end.Lon},
	}
	for _, p := range params {
		v, err := queryFloat(r, p.name)
		if err != nil {
			routeRequests.WithLabelValues("bad_request").Inc()
			writeError(w, http.StatusBadRequest, err.Error())

			return
		}
		*p.dst = v
	}

	// The request context flows into the search, so a dropped client
	// connection abandons the computation instead of blocking the worker.
	coords, err := route.Compute(s.graph, start, end, astar.WithContext(r.Context()))
	switch {
	case errors.Is(err, snap.ErrNoNodes):
		routeRequests.WithLabelValues("no_nodes").Inc()
		writeError(w, http.StatusNotFound, "graph has no nodes")

		return
	case errors.Is(err, astar.ErrNoPath):
		routeRequests.WithLabelValues("no_path").Inc()
		writeError(w, http.StatusUnprocessableEntity, "no path between the snapped endpoints")

		return
	case err != nil:
		routeRequests.WithLabelValues("error").Inc()
		log.Printf("route (%v)→(%v): %v", start, end, err)
		writeError(w, http.StatusInternalServerError, "route computation failed")

		return
	}

	feature := geojson.NewFeature(route.LineString(coords))
	routeRequests.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"route":    feature,
		"polyline": route.Polyline(coords),
		"points":   len(coords),
	})
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":              "ok",
		"node_count":          s.graph.NodeCount(),
		"edge_count":          s.graph.EdgeCount(),
		"declared_node_count": s.graph.DeclaredNodeCount(),
		"declared_edge_count": s.graph.DeclaredEdgeCount(),
	})
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	graphPath := flag.String("graph", "", "path to the graph dataset (.json or .gob)")
	flag.Parse()

	if *graphPath == "" {
		log.Fatal("missing required -graph flag")
	}

	g, err := graphio.LoadFile(*graphPath)
	if err != nil {
		log.Fatalf("loading graph: %v", err)
	}
	log.Printf("loaded graph: %d nodes, %d edges (declared %d/%d)",
		g.NodeCount(), g.EdgeCount(), g.DeclaredNodeCount(), g.DeclaredEdgeCount())

	r := mux.NewRouter()
	(&server{graph: g}).register(r)

	log.Printf("listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, r))
}
