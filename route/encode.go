package route

import (
	"github.com/paulmach/orb"
	"github.com/twpayne/go-polyline"

	"roadroute/core"
)

// Polyline encodes a computed route as a Google encoded polyline string,
// the compact wire form most map renderers accept directly.
func Polyline(coords []core.Coordinate) string {
	pts := make([][]float64, 0, len(coords))
	for _, c := range coords {
		pts = append(pts, []float64{c.Lat, c.Lon})
	}

	return string(polyline.EncodeCoords(pts))
}

// LineString converts a computed route into an orb geometry (lon/lat
// order), ready for GeoJSON serialization by a visualization host.
func LineString(coords []core.Coordinate) orb.LineString {
	ls := make(orb.LineString, 0, len(coords))
	for _, c := range coords {
		ls = append(ls, orb.Point{c.Lon, c.Lat})
	}

	return ls
}
