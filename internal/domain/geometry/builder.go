// Package geometry turns client coordinates into validated PostGIS-ready geometry values.
//
// Callers pass (latitude, longitude). Stored and encoded geometry is always in
// (longitude, latitude) axis order with SRID 4326.
package geometry

import (
	"math"

	domainerrors "geoalert/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
)

const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0

	minDistinctVertices = 3
)

// LatLng is a vertex as clients send it.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ValidCoordinate reports whether lat and lng are finite and inside the WGS 84 ranges.
func ValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}

	return lat >= minLatitude && lat <= maxLatitude && lng >= minLongitude && lng <= maxLongitude
}

// PointFrom builds the event location for (lat, lng).
func PointFrom(lat, lng float64) (orb.Point, error) {
	if !ValidCoordinate(lat, lng) {
		return orb.Point{}, domainerrors.ErrInvalidCoordinate
	}

	return orb.Point{lng, lat}, nil
}

// PolygonFrom builds a single-ring polygon from an ordered vertex list.
// The ring is closed by repeating the first vertex unless the caller already did.
func PolygonFrom(vertices []LatLng) (orb.Polygon, error) {
	ring := make(orb.Ring, 0, len(vertices)+1)
	distinct := make(map[orb.Point]struct{}, len(vertices))

	for _, v := range vertices {
		if !ValidCoordinate(v.Lat, v.Lng) {
			return nil, domainerrors.ErrInvalidCoordinate
		}

		p := orb.Point{v.Lng, v.Lat}
		ring = append(ring, p)
		distinct[p] = struct{}{}
	}

	if len(distinct) < minDistinctVertices {
		return nil, domainerrors.ErrInvalidGeometry
	}

	if !ring.Closed() {
		ring = append(ring, ring[0])
	}

	return orb.Polygon{ring}, nil
}

// Vertices returns the open vertex list of the outer ring in (lat, lng) form.
func Vertices(p orb.Polygon) []LatLng {
	if len(p) == 0 {
		return []LatLng{}
	}

	ring := p[0]
	if ring.Closed() && len(ring) > 1 {
		ring = ring[:len(ring)-1]
	}

	out := make([]LatLng, 0, len(ring))
	for _, pt := range ring {
		out = append(out, LatLng{Lat: pt.Lat(), Lng: pt.Lon()})
	}

	return out
}

// WKT renders g for logs.
func WKT(g orb.Geometry) string {
	return wkt.MarshalString(g)
}

// GeoJSON wraps g for API responses.
func GeoJSON(g orb.Geometry) *geojson.Geometry {
	return geojson.NewGeometry(g)
}
