package geometry

import (
	"math"
	"testing"

	domainerrors "geoalert/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var aliceHome = []LatLng{
	{Lat: 33.70, Lng: 73.05},
	{Lat: 33.75, Lng: 73.05},
	{Lat: 33.75, Lng: 73.07},
	{Lat: 33.70, Lng: 73.07},
}

func TestPointFrom(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		want    orb.Point
		wantErr error
	}{
		{name: "stores lng first", lat: 33.7224, lng: 73.0597, want: orb.Point{73.0597, 33.7224}},
		{name: "boundaries are valid", lat: -90, lng: 180, want: orb.Point{180, -90}},
		{name: "latitude too large", lat: 90.0001, lng: 0, wantErr: domainerrors.ErrInvalidCoordinate},
		{name: "longitude too small", lat: 0, lng: -180.5, wantErr: domainerrors.ErrInvalidCoordinate},
		{name: "NaN", lat: math.NaN(), lng: 0, wantErr: domainerrors.ErrInvalidCoordinate},
		{name: "infinity", lat: 0, lng: math.Inf(1), wantErr: domainerrors.ErrInvalidCoordinate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PointFrom(tt.lat, tt.lng)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPolygonFrom_ClosesRing(t *testing.T) {
	for n := 3; n <= 8; n++ {
		vertices := make([]LatLng, 0, n)
		for i := range n {
			angle := 2 * math.Pi * float64(i) / float64(n)
			vertices = append(vertices, LatLng{Lat: 10 + math.Sin(angle), Lng: 20 + math.Cos(angle)})
		}

		poly, err := PolygonFrom(vertices)
		require.NoError(t, err)
		require.Len(t, poly, 1)

		ring := poly[0]
		assert.Len(t, ring, n+1)
		assert.Equal(t, ring[0], ring[len(ring)-1])
	}
}

func TestPolygonFrom_AlreadyClosedIsNotDoubled(t *testing.T) {
	closed := append(append([]LatLng{}, aliceHome...), aliceHome[0])

	poly, err := PolygonFrom(closed)
	require.NoError(t, err)
	assert.Len(t, poly[0], 5)
}

func TestPolygonFrom_Errors(t *testing.T) {
	tests := []struct {
		name     string
		vertices []LatLng
		wantErr  error
	}{
		{name: "empty", vertices: nil, wantErr: domainerrors.ErrInvalidGeometry},
		{name: "two vertices", vertices: aliceHome[:2], wantErr: domainerrors.ErrInvalidGeometry},
		{
			name:     "three vertices but only two distinct",
			vertices: []LatLng{aliceHome[0], aliceHome[1], aliceHome[0]},
			wantErr:  domainerrors.ErrInvalidGeometry,
		},
		{
			name:     "vertex out of range",
			vertices: []LatLng{aliceHome[0], aliceHome[1], {Lat: 91, Lng: 0}},
			wantErr:  domainerrors.ErrInvalidCoordinate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PolygonFrom(tt.vertices)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPolygonFrom_ContainsScenarioPoint(t *testing.T) {
	poly, err := PolygonFrom(aliceHome)
	require.NoError(t, err)

	inside, err := PointFrom(33.7224, 73.0597)
	require.NoError(t, err)
	assert.True(t, planar.PolygonContains(poly, inside))

	outside, err := PointFrom(33.80, 73.0597)
	require.NoError(t, err)
	assert.False(t, planar.PolygonContains(poly, outside))

	// swapped axes would put the point far outside the ring
	assert.False(t, planar.PolygonContains(poly, orb.Point{33.7224, 73.0597}))
}

func TestVertices_RoundTrip(t *testing.T) {
	poly, err := PolygonFrom(aliceHome)
	require.NoError(t, err)

	assert.Equal(t, aliceHome, Vertices(poly))
	assert.Empty(t, Vertices(nil))
}

func TestWKT_UsesLngLatOrder(t *testing.T) {
	p, err := PointFrom(33.7224, 73.0597)
	require.NoError(t, err)

	assert.Equal(t, "POINT(73.0597 33.7224)", WKT(p))
}
