package entity

import (
	"github.com/paulmach/orb"
)

// Geofence is a polygonal area owned by a consumer. Only active geofences take part in matching.
type Geofence struct {
	ID       int64
	Name     string
	Boundary orb.Polygon // Single closed ring in (lng, lat) order.
	IsActive bool
	UserID   int64 // Owner.
}
