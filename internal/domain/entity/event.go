package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// Event is a named occurrence at a single point in time and space.
type Event struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Time      time.Time `json:"time"`
	Location  orb.Point `json:"-"`          // (lng, lat)
	CreatorID int64     `json:"creator_id"` // User who created the event; always a collaborator.
	CreatedAt time.Time `json:"created_at"`
}

// Latitude returns the y component of the event location.
func (e *Event) Latitude() float64 {
	return e.Location.Lat()
}

// Longitude returns the x component of the event location.
func (e *Event) Longitude() float64 {
	return e.Location.Lon()
}

// FanOutReport summarizes the notification fan-out that followed an event creation.
type FanOutReport struct {
	Matched    int  `json:"matched"`    // Geofences intersecting the event point.
	Recipients int  `json:"recipients"` // Distinct addresses after deduplication.
	Sent       int  `json:"sent"`
	Failed     int  `json:"failed"`
	Degraded   bool `json:"degraded"` // The intersection lookup failed and was treated as empty.
}
