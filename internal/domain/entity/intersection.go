package entity

import (
	"strings"
	"time"
)

// IntersectionMatch is one active geofence whose polygon contains or touches an event point,
// joined with the geofence owner.
type IntersectionMatch struct {
	EventID        int64
	EventName      string
	EventTime      time.Time
	OwnerID        int64
	OwnerEmail     string
	OwnerFirstName string
	GeofenceID     int64
	GeofenceName   string
}

// NormalizeEmail is the key used to decide whether two matches reach the same inbox.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DedupeByEmail keeps the first match for every distinct email and preserves input order.
func DedupeByEmail(matches []IntersectionMatch) []IntersectionMatch {
	seen := make(map[string]struct{}, len(matches))
	out := make([]IntersectionMatch, 0, len(matches))

	for _, m := range matches {
		key := NormalizeEmail(m.OwnerEmail)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m)
	}

	return out
}
