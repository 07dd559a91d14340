package impl

import (
	"context"

	"geoalert/internal/domain/entity"
	"geoalert/internal/domain/repository"
	"geoalert/internal/errors"
)

// intersectionResolver finds the geofence owners to notify for an event.
type intersectionResolver struct {
	eventRepo repository.EventRepository
}

func newIntersectionResolver(eventRepo repository.EventRepository) *intersectionResolver {
	return &intersectionResolver{eventRepo: eventRepo}
}

// Resolve returns every active geofence that intersects the event point.
// No matches is an empty slice.
func (r *intersectionResolver) Resolve(ctx context.Context, eventID int64) ([]entity.IntersectionMatch, error) {
	matches, err := r.eventRepo.FindIntersections(ctx, eventID)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve intersections for event %d", eventID)
	}
	if matches == nil {
		return []entity.IntersectionMatch{}, nil
	}

	return matches, nil
}
