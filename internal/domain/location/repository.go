package location

import "context"

type LocationRepository interface {
	Create(ctx context.Context, loc Location) (Location, error)

	// GetByID returns the authoritative location record. Callers verifying a
	// geofence must call this immediately before the check: radius and center
	// can be edited concurrently by administrators.
	GetByID(ctx context.Context, id string) (Location, error)

	Update(ctx context.Context, loc Location) error

	List(ctx context.Context, activeOnly bool) ([]Location, error)
}
