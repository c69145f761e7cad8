package weather

import (
	"context"
)

// Resolver maps a city name to coordinates. Implementations return an error
// wrapping ErrResolution when the name has no match.
type Resolver interface {
	Resolve(ctx context.Context, city string) (Coordinates, error)
}

// Observer fetches current conditions for a geographic point.
type Observer interface {
	Name() string
	Observe(ctx context.Context, coords Coordinates) (Observation, error)
}
