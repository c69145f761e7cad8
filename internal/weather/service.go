package weather

import (
	"context"
	"fmt"
	"strings"
)

// Service orchestrates resolving city names and fetching one observation per
// city. Calls are sequential and fail-fast: the first error aborts the whole
// batch, identifying the offending city; partial results are never returned.
type Service struct {
	resolver Resolver
	observer Observer
}

// NewService creates a new Service.
func NewService(resolver Resolver, observer Observer) *Service {
	return &Service{
		resolver: resolver,
		observer: observer,
	}
}

// FetchAll retrieves one Record per city, preserving the input order.
func (s *Service) FetchAll(ctx context.Context, cities []string) ([]Record, error) {
	records := make([]Record, 0, len(cities))

	for _, city := range cities {
		if strings.TrimSpace(city) == "" {
			return nil, fmt.Errorf("%w: empty city name", ErrResolution)
		}

		coords, err := s.resolver.Resolve(ctx, city)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", city, err)
		}

		obs, err := s.observer.Observe(ctx, coords)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", city, err)
		}

		records = append(records, Record{
			City:         city,
			TemperatureC: obs.TemperatureC,
			WindSpeed:    obs.WindSpeed,
			HumidityPct:  obs.HumidityPct,
			ObservedAt:   obs.ObservedAt,
		})
	}

	return records, nil
}
