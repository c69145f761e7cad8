package providers

import (
	"context"
	"fmt"

	"github.com/kelvins/geocoder"

	"weather-report/internal/weather"
)

// GoogleResolver resolves city names through the Google Geocoding API.
// Alternate backend for deployments that already carry a Google API key.
type GoogleResolver struct{}

func NewGoogleResolver(apiKey string) *GoogleResolver {
	geocoder.ApiKey = apiKey
	return &GoogleResolver{}
}

func (g *GoogleResolver) Resolve(ctx context.Context, city string) (weather.Coordinates, error) {
	// The geocoder library offers no context plumbing; failures of any kind
	// read as "no match" to the caller.
	location, err := geocoder.Geocoding(geocoder.Address{City: city})
	if err != nil {
		return weather.Coordinates{}, fmt.Errorf("%w: %v", weather.ErrResolution, err)
	}

	return weather.Coordinates{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}, nil
}
