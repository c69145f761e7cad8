package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"weather-report/internal/weather"
)

// OpenMeteoResolver resolves city names through the Open-Meteo geocoding API.
// No API key required.
type OpenMeteoResolver struct {
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoResolver(client *http.Client) *OpenMeteoResolver {
	return &OpenMeteoResolver{
		baseURL: "https://geocoding-api.open-meteo.com/v1/search",
		httpCfg: defaultHTTPConfig(client),
		circuit: newBreaker("openmeteo-geocoding"),
	}
}

// WithBaseURL overrides the API endpoint. Used in tests.
func (r *OpenMeteoResolver) WithBaseURL(u string) *OpenMeteoResolver {
	r.baseURL = u
	return r
}

func (r *OpenMeteoResolver) Resolve(ctx context.Context, city string) (weather.Coordinates, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("name", city)
		values.Set("count", "1")

		u := fmt.Sprintf("%s?%s", r.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, r.httpCfg, r.circuit, buildRequest)
	if err != nil {
		return weather.Coordinates{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Results []struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Coordinates{}, fmt.Errorf("%w: %v", weather.ErrTransport, err)
	}

	if len(payload.Results) == 0 {
		return weather.Coordinates{}, fmt.Errorf("%w: no geocoding match for %q", weather.ErrResolution, city)
	}

	return weather.Coordinates{
		Latitude:  payload.Results[0].Latitude,
		Longitude: payload.Results[0].Longitude,
	}, nil
}
