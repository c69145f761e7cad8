package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"weather-report/internal/units"
	"weather-report/internal/weather"
)

// observedAtLayouts covers the timestamps Open-Meteo emits: minute precision
// without a zone offset ("2026-02-10T12:45"), RFC3339 as a fallback. Times are
// taken as UTC.
var observedAtLayouts = []string{"2006-01-02T15:04", time.RFC3339}

// OpenMeteoObserver fetches current conditions from the Open-Meteo forecast
// endpoint. The configured wind unit is requested from the API itself, so the
// stored reading is already in the deployment's native unit.
type OpenMeteoObserver struct {
	name     string
	baseURL  string
	windUnit units.WindUnit
	httpCfg  HTTPClientConfig
	circuit  *gobreaker.CircuitBreaker
}

func NewOpenMeteoObserver(client *http.Client, windUnit units.WindUnit) *OpenMeteoObserver {
	return &OpenMeteoObserver{
		name:     "openmeteo",
		baseURL:  "https://api.open-meteo.com/v1/forecast",
		windUnit: windUnit,
		httpCfg:  defaultHTTPConfig(client),
		circuit:  newBreaker("openmeteo-forecast"),
	}
}

// WithBaseURL overrides the API endpoint. Used in tests.
func (p *OpenMeteoObserver) WithBaseURL(u string) *OpenMeteoObserver {
	p.baseURL = u
	return p
}

func (p *OpenMeteoObserver) Name() string {
	return p.name
}

func (p *OpenMeteoObserver) Observe(ctx context.Context, coords weather.Coordinates) (weather.Observation, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", coords.Latitude))
		values.Set("longitude", fmt.Sprintf("%f", coords.Longitude))
		values.Set("current", "temperature_2m,relative_humidity_2m,wind_speed_10m")
		// Open-Meteo serves km/h unless told otherwise.
		if p.windUnit == units.MetersPerSecond {
			values.Set("wind_speed_unit", "ms")
		}

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.Observation{}, err
	}
	defer resp.Body.Close()

	// Pointer fields distinguish a missing key from a zero reading.
	var payload struct {
		Current struct {
			Temperature *float64 `json:"temperature_2m"`
			Humidity    *float64 `json:"relative_humidity_2m"`
			WindSpeed   *float64 `json:"wind_speed_10m"`
			Time        *string  `json:"time"`
		} `json:"current"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Observation{}, fmt.Errorf("%w: %v", weather.ErrTransport, err)
	}

	cur := payload.Current
	if cur.Temperature == nil || cur.Humidity == nil || cur.WindSpeed == nil || cur.Time == nil {
		return weather.Observation{}, fmt.Errorf("%w: incomplete current block", weather.ErrRetrieval)
	}

	observedAt, err := parseObservedAt(*cur.Time)
	if err != nil {
		return weather.Observation{}, fmt.Errorf("%w: bad observation time %q", weather.ErrRetrieval, *cur.Time)
	}

	return weather.Observation{
		TemperatureC: *cur.Temperature,
		WindSpeed:    *cur.WindSpeed,
		HumidityPct:  *cur.Humidity,
		ObservedAt:   observedAt,
	}, nil
}

func parseObservedAt(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range observedAtLayouts {
		ts, err := time.Parse(layout, s)
		if err == nil {
			return ts.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
