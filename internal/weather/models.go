package weather

import (
	"time"
)

// Record is one normalized current-conditions observation for a city.
// City is the caller-supplied name, not the geocoded display name. WindSpeed
// is stored in the deployment's configured native unit; derived units
// (Fahrenheit, mph) are computed from these values on demand and never stored.
type Record struct {
	City         string
	TemperatureC float64
	WindSpeed    float64
	HumidityPct  float64
	ObservedAt   time.Time
}

// Coordinates is a geographic point produced by a Resolver.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Observation is a raw reading for one point, before it is tied to a city.
type Observation struct {
	TemperatureC float64
	WindSpeed    float64
	HumidityPct  float64
	ObservedAt   time.Time
}
