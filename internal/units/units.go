package units

import (
	"errors"
	"fmt"
)

// WindUnit names the unit wind speeds are ingested in. Every deployment picks
// exactly one; the unit travels with the data all the way into column names so
// the two mph conversion factors can never be mixed.
type WindUnit string

const (
	KilometersPerHour WindUnit = "kmh"
	MetersPerSecond   WindUnit = "ms"
)

// Fixed conversion factors to miles per hour.
const (
	kmhToMph = 0.621371
	msToMph  = 2.23694
)

// ErrUnknownWindUnit is returned when a wind speed unit name is not supported.
var ErrUnknownWindUnit = errors.New("unknown wind speed unit")

// ParseWindUnit maps a configuration value to a WindUnit.
func ParseWindUnit(s string) (WindUnit, error) {
	switch WindUnit(s) {
	case KilometersPerHour, MetersPerSecond:
		return WindUnit(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWindUnit, s)
}

// Column returns the unit-suffixed wind speed column name, e.g. "wind_speed_kmh".
func (u WindUnit) Column() string {
	return "wind_speed_" + string(u)
}

// CelsiusToFahrenheit converts a temperature reading. Pure arithmetic, exact
// for all finite inputs.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// ToMilesPerHour converts a wind speed from the named unit to mph.
func ToMilesPerHour(speed float64, from WindUnit) (float64, error) {
	switch from {
	case KilometersPerHour:
		return speed * kmhToMph, nil
	case MetersPerSecond:
		return speed * msToMph, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWindUnit, from)
}
