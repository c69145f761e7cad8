package weather

import "errors"

var (
	// ErrResolution is returned when a city name yields no geocoding match.
	ErrResolution = errors.New("city could not be resolved")

	// ErrRetrieval is returned when an upstream response lacks the expected
	// fields or carries an unparseable observation time.
	ErrRetrieval = errors.New("weather response missing expected fields")

	// ErrTransport is returned on network-layer failures: connection errors,
	// unexpected status codes, malformed response bodies.
	ErrTransport = errors.New("weather upstream request failed")
)
