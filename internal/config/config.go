package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"weather-report/internal/units"
)

// Geocoder backends.
const (
	GeocoderOpenMeteo = "openmeteo"
	GeocoderGoogle    = "google"
)

type AppConfig struct {
	// Cities to report on, in presentation order.
	Cities []string

	// WindUnit is the native wind speed unit for this deployment. It names
	// the wind_speed column and selects the mph conversion factor.
	WindUnit units.WindUnit

	// WarmThresholdC drives the warm-cities filter.
	WarmThresholdC float64

	// HTTPTimeout bounds every outbound request.
	HTTPTimeout time.Duration

	// FetchInterval controls how often serve mode refreshes the report.
	FetchInterval time.Duration

	// Run store retention.
	StoreMaxHistory int           // max number of retained runs (0 = unlimited)
	StoreMaxAge     time.Duration // max age of retained runs (0 = unlimited)

	// Geocoder backend selection.
	GeocoderBackend string
	GeocoderAPIKey  string

	// CSVDir is where one-shot mode writes the report artifact.
	CSVDir string

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	// A missing .env file is fine; env vars still apply.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.Cities = splitCities(getenvDefault("CITIES", "London,Paris,New York,Tokyo,Sydney"))
	if len(cfg.Cities) == 0 {
		return nil, fmt.Errorf("CITIES must name at least one city")
	}

	windUnit, err := units.ParseWindUnit(getenvDefault("WIND_SPEED_UNIT", string(units.KilometersPerHour)))
	if err != nil {
		return nil, fmt.Errorf("invalid WIND_SPEED_UNIT: %w", err)
	}
	cfg.WindUnit = windUnit

	cfg.WarmThresholdC, err = getenvFloat("WARM_THRESHOLD_C", 10)
	if err != nil {
		return nil, err
	}

	cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	cfg.FetchInterval, err = getenvDuration("FETCH_INTERVAL", 15*time.Minute)
	if err != nil {
		return nil, err
	}

	cfg.StoreMaxHistory = getenvInt("STORE_MAX_HISTORY", 96) // roughly 24h at 15-minute intervals
	cfg.StoreMaxAge, err = getenvDuration("STORE_MAX_AGE", 24*time.Hour)
	if err != nil {
		return nil, err
	}

	cfg.GeocoderBackend = getenvDefault("GEOCODER_BACKEND", GeocoderOpenMeteo)
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")
	switch cfg.GeocoderBackend {
	case GeocoderOpenMeteo:
	case GeocoderGoogle:
		if cfg.GeocoderAPIKey == "" {
			return nil, fmt.Errorf("GEOCODER_API_KEY required for the google geocoder backend")
		}
	default:
		return nil, fmt.Errorf("GEOCODER_BACKEND must be %s or %s, got %q",
			GeocoderOpenMeteo, GeocoderGoogle, cfg.GeocoderBackend)
	}

	cfg.CSVDir = getenvDefault("CSV_DIR", ".")
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func splitCities(s string) []string {
	var cities []string
	for _, c := range strings.Split(s, ",") {
		c = strings.TrimSpace(c)
		if c != "" {
			cities = append(cities, c)
		}
	}
	return cities
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
