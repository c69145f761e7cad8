package units

import (
	"errors"
	"math"
	"testing"
)

func TestCelsiusToFahrenheit(t *testing.T) {
	tests := []struct {
		name string
		c    float64
		want float64
	}{
		{name: "freezing point", c: 0, want: 32},
		{name: "boiling point", c: 100, want: 212},
		{name: "scales cross", c: -40, want: -40},
		{name: "body temperature", c: 37, want: 98.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CelsiusToFahrenheit(tt.c)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CelsiusToFahrenheit(%v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestToMilesPerHour(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		from  WindUnit
		want  float64
	}{
		{name: "kmh", speed: 100, from: KilometersPerHour, want: 62.1371},
		{name: "ms", speed: 10, from: MetersPerSecond, want: 22.3694},
		{name: "zero", speed: 0, from: KilometersPerHour, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToMilesPerHour(tt.speed, tt.from)
			if err != nil {
				t.Fatalf("ToMilesPerHour() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ToMilesPerHour(%v, %s) = %v, want %v", tt.speed, tt.from, got, tt.want)
			}
		})
	}
}

func TestToMilesPerHour_UnknownUnit(t *testing.T) {
	_, err := ToMilesPerHour(10, WindUnit("knots"))
	if !errors.Is(err, ErrUnknownWindUnit) {
		t.Fatalf("ToMilesPerHour() error = %v, want ErrUnknownWindUnit", err)
	}
}

func TestParseWindUnit(t *testing.T) {
	if u, err := ParseWindUnit("kmh"); err != nil || u != KilometersPerHour {
		t.Errorf("ParseWindUnit(kmh) = %v, %v", u, err)
	}
	if u, err := ParseWindUnit("ms"); err != nil || u != MetersPerSecond {
		t.Errorf("ParseWindUnit(ms) = %v, %v", u, err)
	}
	if _, err := ParseWindUnit("mph"); !errors.Is(err, ErrUnknownWindUnit) {
		t.Errorf("ParseWindUnit(mph) error = %v, want ErrUnknownWindUnit", err)
	}
}

func TestWindUnitColumn(t *testing.T) {
	if got := KilometersPerHour.Column(); got != "wind_speed_kmh" {
		t.Errorf("Column() = %q, want wind_speed_kmh", got)
	}
	if got := MetersPerSecond.Column(); got != "wind_speed_ms" {
		t.Errorf("Column() = %q, want wind_speed_ms", got)
	}
}
