package report

import (
	"errors"
	"math"
	"testing"
	"time"

	"weather-report/internal/units"
	"weather-report/internal/weather"
)

func sampleRecords() []weather.Record {
	observed := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	return []weather.Record{
		{City: "London", TemperatureC: 8.1, WindSpeed: 14.2, HumidityPct: 81, ObservedAt: observed},
		{City: "Paris", TemperatureC: 10.4, WindSpeed: 9.7, HumidityPct: 74, ObservedAt: observed},
		{City: "New York", TemperatureC: 3.2, WindSpeed: 22.5, HumidityPct: 60, ObservedAt: observed},
		{City: "Tokyo", TemperatureC: 10.4, WindSpeed: 11.0, HumidityPct: 55, ObservedAt: observed},
		{City: "Sydney", TemperatureC: 24.8, WindSpeed: 18.3, HumidityPct: 67, ObservedAt: observed},
	}
}

func mustNormalize(t *testing.T, records []weather.Record, unit units.WindUnit) Table {
	t.Helper()
	table, err := Normalize(records, unit)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	return table
}

func TestNormalize_DerivedColumnsMatchConverter(t *testing.T) {
	table := mustNormalize(t, sampleRecords(), units.KilometersPerHour)

	for i, row := range table.Rows {
		wantF := units.CelsiusToFahrenheit(row.TemperatureC)
		if row.TemperatureF != wantF {
			t.Errorf("row %d: TemperatureF = %v, want %v", i, row.TemperatureF, wantF)
		}
		wantMPH, err := units.ToMilesPerHour(row.WindSpeed, units.KilometersPerHour)
		if err != nil {
			t.Fatalf("ToMilesPerHour() error = %v", err)
		}
		if row.WindSpeedMPH != wantMPH {
			t.Errorf("row %d: WindSpeedMPH = %v, want %v", i, row.WindSpeedMPH, wantMPH)
		}
	}
}

func TestNormalize_PreservesInputOrder(t *testing.T) {
	table := mustNormalize(t, sampleRecords(), units.KilometersPerHour)

	want := []string{"London", "Paris", "New York", "Tokyo", "Sydney"}
	for i, w := range want {
		if table.Rows[i].City != w {
			t.Errorf("row %d: city = %q, want %q", i, table.Rows[i].City, w)
		}
	}
}

func TestNormalize_UnknownUnit(t *testing.T) {
	_, err := Normalize(sampleRecords(), units.WindUnit("knots"))
	if !errors.Is(err, units.ErrUnknownWindUnit) {
		t.Fatalf("Normalize() error = %v, want ErrUnknownWindUnit", err)
	}
}

func TestColumns_SelfDescribingWindUnit(t *testing.T) {
	kmh := mustNormalize(t, sampleRecords(), units.KilometersPerHour)
	ms := mustNormalize(t, sampleRecords(), units.MetersPerSecond)

	if got := kmh.Columns()[3]; got != "wind_speed_kmh" {
		t.Errorf("kmh wind column = %q", got)
	}
	if got := ms.Columns()[3]; got != "wind_speed_ms" {
		t.Errorf("ms wind column = %q", got)
	}
	for _, col := range kmh.Columns() {
		if col == "wind_speed" {
			t.Error("bare wind_speed column without unit suffix")
		}
	}
}

func TestRecords_KeyedByColumnName(t *testing.T) {
	table := mustNormalize(t, sampleRecords(), units.MetersPerSecond)
	recs := table.Records()

	if len(recs) != table.Len() {
		t.Fatalf("Records() length = %d, want %d", len(recs), table.Len())
	}
	first := recs[0]
	if first["city"] != "London" {
		t.Errorf("city = %v", first["city"])
	}
	if _, ok := first["wind_speed_ms"]; !ok {
		t.Error("missing wind_speed_ms key")
	}
	wantMPH := 14.2 * 2.23694
	if got, ok := first["wind_speed_mph"].(float64); !ok || math.Abs(got-wantMPH) > 1e-9 {
		t.Errorf("wind_speed_mph = %v, want %v", first["wind_speed_mph"], wantMPH)
	}
}
