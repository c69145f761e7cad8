package report

import (
	"testing"

	"weather-report/internal/units"
	"weather-report/internal/weather"
)

func TestWarmerThan_StrictGreaterThan(t *testing.T) {
	records := []weather.Record{
		{City: "A", TemperatureC: 15},
		{City: "B", TemperatureC: 5},
		{City: "C", TemperatureC: 10},
	}
	table := mustNormalize(t, records, units.KilometersPerHour)

	warm := table.WarmerThan(10)
	if got := cities(warm); !equalStrings(got, []string{"A"}) {
		t.Errorf("WarmerThan(10) = %v, want [A]: threshold is strict", got)
	}

	all := table.WarmerThan(4)
	if got := cities(all); !equalStrings(got, []string{"A", "B", "C"}) {
		t.Errorf("WarmerThan(4) = %v, want original order [A B C]", got)
	}
}

func TestWarmerThan_EmptyResultIsValid(t *testing.T) {
	table := mustNormalize(t, sampleRecords(), units.KilometersPerHour)

	none := table.WarmerThan(100)
	if none.Rows == nil {
		t.Error("WarmerThan() returned nil rows, want empty sequence")
	}
	if none.Len() != 0 {
		t.Errorf("WarmerThan(100) returned %d rows, want 0", none.Len())
	}
}

func TestWarmerThan_EmptyTable(t *testing.T) {
	table := Table{WindUnit: units.KilometersPerHour}
	if got := table.WarmerThan(0).Len(); got != 0 {
		t.Errorf("WarmerThan() on empty table returned %d rows", got)
	}
}
