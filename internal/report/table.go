// Package report implements the transform-and-rank pipeline: it turns an
// ordered batch of weather records into a normalized table with derived unit
// columns, stable rankings, descriptive statistics, and threshold filters.
// Every operation is a pure function over its input; tables are never mutated.
package report

import (
	"time"

	"weather-report/internal/units"
	"weather-report/internal/weather"
)

// Row is one normalized observation with its derived unit columns. The
// derived values are regenerated from the stored metric readings on every
// Normalize call; they are never carried independently of their source.
type Row struct {
	City         string
	TemperatureC float64
	TemperatureF float64
	WindSpeed    float64
	WindSpeedMPH float64
	HumidityPct  float64
	ObservedAt   time.Time
}

// Table is an ordered sequence of rows in city-insertion order. WindUnit names
// the unit of the WindSpeed column; it appears in the column name so a reader
// can never confuse the two mph conversion factors. Rankings and filters
// return fresh tables and leave the receiver untouched.
type Table struct {
	WindUnit units.WindUnit
	Rows     []Row
}

// Normalize maps records to a flat table, deriving the Fahrenheit and mph
// columns. The only error condition is an unsupported wind unit.
func Normalize(records []weather.Record, windUnit units.WindUnit) (Table, error) {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		mph, err := units.ToMilesPerHour(rec.WindSpeed, windUnit)
		if err != nil {
			return Table{}, err
		}
		rows = append(rows, Row{
			City:         rec.City,
			TemperatureC: rec.TemperatureC,
			TemperatureF: units.CelsiusToFahrenheit(rec.TemperatureC),
			WindSpeed:    rec.WindSpeed,
			WindSpeedMPH: mph,
			HumidityPct:  rec.HumidityPct,
			ObservedAt:   rec.ObservedAt,
		})
	}
	return Table{WindUnit: windUnit, Rows: rows}, nil
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Columns returns the ordered, self-describing column names.
func (t Table) Columns() []string {
	return []string{
		"city",
		"temperature_c",
		"temperature_f",
		t.WindUnit.Column(),
		"wind_speed_mph",
		"humidity_pct",
		"observed_at",
	}
}

// Records returns row-oriented maps keyed by column name, the serializable
// shape consumed by renderers and the HTTP layer.
func (t Table) Records() []map[string]any {
	out := make([]map[string]any, 0, len(t.Rows))
	for _, r := range t.Rows {
		out = append(out, map[string]any{
			"city":              r.City,
			"temperature_c":     r.TemperatureC,
			"temperature_f":     r.TemperatureF,
			t.WindUnit.Column(): r.WindSpeed,
			"wind_speed_mph":    r.WindSpeedMPH,
			"humidity_pct":      r.HumidityPct,
			"observed_at":       r.ObservedAt,
		})
	}
	return out
}

// clone copies the row slice so sorts cannot reach back into the receiver.
func (t Table) clone() Table {
	rows := make([]Row, len(t.Rows))
	copy(rows, t.Rows)
	return Table{WindUnit: t.WindUnit, Rows: rows}
}
