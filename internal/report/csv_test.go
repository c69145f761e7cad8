package report

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"testing"
	"time"

	"weather-report/internal/units"
)

func TestWriteCSV(t *testing.T) {
	table := mustNormalize(t, sampleRecords(), units.KilometersPerHour)

	var buf bytes.Buffer
	if err := table.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading written CSV: %v", err)
	}
	if len(rows) != table.Len()+1 {
		t.Fatalf("CSV has %d rows, want header + %d", len(rows), table.Len())
	}
	if rows[0][3] != "wind_speed_kmh" {
		t.Errorf("header wind column = %q, want wind_speed_kmh", rows[0][3])
	}
	if rows[1][0] != "London" {
		t.Errorf("first data row city = %q, want London", rows[1][0])
	}
	if rows[1][6] != "2026-02-10T12:00:00Z" {
		t.Errorf("observed_at = %q, want RFC3339 UTC", rows[1][6])
	}
}

func TestSaveCSV_TimestampedName(t *testing.T) {
	table := mustNormalize(t, sampleRecords(), units.KilometersPerHour)
	dir := t.TempDir()
	now := time.Date(2026, 2, 10, 12, 30, 45, 0, time.UTC)

	path, err := table.SaveCSV(dir, now)
	if err != nil {
		t.Fatalf("SaveCSV() error = %v", err)
	}
	if got := filepath.Base(path); got != "weather_report_20260210_123045.csv" {
		t.Errorf("file name = %q", got)
	}
}
