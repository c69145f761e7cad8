package report

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// WriteCSV writes the normalized table, header first, one row per city.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Columns()); err != nil {
		return err
	}
	for _, r := range t.Rows {
		record := []string{
			r.City,
			strconv.FormatFloat(r.TemperatureC, 'f', -1, 64),
			strconv.FormatFloat(r.TemperatureF, 'f', -1, 64),
			strconv.FormatFloat(r.WindSpeed, 'f', -1, 64),
			strconv.FormatFloat(r.WindSpeedMPH, 'f', -1, 64),
			strconv.FormatFloat(r.HumidityPct, 'f', -1, 64),
			r.ObservedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the table to dir under a timestamped file name and returns
// the full path.
func (t Table) SaveCSV(dir string, now time.Time) (string, error) {
	name := "weather_report_" + now.UTC().Format("20060102_150405") + ".csv"
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := t.WriteCSV(f); err != nil {
		return "", err
	}
	return path, nil
}
