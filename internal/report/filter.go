package report

// WarmerThan returns the rows with temperature strictly above thresholdC, in
// their original order. An empty result is a valid table, not an error.
func (t Table) WarmerThan(thresholdC float64) Table {
	out := Table{WindUnit: t.WindUnit, Rows: []Row{}}
	for _, r := range t.Rows {
		if r.TemperatureC > thresholdC {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}
