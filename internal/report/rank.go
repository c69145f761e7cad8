package report

import "sort"

// RankByTemperature returns a copy of the table sorted hottest first. The sort
// is stable: rows with equal temperatures keep their original relative order,
// city names are never used as a tie-breaker.
func (t Table) RankByTemperature() Table {
	out := t.clone()
	sort.SliceStable(out.Rows, func(i, j int) bool {
		return out.Rows[i].TemperatureC > out.Rows[j].TemperatureC
	})
	return out
}

// RankByHumidity returns a copy of the table sorted driest first, with the
// same stability rule.
func (t Table) RankByHumidity() Table {
	out := t.clone()
	sort.SliceStable(out.Rows, func(i, j int) bool {
		return out.Rows[i].HumidityPct < out.Rows[j].HumidityPct
	})
	return out
}
