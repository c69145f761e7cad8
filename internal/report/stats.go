package report

import (
	"math"
	"sort"
)

// Summary holds descriptive statistics for one numeric column. Nil fields mean
// the statistic is undefined at the table's size: everything except Count
// needs at least one row, the sample standard deviation at least two.
type Summary struct {
	Column string   `json:"column"`
	Count  int      `json:"count"`
	Mean   *float64 `json:"mean,omitempty"`
	Std    *float64 `json:"std,omitempty"`
	Min    *float64 `json:"min,omitempty"`
	P25    *float64 `json:"p25,omitempty"`
	P50    *float64 `json:"p50,omitempty"`
	P75    *float64 `json:"p75,omitempty"`
	Max    *float64 `json:"max,omitempty"`
}

// Describe computes count, mean, sample standard deviation, min, quartiles and
// max for the temperature, wind speed and humidity columns. An empty table
// yields all-undefined summaries, not an error.
func (t Table) Describe() []Summary {
	columns := []struct {
		name  string
		value func(Row) float64
	}{
		{"temperature_c", func(r Row) float64 { return r.TemperatureC }},
		{t.WindUnit.Column(), func(r Row) float64 { return r.WindSpeed }},
		{"humidity_pct", func(r Row) float64 { return r.HumidityPct }},
	}

	out := make([]Summary, 0, len(columns))
	for _, col := range columns {
		values := make([]float64, len(t.Rows))
		for i, r := range t.Rows {
			values[i] = col.value(r)
		}
		out = append(out, summarize(col.name, values))
	}
	return out
}

func summarize(column string, values []float64) Summary {
	s := Summary{Column: column, Count: len(values)}
	if len(values) == 0 {
		return s
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	m := mean(values)
	s.Mean = &m
	s.Min = &sorted[0]
	s.Max = &sorted[len(sorted)-1]
	s.P25 = ptr(percentile(sorted, 0.25))
	s.P50 = ptr(percentile(sorted, 0.50))
	s.P75 = ptr(percentile(sorted, 0.75))

	if len(values) >= 2 {
		s.Std = ptr(sampleStd(values, m))
	}
	return s
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStd is the N-1 denominator standard deviation. Callers guarantee
// len(values) >= 2.
func sampleStd(values []float64, mean float64) float64 {
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

// percentile interpolates linearly between the closest ranks of an
// ascending-sorted, non-empty slice.
func percentile(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

func ptr(v float64) *float64 {
	return &v
}
