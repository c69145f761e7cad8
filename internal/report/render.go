package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

// WriteText renders the table as an aligned text block with a title line.
func WriteText(w io.Writer, title string, t Table) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", title); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Columns(), "\t"))
	for _, r := range t.Rows {
		fmt.Fprintln(tw, strings.Join([]string{
			r.City,
			formatFloat(r.TemperatureC),
			formatFloat(r.TemperatureF),
			formatFloat(r.WindSpeed),
			formatFloat(r.WindSpeedMPH),
			formatFloat(r.HumidityPct),
			r.ObservedAt.Format("2006-01-02 15:04"),
		}, "\t"))
	}
	return tw.Flush()
}

// WriteSummaries renders the describe() block: one line per column.
func WriteSummaries(w io.Writer, title string, summaries []Summary) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", title); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join([]string{"column", "count", "mean", "std", "min", "p25", "p50", "p75", "max"}, "\t"))
	for _, s := range summaries {
		fmt.Fprintln(tw, strings.Join([]string{
			s.Column,
			strconv.Itoa(s.Count),
			formatOptional(s.Mean),
			formatOptional(s.Std),
			formatOptional(s.Min),
			formatOptional(s.P25),
			formatOptional(s.P50),
			formatOptional(s.P75),
			formatOptional(s.Max),
		}, "\t"))
	}
	return tw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return "undefined"
	}
	return formatFloat(*v)
}
