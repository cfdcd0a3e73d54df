package profile

import (
	"fmt"
	"strconv"
	"text/tabwriter"
)

// renderSchema prints column names with inferred types and nullability
func (e *Explorer) renderSchema(report SchemaReport) error {
	if _, err := fmt.Fprintln(e.out, "=== Schema ==="); err != nil {
		return err
	}
	w := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "column\ttype\tnullable")
	for _, col := range report.Columns {
		fmt.Fprintf(w, "%s\t%s\t%t\n", col.Name, col.Type, col.Nullable)
	}
	return w.Flush()
}

// renderOverview prints the row count and the ordered column names
func (e *Explorer) renderOverview(report OverviewReport) error {
	if _, err := fmt.Fprintln(e.out, "=== Overview ==="); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "rows: %d\n", report.RowCount)
	fmt.Fprintf(e.out, "columns (%d):\n", len(report.Columns))
	for _, name := range report.Columns {
		fmt.Fprintf(e.out, "  - %s\n", name)
	}
	return nil
}

// renderSummary prints describe-style statistics, one row per column
func (e *Explorer) renderSummary(report SummaryReport) error {
	if _, err := fmt.Fprintln(e.out, "=== Summary ==="); err != nil {
		return err
	}
	w := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "column\tcount\tmean\tstd\tmin\t25%\t50%\t75%\tmax")
	for _, col := range report.Columns {
		if col.Numeric != nil {
			n := col.Numeric
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				col.Name, col.Count,
				formatStat(n.Mean), formatStat(n.StdDev),
				formatStat(n.Min), formatStat(n.Q25), formatStat(n.Median),
				formatStat(n.Q75), formatStat(n.Max))
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t-\t-\t%s\t-\t-\t-\t%s\n",
			col.Name, col.Count, col.Min, col.Max)
	}
	return w.Flush()
}

// renderNulls prints per-column missing-value counts
func (e *Explorer) renderNulls(report NullsReport) error {
	if _, err := fmt.Fprintln(e.out, "=== Null Counts ==="); err != nil {
		return err
	}
	w := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "column\tnulls")
	for _, col := range report.Columns {
		fmt.Fprintf(w, "%s\t%d\n", col.Name, col.Nulls)
	}
	return w.Flush()
}

// renderDuplicates prints the fully-duplicate row count
func (e *Explorer) renderDuplicates(report DuplicatesReport) error {
	if _, err := fmt.Fprintln(e.out, "=== Duplicates ==="); err != nil {
		return err
	}
	_, err := fmt.Fprintf(e.out, "duplicate rows: %d\n", report.Count)
	return err
}

// renderValueCounts prints one frequency table per column
func (e *Explorer) renderValueCounts(report ValueCountsReport) error {
	if _, err := fmt.Fprintln(e.out, "=== Value Counts ==="); err != nil {
		return err
	}
	for _, col := range report.Columns {
		fmt.Fprintf(e.out, "-- %s (%d distinct) --\n", col.Name, col.Distinct)
		w := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
		for _, vc := range col.Values {
			fmt.Fprintf(w, "%s\t%d\n", vc.Value, vc.Count)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		if col.Truncated {
			fmt.Fprintf(e.out, "... %d more\n", col.Distinct-len(col.Values))
		}
	}
	return nil
}

// formatStat formats a statistic trimming insignificant zeros
func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
